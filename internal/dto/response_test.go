package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestValidationErrorResponse 测试绑定层必填校验的错误提示
func TestValidationErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bindRegister := func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ValidationErrorResponse(c, err)
			return
		}
		SuccessResponse(c, gin.H{"message": "ok"})
	}
	bindArticle := func(c *gin.Context) {
		var req CreateArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ValidationErrorResponse(c, err)
			return
		}
		SuccessResponse(c, gin.H{"message": "ok"})
	}

	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing username",
			handler:  bindRegister,
			body:     `{"password":"secret"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "缺少必填字段: username",
		},
		{
			name:     "empty username treated as missing",
			handler:  bindRegister,
			body:     `{"username":"","password":"secret"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "缺少必填字段: username",
		},
		{
			name:     "missing password",
			handler:  bindRegister,
			body:     `{"username":"alice"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "缺少必填字段: password",
		},
		{
			name:     "missing title",
			handler:  bindArticle,
			body:     `{"content":"正文","author_id":1}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "缺少必填字段: title",
		},
		{
			name:     "missing content",
			handler:  bindArticle,
			body:     `{"title":"标题","author_id":1}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "缺少必填字段: content",
		},
		{
			name:     "complete body accepted",
			handler:  bindRegister,
			body:     `{"username":"alice","password":"secret"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed json falls back to generic message",
			handler:  bindRegister,
			body:     `{"username":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "请求参数错误",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/bind", tt.handler)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantErr == "" {
				return
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if !strings.HasPrefix(body["error"], tt.wantErr) {
				t.Errorf("error = %q, want prefix %q", body["error"], tt.wantErr)
			}
		})
	}
}

// TestToSnakeCase 字段名转蛇形
func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Username", want: "username"},
		{in: "RealName", want: "real_name"},
		{in: "Title", want: "title"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
