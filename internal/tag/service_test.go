package tag

import (
	"net/http"
	"testing"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/internal/testutils"
)

// TestCreateTag 测试标签创建：默认颜色、重名拒绝、空名拒绝
func TestCreateTag(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTagService(db)

	tests := []struct {
		name       string
		req        dto.CreateTagRequest
		wantErr    bool
		wantStatus int
		wantColor  string
	}{
		{
			name:      "default color",
			req:       dto.CreateTagRequest{Name: "golang"},
			wantColor: "blue",
		},
		{
			name:      "explicit color",
			req:       dto.CreateTagRequest{Name: "前端", Color: "green"},
			wantColor: "green",
		},
		{
			name:       "duplicate name",
			req:        dto.CreateTagRequest{Name: "golang"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty name",
			req:        dto.CreateTagRequest{},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.CreateTag(tt.req)

			if tt.wantErr {
				if bizErr == nil {
					t.Fatal("expected error, got nil")
				}
				if bizErr.Status != tt.wantStatus {
					t.Errorf("status = %d, want %d", bizErr.Status, tt.wantStatus)
				}
				return
			}

			if bizErr != nil {
				t.Fatalf("CreateTag() error: %v", bizErr)
			}
			if resp.Name != tt.req.Name {
				t.Errorf("name = %q, want %q", resp.Name, tt.req.Name)
			}
			if resp.Color != tt.wantColor {
				t.Errorf("color = %q, want %q", resp.Color, tt.wantColor)
			}
		})
	}
}

// TestListTags 测试标签列表
func TestListTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTagService(db)

	resp, bizErr := service.ListTags()
	if bizErr != nil {
		t.Fatalf("ListTags() error: %v", bizErr)
	}
	if len(resp) != 0 {
		t.Fatalf("rows = %d, want 0", len(resp))
	}

	for _, name := range []string{"go", "数据库", "web"} {
		if err := db.Create(&article.Tag{Name: name, Color: "blue"}).Error; err != nil {
			t.Fatalf("create tag: %v", err)
		}
	}

	resp, bizErr = service.ListTags()
	if bizErr != nil {
		t.Fatalf("ListTags() error: %v", bizErr)
	}
	if len(resp) != 3 {
		t.Errorf("rows = %d, want 3", len(resp))
	}
}
