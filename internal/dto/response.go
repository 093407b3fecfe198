package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	res "github.com/taoyize/vue-flask-blog/pkg/response"
)

// 响应中的时间格式，与旧版前端约定一致
const TimeLayout = "2006-01-02 15:04:05"

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Status, res.NewErrorBody(err.Msg))
}

// ValidationErrorResponse 处理请求体绑定错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]
			jsonField := toSnakeCase(firstErr.Field())

			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("缺少必填字段: %s", jsonField)
			case "max":
				message = fmt.Sprintf("字段 '%s' 长度不能超过 %s", jsonField, firstErr.Param())
			case "oneof":
				message = fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", jsonField, firstErr.Param())
			default:
				message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
			}

			ErrorResponse(c, res.ValidationError(message))
			return
		}
	}

	ErrorResponse(c, res.ValidationError("请求参数错误: "+err.Error()))
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
