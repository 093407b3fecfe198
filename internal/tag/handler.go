package tag

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
)

type TagHandler struct {
	tagService *TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tagService: NewTagService(db),
	}
}

// GetTags 获取所有标签
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, bizErr := h.tagService.ListTags()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, tags)
}

// CreateTag 创建新标签
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	tag, bizErr := h.tagService.CreateTag(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, gin.H{
		"message": "标签创建成功",
		"tag":     tag,
	})
}
