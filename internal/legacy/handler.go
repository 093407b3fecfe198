package legacy

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
)

type LegacyHandler struct {
	legacyService *LegacyService
}

func NewLegacyHandler(db *gorm.DB) *LegacyHandler {
	return &LegacyHandler{
		legacyService: NewLegacyService(db),
	}
}

// AddUser 添加用户（兼容旧版本）
func (h *LegacyHandler) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.legacyService.AddUser(req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "添加成功"})
}

// DeleteUser 删除用户（兼容旧版本，用户ID在请求体里）
func (h *LegacyHandler) DeleteUser(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.legacyService.DeleteUser(req.ID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": fmt.Sprintf("用户%d 删除成功", req.ID)})
}

// GetPassages 获取随笔列表（兼容旧版本）
func (h *LegacyHandler) GetPassages(c *gin.Context) {
	passages, bizErr := h.legacyService.ListPassages()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, passages)
}

// GetUserPassages 获取指定用户的随笔（兼容旧版本，用户名在请求体里）
func (h *LegacyHandler) GetUserPassages(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	passages, bizErr := h.legacyService.ListPassagesByUsername(req.Name)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, passages)
}

// AddPassage 添加随笔（兼容旧版本）
func (h *LegacyHandler) AddPassage(c *gin.Context) {
	var req struct {
		Content  string `json:"content" binding:"required"`
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.legacyService.AddPassage(req.Content, req.Username); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "添加成功"})
}
