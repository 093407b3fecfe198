package article

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	return &ArticleHandler{
		articleService: NewArticleService(db),
	}
}

// GetArticles 获取文章列表
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	page, perPage := dto.ParsePagination(c)
	tag := c.Query("tag")
	author := c.Query("author")

	result, bizErr := h.articleService.ListArticles(page, perPage, tag, author)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// GetArticle 获取单篇文章详情，附带阅读量 +1 的副作用
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的文章ID"))
		return
	}

	art, bizErr := h.articleService.GetArticle(uint(id))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, art)
}

// CreateArticle 创建新文章
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.CreateArticle(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, gin.H{
		"message": "文章创建成功",
		"article": art,
	})
}

// UpdateArticle 更新文章
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的文章ID"))
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.UpdateArticle(uint(id), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "更新成功",
		"article": art,
	})
}

// DeleteArticle 删除文章
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的文章ID"))
		return
	}

	if bizErr := h.articleService.DeleteArticle(uint(id)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "文章删除成功"})
}

// GetHotArticles 获取热门文章
func (h *ArticleHandler) GetHotArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > dto.MaxPerPage {
		limit = dto.MaxPerPage
	}

	articles, bizErr := h.articleService.ListHotArticles(limit)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, articles)
}

// ToggleLike 点赞/取消点赞
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的文章ID"))
		return
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.articleService.ToggleLike(uint(articleID), req.UserID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// CheckLikeStatus 检查用户是否已点赞文章
func (h *ArticleHandler) CheckLikeStatus(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的文章ID"))
		return
	}

	userID, _ := strconv.Atoi(c.Query("user_id"))

	result, bizErr := h.articleService.CheckLikeStatus(uint(articleID), uint(userID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// GetUserLikedArticles 获取用户点赞的文章列表
func (h *ArticleHandler) GetUserLikedArticles(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的用户ID"))
		return
	}

	page, perPage := dto.ParsePagination(c)

	result, bizErr := h.articleService.ListUserLikedArticles(uint(userID), page, perPage)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// GetUserArticles 获取用户自己发布的文章列表
func (h *ArticleHandler) GetUserArticles(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.ValidationError("无效的用户ID"))
		return
	}

	page, perPage := dto.ParsePagination(c)

	result, bizErr := h.articleService.ListUserArticles(uint(userID), page, perPage)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}
