package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupArticleRoutes 设置文章相关路由
func SetupArticleRoutes(r *gin.RouterGroup, db *gorm.DB) {
	articleHandler := NewArticleHandler(db)

	articles := r.Group("/articles")
	{
		articles.GET("", articleHandler.GetArticles)
		articles.POST("", articleHandler.CreateArticle)
		// 静态路由优先于 :id 匹配
		articles.GET("/hot", articleHandler.GetHotArticles)
		articles.GET("/:id", articleHandler.GetArticle)
		articles.PUT("/:id", articleHandler.UpdateArticle)
		articles.DELETE("/:id", articleHandler.DeleteArticle)
		articles.POST("/:id/like", articleHandler.ToggleLike)
		articles.GET("/:id/like", articleHandler.CheckLikeStatus)
	}

	users := r.Group("/users")
	{
		users.GET("/:id/likes", articleHandler.GetUserLikedArticles)
		users.GET("/:id/articles", articleHandler.GetUserArticles)
	}
}
