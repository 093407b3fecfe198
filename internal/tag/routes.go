package tag

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupTagRoutes 设置标签相关路由
func SetupTagRoutes(r *gin.RouterGroup, db *gorm.DB) {
	tagHandler := NewTagHandler(db)

	tags := r.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.POST("", tagHandler.CreateTag)
	}
}
