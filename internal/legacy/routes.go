package legacy

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupLegacyRoutes 设置旧版兼容路由
func SetupLegacyRoutes(r *gin.RouterGroup, db *gorm.DB) {
	legacyHandler := NewLegacyHandler(db)

	r.POST("/addusers", legacyHandler.AddUser)
	r.POST("/deleteusers", legacyHandler.DeleteUser)
	r.GET("/passages", legacyHandler.GetPassages)
	// 旧前端对该接口同时使用过 GET 和 POST
	r.GET("/getusers", legacyHandler.GetUserPassages)
	r.POST("/getusers", legacyHandler.GetUserPassages)
	r.POST("/add_passages", legacyHandler.AddPassage)
}
