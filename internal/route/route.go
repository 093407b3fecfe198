package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/config"
	"github.com/taoyize/vue-flask-blog/internal/article"
	"github.com/taoyize/vue-flask-blog/internal/legacy"
	"github.com/taoyize/vue-flask-blog/internal/stats"
	"github.com/taoyize/vue-flask-blog/internal/tag"
	"github.com/taoyize/vue-flask-blog/internal/user"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	user.SetupUserRoutes(api, db)
	article.SetupArticleRoutes(api, db)
	tag.SetupTagRoutes(api, db)
	stats.SetupStatsRoutes(api, db)
	legacy.SetupLegacyRoutes(api, db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "理想主义者后端API服务")
	})
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// FRONTEND_URL 由环境变量提供，经配置层统一读取
	origin := config.GetString("frontend.url")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}
