package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
)

type StatsHandler struct {
	statsService *StatsService
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsService: NewStatsService(db),
	}
}

// GetStats 获取网站统计信息
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, bizErr := h.statsService.GetStats()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// SetupStatsRoutes 设置统计相关路由
func SetupStatsRoutes(r *gin.RouterGroup, db *gorm.DB) {
	statsHandler := NewStatsHandler(db)
	r.GET("/stats", statsHandler.GetStats)
}
