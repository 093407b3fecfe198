// Package stats 站点统计
package stats

import (
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	articleModel "github.com/taoyize/vue-flask-blog/internal/model/article"
	userModel "github.com/taoyize/vue-flask-blog/internal/model/user"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStats 聚合读取：用户总数、已发布文章总数、阅读量总和、点赞总和
func (s *StatsService) GetStats() (*dto.StatsResponse, *response.BusinessError) {
	var result dto.StatsResponse

	if err := s.db.Model(&userModel.User{}).Count(&result.TotalUsers).Error; err != nil {
		return nil, response.InternalError("获取统计信息失败", err)
	}

	if err := s.db.Model(&articleModel.Article{}).
		Where("status = ?", articleModel.StatusPublished).
		Count(&result.TotalArticles).Error; err != nil {
		return nil, response.InternalError("获取统计信息失败", err)
	}

	if err := s.db.Model(&articleModel.Article{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&result.TotalViews).Error; err != nil {
		return nil, response.InternalError("获取统计信息失败", err)
	}

	if err := s.db.Model(&articleModel.Article{}).
		Select("COALESCE(SUM(likes_count), 0)").
		Scan(&result.TotalLikes).Error; err != nil {
		return nil, response.InternalError("获取统计信息失败", err)
	}

	return &result, nil
}
