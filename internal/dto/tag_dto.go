package dto

import "github.com/taoyize/vue-flask-blog/internal/model/article"

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagResponse 标签对外表示
type TagResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func NewTagResponse(t *article.Tag) TagResponse {
	return TagResponse{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
	}
}

// StatsResponse 站点统计响应
type StatsResponse struct {
	TotalUsers    int64 `json:"total_users"`
	TotalArticles int64 `json:"total_articles"`
	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
}
