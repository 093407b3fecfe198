package dto

import "github.com/taoyize/vue-flask-blog/internal/model/article"

// CreateArticleRequest 创建文章请求，author_id 的缺失提示由服务层给出
type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	AuthorID uint     `json:"author_id"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
}

// UpdateArticleRequest 文章部分更新请求，nil 字段不改动
type UpdateArticleRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Status  *string   `json:"status"`
	Tags    *[]string `json:"tags"`
}

// ArticleResponse 文章对外表示，带作者用户名和标签名列表
type ArticleResponse struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Author     *string  `json:"author"`
	AuthorID   uint     `json:"author_id"`
	Status     string   `json:"status"`
	Views      uint     `json:"views"`
	LikesCount uint     `json:"likes_count"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	Tags       []string `json:"tags"`
}

func NewArticleResponse(art *article.Article, authorName *string, tags []string) ArticleResponse {
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ID:         art.ID,
		Title:      art.Title,
		Content:    art.Content,
		Excerpt:    art.Excerpt,
		Author:     authorName,
		AuthorID:   art.AuthorID,
		Status:     art.Status,
		Views:      art.Views,
		LikesCount: art.LikesCount,
		CreatedAt:  art.CreatedAt.Format(TimeLayout),
		UpdatedAt:  art.UpdatedAt.Format(TimeLayout),
		Tags:       tags,
	}
}

// ArticleListResponse 文章分页响应
type ArticleListResponse struct {
	Articles    []ArticleResponse `json:"articles"`
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
}

// LikeToggleResponse 点赞切换响应
type LikeToggleResponse struct {
	Message    string `json:"message"`
	LikesCount uint   `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

// LikeStatusResponse 点赞状态查询响应
type LikeStatusResponse struct {
	IsLiked bool `json:"is_liked"`
}
