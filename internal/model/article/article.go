// Package article 文章相关模型
package article

import "time"

// 文章状态
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Article 文章表
type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// 摘要由内容派生：超过200字符时取前200字符加省略号，否则等于内容本身
	Excerpt  string `gorm:"type:varchar(500)" json:"excerpt"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	// 状态: draft, published, archived
	Status string `gorm:"type:varchar(20);default:'published'" json:"status"`
	// 阅读量，每次详情请求 +1
	Views uint `gorm:"default:0" json:"views"`
	// 点赞数冗余计数，只由点赞切换操作维护
	LikesCount uint      `gorm:"default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
