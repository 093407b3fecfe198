package article

import "time"

// Like 点赞表
// (user_id, article_id) 唯一约束是并发切换下正确性的兜底：
// 重复插入由约束拒绝，调用方视为"已处于点赞状态"
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_article_like" json:"user_id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_user_article_like" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
