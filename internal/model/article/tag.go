package article

import "time"

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Color     string    `gorm:"type:varchar(20);default:'blue'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleTag 文章-标签关联表
// (article_id, tag_id) 唯一，同一标签名重复提交只产生一条关联
type ArticleTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_article_tag_unique" json:"article_id"`
	TagID     uint      `gorm:"not null;uniqueIndex:idx_article_tag_unique" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
