package model

import (
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/internal/model/passage"
	"github.com/taoyize/vue-flask-blog/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章相关模型
		&article.Article{},
		&article.Tag{},
		&article.ArticleTag{},
		&article.Like{},
		// 兼容旧版数据
		&passage.Passage{},
	)
	if err != nil {
		return err
	}
	return nil
}
