package article

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/internal/model/user"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// WithTx 返回绑定到事务的仓储实例
func (r *ArticleRepository) WithTx(tx *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: tx}
}

func (r *ArticleRepository) GetByID(id uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, id).Error
	return &art, err
}

func (r *ArticleRepository) Create(art *article.Article) error {
	return r.db.Create(art).Error
}

func (r *ArticleRepository) Save(art *article.Article) error {
	return r.db.Save(art).Error
}

// IncrementViews 阅读量 +1，用原子 UPDATE 避免读改写丢失
func (r *ArticleRepository) IncrementViews(articleID uint) error {
	return r.db.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("views", gorm.Expr("views + 1")).Error
}

// IncrementLikes 点赞计数 +1
func (r *ArticleRepository) IncrementLikes(articleID uint) error {
	return r.db.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("likes_count", gorm.Expr("likes_count + 1")).Error
}

// DecrementLikes 点赞计数 -1，下限为 0
func (r *ArticleRepository) DecrementLikes(articleID uint) error {
	return r.db.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error
}

// List 已发布文章分页列表，可按标签名或作者用户名过滤
func (r *ArticleRepository) List(offset, limit int, tagName, authorName string) ([]article.Article, int64, error) {
	query := r.db.Model(&article.Article{}).Where("articles.status = ?", article.StatusPublished)

	if tagName != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", tagName)
	}
	if authorName != "" {
		query = query.
			Joins("JOIN users ON users.id = articles.author_id").
			Where("users.username = ?", authorName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []article.Article
	err := query.Order("articles.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

// ListHot 热门文章：阅读量降序，点赞数做平局处理
func (r *ArticleRepository) ListHot(limit int) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.Where("status = ?", article.StatusPublished).
		Order("views DESC").Order("likes_count DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListByAuthor 指定作者的已发布文章分页列表
func (r *ArticleRepository) ListByAuthor(authorID uint, offset, limit int) ([]article.Article, int64, error) {
	query := r.db.Model(&article.Article{}).
		Where("status = ? AND author_id = ?", article.StatusPublished, authorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []article.Article
	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

// GetAuthorName 查作者用户名，作者不存在时返回 nil
func (r *ArticleRepository) GetAuthorName(authorID uint) *string {
	var u user.User
	err := r.db.Select("username").First(&u, authorID).Error
	if err != nil {
		return nil
	}
	return &u.Username
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) WithTx(tx *gorm.DB) *TagRepository {
	return &TagRepository{db: tx}
}

// FindOrCreateTag 查找或创建标签，新标签使用默认颜色
func (r *TagRepository) FindOrCreateTag(name string) (*article.Tag, error) {
	var tag article.Tag

	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = article.Tag{
		Name:      name,
		Color:     "blue",
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(&tag).Error; err != nil {
		// 并发创建同名标签时由唯一约束拒绝，改为读取已有记录
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
				return nil, err
			}
			return &tag, nil
		}
		return nil, err
	}
	return &tag, nil
}

// AddArticleTag 添加文章标签关联，重复关联由唯一约束去重
func (r *TagRepository) AddArticleTag(articleID, tagID uint) error {
	articleTag := &article.ArticleTag{
		ArticleID: articleID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
	err := r.db.Create(articleTag).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RemoveArticleTags 移除文章的所有标签关联
func (r *TagRepository) RemoveArticleTags(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&article.ArticleTag{}).Error
}

// GetArticleTagNames 获取文章的标签名列表
func (r *TagRepository) GetArticleTagNames(articleID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&article.Tag{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Pluck("tags.name", &names).Error
	return names, err
}

// LikeRepository 点赞仓储层
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) WithTx(tx *gorm.DB) *LikeRepository {
	return &LikeRepository{db: tx}
}

func (r *LikeRepository) Get(userID, articleID uint) (*article.Like, error) {
	var like article.Like
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&like).Error
	return &like, err
}

func (r *LikeRepository) Create(like *article.Like) error {
	return r.db.Create(like).Error
}

func (r *LikeRepository) Delete(like *article.Like) error {
	return r.db.Delete(like).Error
}

// Exists 用户是否已点赞该文章
func (r *LikeRepository) Exists(userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&article.Like{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser 用户的点赞记录，按点赞时间倒序分页
func (r *LikeRepository) ListByUser(userID uint, offset, limit int) ([]article.Like, int64, error) {
	query := r.db.Model(&article.Like{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var likes []article.Like
	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&likes).Error
	return likes, total, err
}

// RemoveByArticle 删除文章的所有点赞记录
func (r *LikeRepository) RemoveByArticle(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&article.Like{}).Error
}
