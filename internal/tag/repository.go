package tag

import (
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/article"
)

// TagRepository 标签仓储层（标签管理接口用，文章侧的关联操作见 article 包）
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List() ([]article.Tag, error) {
	var tags []article.Tag
	err := r.db.Order("id ASC").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Create(tag *article.Tag) error {
	return r.db.Create(tag).Error
}

// ExistsByName 标签名是否已存在
func (r *TagRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&article.Tag{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
