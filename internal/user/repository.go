package user

import (
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/user"
)

// UserRepository 用户仓储层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx 返回绑定到事务的仓储实例
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) GetByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *UserRepository) List() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Save(u *user.User) error {
	return r.db.Save(u).Error
}

// FindByIdentifier 按用户名或邮箱查找用户（登录用）
func (r *UserRepository) FindByIdentifier(identifier string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&u).Error
	return &u, err
}

// ExistsByUsername 用户名是否已被占用，excludeID 用于更新时排除自身
func (r *UserRepository) ExistsByUsername(username string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEmail 邮箱是否已被占用，excludeID 用于更新时排除自身
func (r *UserRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}
