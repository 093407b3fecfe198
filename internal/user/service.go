package user

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	articleModel "github.com/taoyize/vue-flask-blog/internal/model/article"
	userModel "github.com/taoyize/vue-flask-blog/internal/model/user"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

var (
	emailRegex  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)
	phoneRegex  = regexp.MustCompile(`^1[3-9]\d{9}$`)
	avatarRegex = regexp.MustCompile(`^(https?://|data:image/)`)
)

// UserService 用户服务
type UserService struct {
	db       *gorm.DB
	userRepo *UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:       db,
		userRepo: NewUserRepository(db),
	}
}

// ListUsers 获取所有用户
func (s *UserService) ListUsers() ([]dto.UserResponse, *response.BusinessError) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, response.InternalError("获取用户列表失败", err)
	}

	result := make([]dto.UserResponse, len(users))
	for i := range users {
		result[i] = dto.NewUserResponse(&users[i])
	}
	return result, nil
}

// GetUser 获取单个用户
func (s *UserService) GetUser(id uint) (*dto.UserResponse, *response.BusinessError) {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("用户不存在")
		}
		return nil, response.InternalError("获取用户失败", err)
	}

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// Register 用户注册
func (s *UserService) Register(req dto.RegisterRequest) (*dto.UserResponse, *response.BusinessError) {
	// 必填字段校验
	if req.Username == "" {
		return nil, response.ValidationError("缺少必填字段: username")
	}
	if req.Password == "" {
		return nil, response.ValidationError("缺少必填字段: password")
	}

	// 用户名唯一性
	taken, err := s.userRepo.ExistsByUsername(req.Username, 0)
	if err != nil {
		return nil, response.InternalError("数据库查询错误", err)
	}
	if taken {
		return nil, response.ConflictError("用户名已存在")
	}

	// 邮箱可选：提供时校验格式与唯一性
	email := strings.TrimSpace(req.Email)
	if email != "" {
		if !emailRegex.MatchString(email) {
			return nil, response.ValidationError("邮箱格式不正确")
		}
		taken, err := s.userRepo.ExistsByEmail(email, 0)
		if err != nil {
			return nil, response.InternalError("数据库查询错误", err)
		}
		if taken {
			return nil, response.ConflictError("邮箱已存在")
		}
	}

	// 手机号可选：提供时校验格式
	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return nil, response.ValidationError("手机号格式不正确")
	}

	// 密码加密
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.InternalError("密码加密失败", err)
	}

	newUser := userModel.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		RealName:     req.RealName,
		Phone:        phone,
		Authority:    0,
	}
	if email != "" {
		newUser.Email = &email
	}

	if err := s.userRepo.Create(&newUser); err != nil {
		// 唯一约束兜底：并发注册同名用户时由约束拒绝
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ConflictError("用户名或邮箱已存在")
		}
		return nil, response.InternalError("用户创建失败", err)
	}

	resp := dto.NewUserResponse(&newUser)
	return &resp, nil
}

// Login 用户登录，identifier 同时匹配用户名与邮箱
// 未找到用户与密码错误返回同一错误，避免账号枚举
func (s *UserService) Login(req dto.LoginRequest) (*dto.UserResponse, *response.BusinessError) {
	if req.Username == "" || req.Password == "" {
		return nil, response.ValidationError("用户名和密码不能为空")
	}

	u, err := s.userRepo.FindByIdentifier(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.AuthError("用户名或密码错误")
		}
		return nil, response.InternalError("数据库查询错误", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.AuthError("用户名或密码错误")
	}

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// UpdateUser 部分更新用户资料，nil 字段不改动
func (s *UserService) UpdateUser(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, *response.BusinessError) {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("用户不存在")
		}
		return nil, response.InternalError("获取用户失败", err)
	}

	// 用户名：不允许清空，改名时重查唯一性
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, response.ValidationError("用户名不能为空")
		}
		if username != u.Username {
			taken, err := s.userRepo.ExistsByUsername(username, u.ID)
			if err != nil {
				return nil, response.InternalError("数据库查询错误", err)
			}
			if taken {
				return nil, response.ConflictError("用户名已存在")
			}
			u.Username = username
		}
	}

	// 邮箱：空串清空，非空校验格式与唯一性
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			u.Email = nil
		} else {
			if !emailRegex.MatchString(email) {
				return nil, response.ValidationError("邮箱格式不正确")
			}
			if u.Email == nil || email != *u.Email {
				taken, err := s.userRepo.ExistsByEmail(email, u.ID)
				if err != nil {
					return nil, response.InternalError("数据库查询错误", err)
				}
				if taken {
					return nil, response.ConflictError("邮箱已存在")
				}
			}
			u.Email = &email
		}
	}

	// 手机号：空串清空，非空校验格式
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != "" && !phoneRegex.MatchString(phone) {
			return nil, response.ValidationError("手机号格式不正确")
		}
		u.Phone = phone
	}

	// 头像：空串清空，非空校验长度与前缀
	if req.Avatar != nil {
		avatar := strings.TrimSpace(*req.Avatar)
		if avatar != "" {
			if len(avatar) > 255 {
				return nil, response.ValidationError("头像URL过长，最多255个字符")
			}
			if !avatarRegex.MatchString(avatar) {
				return nil, response.ValidationError("头像URL格式不正确，应以 http/https 或 data:image/ 开头")
			}
		}
		u.Avatar = avatar
	}

	if req.RealName != nil {
		u.RealName = *req.RealName
	}

	if err := s.userRepo.Save(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ConflictError("用户名或邮箱已存在")
		}
		return nil, response.InternalError("更新用户失败", err)
	}

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// DeleteUser 删除用户并级联清理
// 级联策略：
//  1. 删除该用户的点赞记录，并同步扣减对应文章的点赞计数
//  2. 删除该用户的文章及其标签关联、收到的点赞
//  3. 删除用户本身
// 整个过程在一个事务内完成，任一步失败全部回滚
func (s *UserService) DeleteUser(id uint) *response.BusinessError {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("用户不存在")
		}
		return response.InternalError("获取用户失败", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 扣减该用户点赞过的文章的计数
		likedArticles := tx.Model(&articleModel.Like{}).
			Select("article_id").
			Where("user_id = ?", id)
		if err := tx.Model(&articleModel.Article{}).
			Where("id IN (?)", likedArticles).
			Update("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&articleModel.Like{}).Error; err != nil {
			return err
		}

		// 删除该用户文章的标签关联与收到的点赞
		ownArticles := tx.Model(&articleModel.Article{}).
			Select("id").
			Where("author_id = ?", id)
		if err := tx.Where("article_id IN (?)", ownArticles).Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id IN (?)", ownArticles).Delete(&articleModel.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&articleModel.Article{}).Error; err != nil {
			return err
		}

		return tx.Delete(&userModel.User{}, id).Error
	})
	if err != nil {
		return response.InternalError("删除用户失败", err)
	}
	return nil
}
