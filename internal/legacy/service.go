// Package legacy 旧版兼容接口，仅为兼容现有前端保留，新客户端不应使用
package legacy

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/passage"
	userModel "github.com/taoyize/vue-flask-blog/internal/model/user"
	userPkg "github.com/taoyize/vue-flask-blog/internal/user"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

// 旧版接口未提供密码时的默认密码
const defaultPassword = "123456"

type LegacyService struct {
	db          *gorm.DB
	userRepo    *userPkg.UserRepository
	userService *userPkg.UserService
}

func NewLegacyService(db *gorm.DB) *LegacyService {
	return &LegacyService{
		db:          db,
		userRepo:    userPkg.NewUserRepository(db),
		userService: userPkg.NewUserService(db),
	}
}

// AddUserRequest 旧版添加用户请求，字段命名沿用旧前端
type AddUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Authority any    `json:"authority"`
}

// coerceAuthority 旧前端会以数字或字符串提交权限，统一收敛到 {0, 1}
func coerceAuthority(raw any) int {
	var authority int
	switch v := raw.(type) {
	case float64:
		authority = int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		authority = n
	default:
		return 0
	}
	if authority != 0 && authority != 1 {
		return 0
	}
	return authority
}

// AddUser 旧版添加用户：邮箱必填，密码可选（默认密码），真实姓名取用户名
func (s *LegacyService) AddUser(req AddUserRequest) *response.BusinessError {
	if req.Name == "" {
		return response.ValidationError("用户名不能为空")
	}
	if req.Email == "" {
		return response.ValidationError("邮箱不能为空")
	}

	taken, err := s.userRepo.ExistsByUsername(req.Name, 0)
	if err != nil {
		return response.InternalError("数据库查询错误", err)
	}
	if taken {
		return response.ConflictError("用户名已存在")
	}

	taken, err = s.userRepo.ExistsByEmail(req.Email, 0)
	if err != nil {
		return response.InternalError("数据库查询错误", err)
	}
	if taken {
		return response.ConflictError("邮箱已存在")
	}

	password := strings.TrimSpace(req.Password)
	if password == "" {
		password = defaultPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return response.InternalError("密码加密失败", err)
	}

	email := req.Email
	newUser := userModel.User{
		Username:     req.Name,
		Email:        &email,
		PasswordHash: string(hashed),
		RealName:     req.Name,
		Phone:        "",
		Authority:    coerceAuthority(req.Authority),
	}

	if err := s.userRepo.Create(&newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ConflictError("用户名或邮箱已存在")
		}
		return response.InternalError("用户创建失败", err)
	}
	return nil
}

// DeleteUser 旧版删除用户，级联策略与新接口一致
func (s *LegacyService) DeleteUser(id uint) *response.BusinessError {
	if bizErr := s.userService.DeleteUser(id); bizErr != nil {
		if bizErr.Status == 404 {
			return response.NotFoundError("没有该用户")
		}
		return bizErr
	}
	return nil
}

// ListPassages 获取所有旧版随笔
func (s *LegacyService) ListPassages() ([]passage.Passage, *response.BusinessError) {
	var passages []passage.Passage
	if err := s.db.Order("id ASC").Find(&passages).Error; err != nil {
		return nil, response.InternalError("获取随笔列表失败", err)
	}
	return passages, nil
}

// ListPassagesByUsername 按用户名获取旧版随笔
func (s *LegacyService) ListPassagesByUsername(username string) ([]passage.Passage, *response.BusinessError) {
	if username == "" {
		return nil, response.ValidationError("缺少必填字段: name")
	}

	var passages []passage.Passage
	if err := s.db.Where("username = ?", username).Find(&passages).Error; err != nil {
		return nil, response.InternalError("获取随笔列表失败", err)
	}
	return passages, nil
}

// AddPassage 添加旧版随笔
func (s *LegacyService) AddPassage(content, username string) *response.BusinessError {
	if content == "" {
		return response.ValidationError("缺少必填字段: content")
	}
	if username == "" {
		return response.ValidationError("缺少必填字段: username")
	}

	p := passage.Passage{
		Content:  content,
		Username: username,
		Time:     time.Now(),
	}
	if err := s.db.Create(&p).Error; err != nil {
		return response.InternalError("添加随笔失败", err)
	}
	return nil
}
