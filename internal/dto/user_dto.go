package dto

import "github.com/taoyize/vue-flask-blog/internal/model/user"

// RegisterRequest 注册请求
// username/password 由绑定层拦截缺失，格式与唯一性在服务层校验
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RealName string `json:"real_name"`
}

// LoginRequest 登录请求，username 字段同时接受用户名或邮箱
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest 用户资料部分更新请求
// 指针字段三态：nil 表示未提供不改动，空串表示清空（username 除外），非空表示更新
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	RealName *string `json:"real_name"`
}

// UserResponse 用户对外表示，不包含密码散列
type UserResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email"`
	Phone     string  `json:"phone"`
	RealName  string  `json:"real_name"`
	Authority int     `json:"authority"`
	Avatar    string  `json:"avatar"`
	CreatedAt string  `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		RealName:  u.RealName,
		Authority: u.Authority,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
	}
}
