// Package user 用户模型
package user

import "time"

// User 用户表
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	// 邮箱可空；非空时全局唯一（数据库层面 NULL 不参与唯一约束）
	Email        *string `gorm:"type:varchar(120);uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	// 保留字段，仅用于展示
	RealName string `gorm:"type:varchar(64)" json:"real_name"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	// 权限: 0 普通用户, 1 管理员
	Authority int       `gorm:"default:0" json:"authority"`
	Avatar    string    `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
