// Package passage 旧版随笔模型，仅为兼容历史数据保留
package passage

import "time"

// Passage 旧版随笔表，与 User/Article 无关联
type Passage struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Content  string    `gorm:"type:varchar(255)" json:"content"`
	Username string    `gorm:"type:varchar(255)" json:"username"`
	Time     time.Time `gorm:"column:time" json:"time"`
}
