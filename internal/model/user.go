package model

import "time"

// User 用户模型
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password  string    `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	IsEditor  bool      `gorm:"not null;default:false;comment:编辑角色标记" json:"is_editor"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:UploaderID" json:"videos,omitempty"`
}

func (User) TableName() string {
	return "users"
}
