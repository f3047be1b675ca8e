package model

import "time"

// ==================== 用户角色/状态 ====================

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSeller   UserRole = "seller"
	RoleCustomer UserRole = "customer"
)

// UserStatus 用户状态
type UserStatus int

const (
	UserStatusDisabled UserStatus = 0 // 禁用
	UserStatusActive   UserStatus = 1 // 正常
)

// ==================== SysUser 用户表 ====================

// SysUser 登录账号（买家 / 卖家 / 管理员共用）
type SysUser struct {
	BaseModel
	Username    string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Email       string     `gorm:"size:255" json:"email"`
	Role        UserRole   `gorm:"size:32;default:customer" json:"role"`
	Status      UserStatus `gorm:"default:1" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (*SysUser) TableName() string {
	return "sys_users"
}
