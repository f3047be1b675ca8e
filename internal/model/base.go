package model

import (
	"time"

	"gorm.io/gorm"
)

// ==================== 软删除开关 ====================

// ActiveStatus 软删除/可见性开关，和业务状态流转无关
type ActiveStatus int

const (
	NotActive ActiveStatus = 0 // 停用
	Active    ActiveStatus = 1 // 启用
)

// ==================== 基础模型 ====================

type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
