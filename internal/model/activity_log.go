package model

// ==================== ActivityLog 操作日志 ====================

// ActivityLog 操作日志，追加写，尽力而为
// 写失败只降级记录，不影响主流程
type ActivityLog struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IPAddress   string `gorm:"size:64" json:"ip_address"`
}

func (*ActivityLog) TableName() string {
	return "activity_logs"
}
