package model

// ==================== Follow 关注 ====================

// Follow 买家关注店铺
type Follow struct {
	BaseModel
	PublicID   string       `gorm:"column:follow_id;size:32;uniqueIndex;not null" json:"follow_id"`
	ShopID     int64        `gorm:"index;not null;uniqueIndex:uniq_follow_shop_customer" json:"shop_id"`
	CustomerID int64        `gorm:"index;not null;uniqueIndex:uniq_follow_shop_customer" json:"customer_id"`
	IsActive   ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*Follow) TableName() string {
	return "follows"
}
