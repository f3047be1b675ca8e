package model

// ==================== Shop 店铺 ====================

// Shop 店铺
// 约束：同一卖家同时最多只有一家启用中的店铺（部分唯一索引兜底，服务层先行检查）
type Shop struct {
	BaseModel
	SellerID    int64        `gorm:"index;not null;uniqueIndex:uniq_active_shop_per_seller,where:is_active = 1" json:"seller_id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	IsActive    ActiveStatus `gorm:"default:1" json:"is_active"`

	Products []Product `gorm:"foreignKey:ShopID" json:"products,omitempty"`
}

func (*Shop) TableName() string {
	return "shops"
}
