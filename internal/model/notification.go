package model

// ==================== Notification 买家通知 ====================

// Notification 买家通知（店铺 → 买家）
type Notification struct {
	BaseModel
	PublicID    string       `gorm:"column:notification_id;size:32;uniqueIndex;not null" json:"notification_id"`
	ShopID      int64        `gorm:"index" json:"shop_id"`
	CustomerID  int64        `gorm:"index;not null" json:"customer_id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	IsActive    ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*Notification) TableName() string {
	return "notifications"
}

// ==================== SellerNotification 卖家通知 ====================

// SellerNotification 卖家通知（平台 → 卖家）
type SellerNotification struct {
	BaseModel
	PublicID    string       `gorm:"column:seller_notification_id;size:32;uniqueIndex;not null" json:"seller_notification_id"`
	SellerID    int64        `gorm:"index;not null" json:"seller_id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	IsActive    ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*SellerNotification) TableName() string {
	return "seller_notifications"
}
