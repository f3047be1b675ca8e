package model

// ==================== Category 商品分类 ====================

// Category 商品分类
type Category struct {
	BaseModel
	Name     string       `gorm:"size:128;uniqueIndex;not null" json:"name"`
	IsActive ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*Category) TableName() string {
	return "categories"
}

// ==================== Product 商品 ====================

// Product 商品
// 金额以最小货币单位（分）存储
type Product struct {
	BaseModel
	ShopID      int64        `gorm:"index;not null" json:"shop_id"`
	CategoryID  int64        `gorm:"index" json:"category_id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	Slug        string       `gorm:"size:255;index" json:"slug"`
	Description string       `gorm:"type:text" json:"description"`
	Price       int64        `gorm:"not null" json:"price"`
	Quantity    int          `gorm:"not null;default:0" json:"quantity"`
	Image       string       `gorm:"size:512" json:"image"`
	IsActive    ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*Product) TableName() string {
	return "products"
}
