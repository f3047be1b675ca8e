package model

// ==================== Seller 卖家 ====================

// Seller 卖家资料，和登录账号一对一
type Seller struct {
	BaseModel
	UserID        int64        `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName     string       `gorm:"size:128" json:"first_name"`
	LastName      string       `gorm:"size:128" json:"last_name"`
	ContactNumber string       `gorm:"size:20;uniqueIndex;not null" json:"contact_number"`
	IsActive      ActiveStatus `gorm:"default:1" json:"is_active"`

	Shops        []Shop        `gorm:"foreignKey:SellerID" json:"shops,omitempty"`
	BankAccounts []BankAccount `gorm:"foreignKey:SellerID" json:"bank_accounts,omitempty"`
}

func (*Seller) TableName() string {
	return "sellers"
}
