package model

// ==================== 收款渠道 ====================

// BankProvider 收款渠道
type BankProvider string

const (
	BankProviderGcash   BankProvider = "gcash"
	BankProviderPaymaya BankProvider = "paymaya"
	BankProviderBank    BankProvider = "bank"
)

// ValidBankProvider 渠道是否合法
func ValidBankProvider(p BankProvider) bool {
	switch p {
	case BankProviderGcash, BankProviderPaymaya, BankProviderBank:
		return true
	}
	return false
}

// ==================== BankAccount 收款账户 ====================

// BankAccount 卖家收款账户
// 约束：同一卖家同时最多只有一个启用中的收款账户
type BankAccount struct {
	BaseModel
	SellerID      int64        `gorm:"index;not null;uniqueIndex:uniq_active_bank_per_seller,where:is_active = 1" json:"seller_id"`
	Name          BankProvider `gorm:"size:32;not null" json:"name"`
	ContactNumber string       `gorm:"size:20;not null" json:"contact_number"`
	IsActive      ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*BankAccount) TableName() string {
	return "bank_accounts"
}
