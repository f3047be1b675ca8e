package model

// ==================== 提现状态 ====================

const (
	WithdrawalStatusPending   = "pending_withdrawal"   // 待打款
	WithdrawalStatusProcessed = "processed_withdrawal" // 已打款（终态）
)

// CanProcessWithdrawal 是否允许标记为已打款
func CanProcessWithdrawal(current string) bool {
	return current == WithdrawalStatusPending
}

// ==================== SellerWithdrawal 提现申请 ====================

// SellerWithdrawal 提现申请，一次申请对应一批被扫入的余额流水
// Amount 由被扫入流水求和得出，不信任客户端
type SellerWithdrawal struct {
	BaseModel
	PublicID string `gorm:"column:seller_withdrawal_id;size:32;uniqueIndex;not null" json:"seller_withdrawal_id"`
	SellerID int64  `gorm:"index;not null" json:"seller_id"`
	ShopID   int64  `gorm:"index" json:"shop_id"`

	Amount int64  `gorm:"not null" json:"amount"`
	Status string `gorm:"size:32;index;default:pending_withdrawal" json:"status"`

	IsActive ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*SellerWithdrawal) TableName() string {
	return "seller_withdrawals"
}
