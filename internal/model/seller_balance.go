package model

// ==================== 卖家余额状态 ====================

// SellerBalance 状态流转：
// pending → cancelled | completed
// completed → pending_withdrawal（提现申请批量扫入）
// pending_withdrawal → processed_withdrawal（终态）
const (
	BalanceStatusPending             = "pending"
	BalanceStatusCancelled           = "cancelled"
	BalanceStatusCompleted           = "completed"
	BalanceStatusPendingWithdrawal   = "pending_withdrawal"
	BalanceStatusProcessedWithdrawal = "processed_withdrawal"
)

// balanceStatusNext 余额状态流转表
var balanceStatusNext = map[string][]string{
	BalanceStatusPending:           {BalanceStatusCancelled, BalanceStatusCompleted},
	BalanceStatusPendingWithdrawal: {BalanceStatusProcessedWithdrawal},
	BalanceStatusCompleted:         {BalanceStatusPendingWithdrawal},
}

// CanTransitionBalance 是否允许从 current 流转到 next
func CanTransitionBalance(current, next string) bool {
	for _, s := range balanceStatusNext[current] {
		if s == next {
			return true
		}
	}
	return false
}

// ==================== SellerBalance 卖家余额 ====================

// SellerBalance 卖家余额流水，订单每个行项目一条
type SellerBalance struct {
	BaseModel
	PublicID   string `gorm:"column:seller_balance_id;size:32;uniqueIndex;not null" json:"seller_balance_id"`
	OrderRefID int64  `gorm:"column:order_ref_id;index;not null" json:"order_ref_id"`
	SellerID   int64  `gorm:"index;not null" json:"seller_id"`
	ShopID     int64  `gorm:"index;not null" json:"shop_id"`
	ProductID  int64  `gorm:"index" json:"product_id"`

	Amount int64  `gorm:"not null" json:"amount"`
	Status string `gorm:"size:32;index;default:pending" json:"status"`

	// 被哪次提现申请扫入（提现单的对外编号），便于对账
	WithdrawalID string `gorm:"size:32;index" json:"withdrawal_id"`

	IsActive ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*SellerBalance) TableName() string {
	return "seller_balances"
}
