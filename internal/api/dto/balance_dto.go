package dto

import "time"

// ==================== 余额 ====================

// SettleBalanceRequest 余额结算请求
// status: completed（正常履约）| cancelled（订单取消/退货）
type SettleBalanceRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

// BalanceInfo 余额流水信息
type BalanceInfo struct {
	ID              int64     `json:"id"`
	SellerBalanceID string    `json:"seller_balance_id"`
	OrderRefID      int64     `json:"order_ref_id"`
	SellerID        int64     `json:"seller_id"`
	ShopID          int64     `json:"shop_id"`
	ProductID       int64     `json:"product_id"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	WithdrawalID    string    `json:"withdrawal_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListBalancesRequest 余额流水列表请求
type ListBalancesRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// ListBalancesResponse 余额流水列表响应
type ListBalancesResponse struct {
	Total int64         `json:"total"`
	List  []BalanceInfo `json:"list"`
}

// ==================== 提现 ====================

// RequestWithdrawalRequest 提现申请
// Amount 可选：填了就和扫入总额校验，不一致时拒绝；金额以扫入总额为准
type RequestWithdrawalRequest struct {
	Amount *int64 `json:"amount"`
}

// WithdrawalInfo 提现单信息
type WithdrawalInfo struct {
	ID                 int64     `json:"id"`
	SellerWithdrawalID string    `json:"seller_withdrawal_id"`
	SellerID           int64     `json:"seller_id"`
	ShopID             int64     `json:"shop_id"`
	Amount             int64     `json:"amount"`
	Status             string    `json:"status"`
	SweptCount         int       `json:"swept_count,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ListWithdrawalsRequest 提现列表请求
type ListWithdrawalsRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// ListWithdrawalsResponse 提现列表响应
type ListWithdrawalsResponse struct {
	Total int64            `json:"total"`
	List  []WithdrawalInfo `json:"list"`
}
