package dto

import "time"

// ==================== 退换/退款 ====================

// CreateReturnRefundRequest 退换/退款申请
// OrderID 为订单对外编号；ProductID 必须能在该订单快照中找到
type CreateReturnRefundRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	ProductID     int64  `json:"product_id" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	EvidenceImage string `json:"evidence_image"`
}

// AdjudicateReturnRefundRequest 裁决请求
type AdjudicateReturnRefundRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

// ReturnRefundInfo 退换/退款信息
type ReturnRefundInfo struct {
	ID             int64          `json:"id"`
	ReturnRefundID string         `json:"return_refund_id"`
	OrderRefID     int64          `json:"order_ref_id"`
	CustomerID     int64          `json:"customer_id"`
	Product        *OrderLineInfo `json:"product"`
	Reason         string         `json:"reason"`
	EvidenceImage  string         `json:"evidence_image"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ListReturnRefundsRequest 列表请求
type ListReturnRefundsRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// ListReturnRefundsResponse 列表响应
type ListReturnRefundsResponse struct {
	Total int64              `json:"total"`
	List  []ReturnRefundInfo `json:"list"`
}
