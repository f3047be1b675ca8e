package dto

import "time"

// ==================== 下单 ====================

// OrderItemRequest 下单行项目
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	ShopID           int64              `json:"shop_id" binding:"required"`
	PaymentMethod    string             `json:"payment_method" binding:"required"`
	Items            []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingFee      int64              `json:"shipping_fee" binding:"gte=0"`
	PriceDiscount    int64              `json:"price_discount" binding:"gte=0"`
	ShippingDiscount int64              `json:"shipping_discount" binding:"gte=0"`
}

// ==================== 状态流转 ====================

// AdvanceOrderStatusRequest 订单状态推进请求
type AdvanceOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ==================== 查询 ====================

// ListOrdersRequest 订单列表请求
type ListOrdersRequest struct {
	ShopID    int64  `form:"shop_id"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"` // 2026-01-01
	EndDate   string `form:"end_date"`
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=20"`
}

// OrderLineInfo 订单行项目（快照）
type OrderLineInfo struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderInfo 订单信息
type OrderInfo struct {
	ID               int64           `json:"id"`
	OrderID          string          `json:"order_id"`
	CustomerID       int64           `json:"customer_id"`
	ShopID           int64           `json:"shop_id"`
	PaymentMethod    string          `json:"payment_method"`
	Lines            []OrderLineInfo `json:"lines"`
	SubtotalPrice    int64           `json:"subtotal_price"`
	ShippingFee      int64           `json:"shipping_fee"`
	PriceDiscount    int64           `json:"price_discount"`
	ShippingDiscount int64           `json:"shipping_discount"`
	TotalPrice       int64           `json:"total_price"`
	Status           string          `json:"status"`
	IsActive         int             `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ListOrdersResponse 订单列表响应
type ListOrdersResponse struct {
	Total int64       `json:"total"`
	List  []OrderInfo `json:"list"`
}
