package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ==================== 订单状态 ====================

// OrderStatus 配送状态，只能按顺序前进
const (
	OrderStatusProcessing     = "processing"       // 处理中
	OrderStatusPacked         = "packed"           // 已打包
	OrderStatusShipped        = "shipped"          // 已发货
	OrderStatusOutForDelivery = "out_for_delivery" // 派送中
	OrderStatusDelivered      = "delivered"        // 已签收（终态）
)

// orderStatusNext 订单状态流转表，Delivered 无后继
var orderStatusNext = map[string]string{
	OrderStatusProcessing:     OrderStatusPacked,
	OrderStatusPacked:         OrderStatusShipped,
	OrderStatusShipped:        OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

// ValidOrderStatus 状态值是否合法
func ValidOrderStatus(status string) bool {
	if status == OrderStatusDelivered {
		return true
	}
	_, ok := orderStatusNext[status]
	return ok
}

// CanAdvanceOrderStatus 是否允许从 current 流转到 next
// 只允许流转到紧邻的下一个状态，不允许跳级或回退
func CanAdvanceOrderStatus(current, next string) bool {
	succ, ok := orderStatusNext[current]
	return ok && succ == next
}

// NextOrderStatus 返回 current 的下一个状态，终态返回 false
func NextOrderStatus(current string) (string, bool) {
	succ, ok := orderStatusNext[current]
	return succ, ok
}

// ==================== 行项目快照 ====================

// OrderLine 下单时商品快照的行项目
// 快照落库后不可变，商品后续改价/下架不影响历史订单
type OrderLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal 行小计
func (l OrderLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// ==================== Order 订单 ====================

// Order 订单
type Order struct {
	BaseModel
	PublicID   string `gorm:"column:order_id;size:32;uniqueIndex;not null" json:"order_id"`
	CustomerID int64  `gorm:"index;not null" json:"customer_id"`
	ShopID     int64  `gorm:"index;not null" json:"shop_id"`

	// 下单时的商品快照（JSONB）
	Products datatypes.JSON `gorm:"type:jsonb" json:"products"`

	PaymentMethod string `gorm:"size:64" json:"payment_method"`

	// 金额（分为单位存储）
	SubtotalPrice    int64 `json:"subtotal_price"`
	ShippingFee      int64 `json:"shipping_fee"`
	PriceDiscount    int64 `json:"price_discount"`
	ShippingDiscount int64 `json:"shipping_discount"`
	TotalPrice       int64 `json:"total_price"`

	Status   string       `gorm:"size:32;index;default:processing" json:"status"`
	IsActive ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*Order) TableName() string {
	return "orders"
}

// Lines 解析商品快照
func (o *Order) Lines() ([]OrderLine, error) {
	var lines []OrderLine
	if len(o.Products) == 0 {
		return lines, nil
	}
	if err := json.Unmarshal(o.Products, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// FindLine 在快照中定位商品行项目
// 纯内存查找，不回查商品表，保证历史订单不受目录变更影响
func (o *Order) FindLine(productID int64) (*OrderLine, bool) {
	lines, err := o.Lines()
	if err != nil {
		return nil, false
	}
	for i := range lines {
		if lines[i].ProductID == productID {
			return &lines[i], true
		}
	}
	return nil, false
}
