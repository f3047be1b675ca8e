package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ==================== 退换/退款状态 ====================

const (
	ReturnRefundStatusPending  = "pending"  // 待处理
	ReturnRefundStatusAccepted = "accepted" // 已同意（终态）
	ReturnRefundStatusRejected = "rejected" // 已驳回（终态）
)

// ValidReturnRefundDecision 裁决值是否合法
func ValidReturnRefundDecision(status string) bool {
	return status == ReturnRefundStatusAccepted || status == ReturnRefundStatusRejected
}

// ReturnRefundTerminal 是否终态
func ReturnRefundTerminal(status string) bool {
	return status != ReturnRefundStatusPending
}

// ==================== ReturnRefund 退换/退款申请 ====================

// ReturnRefund 退换/退款申请
// Product 字段是下单快照中对应行项目的副本，不回查商品表
type ReturnRefund struct {
	BaseModel
	PublicID   string `gorm:"column:return_refund_id;size:32;uniqueIndex;not null" json:"return_refund_id"`
	OrderRefID int64  `gorm:"column:order_ref_id;index;not null" json:"order_ref_id"`
	CustomerID int64  `gorm:"index;not null" json:"customer_id"`

	Product datatypes.JSON `gorm:"type:jsonb" json:"product"`

	Reason        string `gorm:"type:text" json:"reason"`
	EvidenceImage string `gorm:"size:512" json:"evidence_image"`

	Status   string       `gorm:"size:32;index;default:pending" json:"status"`
	IsActive ActiveStatus `gorm:"default:1" json:"is_active"`
}

func (*ReturnRefund) TableName() string {
	return "return_refunds"
}

// ProductLine 解析快照行项目
func (r *ReturnRefund) ProductLine() (*OrderLine, error) {
	var line OrderLine
	if err := json.Unmarshal(r.Product, &line); err != nil {
		return nil, err
	}
	return &line, nil
}
