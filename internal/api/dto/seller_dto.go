package dto

// ==================== 卖家 ====================

// CreateSellerRequest 卖家入驻请求
type CreateSellerRequest struct {
	FirstName     string `json:"first_name" binding:"required,max=128"`
	LastName      string `json:"last_name" binding:"required,max=128"`
	ContactNumber string `json:"contact_number" binding:"required,max=20"`
}

// UpdateSellerRequest 卖家资料更新（补丁式：nil 字段不变更）
type UpdateSellerRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
}

// SellerInfo 卖家信息
type SellerInfo struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	IsActive      int    `json:"is_active"`
}

// ==================== 收款账户 ====================

// CreateBankAccountRequest 新增收款账户请求
type CreateBankAccountRequest struct {
	Name          string `json:"name" binding:"required,oneof=gcash paymaya bank"`
	ContactNumber string `json:"contact_number" binding:"required,max=20"`
}

// UpdateBankAccountRequest 收款账户更新（补丁式）
type UpdateBankAccountRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
}

// BankAccountInfo 收款账户信息
type BankAccountInfo struct {
	ID            int64  `json:"id"`
	SellerID      int64  `json:"seller_id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	IsActive      int    `json:"is_active"`
}
