package dto

// ==================== 店铺 ====================

// CreateShopRequest 新建店铺请求
type CreateShopRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateShopRequest 店铺更新（补丁式：nil 字段不变更）
type UpdateShopRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListShopsRequest 店铺列表请求
type ListShopsRequest struct {
	SellerID int64  `form:"seller_id"`
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// ShopInfo 店铺信息
type ShopInfo struct {
	ID          int64  `json:"id"`
	SellerID    int64  `json:"seller_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    int    `json:"is_active"`
	Followers   int64  `json:"followers,omitempty"`
}

// ListShopsResponse 店铺列表响应
type ListShopsResponse struct {
	Total int64      `json:"total"`
	List  []ShopInfo `json:"list"`
}
