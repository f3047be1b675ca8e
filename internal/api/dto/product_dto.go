package dto

// ==================== 商品 ====================

// CreateProductRequest 新建商品请求
type CreateProductRequest struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
	Image       string `json:"image"`
}

// UpdateProductRequest 商品更新（补丁式：nil 字段不变更）
// 名称变更会同步重算 slug
type UpdateProductRequest struct {
	CategoryID  *int64  `json:"category_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Quantity    *int    `json:"quantity"`
	Image       *string `json:"image"`
}

// ListProductsRequest 商品列表请求
type ListProductsRequest struct {
	ShopID     int64  `form:"shop_id"`
	CategoryID int64  `form:"category_id"`
	Keyword    string `form:"keyword"`
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=20"`
}

// ProductInfo 商品信息
type ProductInfo struct {
	ID          int64  `json:"id"`
	ShopID      int64  `json:"shop_id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image"`
	IsActive    int    `json:"is_active"`
}

// ListProductsResponse 商品列表响应
type ListProductsResponse struct {
	Total int64         `json:"total"`
	List  []ProductInfo `json:"list"`
}

// ==================== 分类 ====================

// CreateCategoryRequest 新建分类请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}
