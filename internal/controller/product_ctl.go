package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// ProductController 商品控制器
type ProductController struct {
	productService *service.ProductService
	sellerService  *service.SellerService
}

func NewProductController(
	productService *service.ProductService,
	sellerService *service.SellerService,
) *ProductController {
	return &ProductController{
		productService: productService,
		sellerService:  sellerService,
	}
}

func (ctrl *ProductController) currentSeller(c *gin.Context) (*model.Seller, bool) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return seller, true
}

// ==================== API 方法 ====================

// CreateProduct 上架商品
// @Summary 上架商品
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param body body dto.CreateProductRequest true "上架请求"
// @Router /api/shops/{id}/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), seller.ID, shopID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toProductInfo(product))
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product
// @Param id path int true "商品ID"
// @Param body body dto.UpdateProductRequest true "更新请求"
// @Router /api/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), seller.ID, productID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toProductInfo(product))
}

// DeactivateProduct 下架商品
// @Summary 下架商品
// @Tags Product
// @Param id path int true "商品ID"
// @Router /api/products/{id}/deactivate [post]
func (ctrl *ProductController) DeactivateProduct(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeactivateProduct(c.Request.Context(), seller.ID, productID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ActivateProduct 重新上架商品
// @Summary 重新上架商品
// @Tags Product
// @Param id path int true "商品ID"
// @Router /api/products/{id}/activate [post]
func (ctrl *ProductController) ActivateProduct(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.ActivateProduct(c.Request.Context(), seller.ID, productID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// GetProduct 查询商品
// @Summary 查询商品
// @Tags Product
// @Param id path int true "商品ID"
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toProductInfo(product))
}

// ListProducts 商品列表
// @Summary 商品列表
// @Tags Product
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	products, total, err := ctrl.productService.ListProducts(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.ProductInfo, 0, len(products))
	for i := range products {
		list = append(list, toProductInfo(&products[i]))
	}
	Success(c, dto.ListProductsResponse{Total: total, List: list})
}

// ==================== 分类 ====================

// CreateCategory 新建分类（管理员）
// @Summary 新建分类
// @Tags Category
// @Param body body dto.CreateCategoryRequest true "新建请求"
// @Router /api/categories [post]
func (ctrl *ProductController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := ctrl.productService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, category)
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags Category
// @Router /api/categories [get]
func (ctrl *ProductController) ListCategories(c *gin.Context) {
	categories, err := ctrl.productService.ListCategories(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, categories)
}

// ==================== 转换函数 ====================

func toProductInfo(product *model.Product) dto.ProductInfo {
	return dto.ProductInfo{
		ID:          product.ID,
		ShopID:      product.ShopID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Image:       product.Image,
		IsActive:    int(product.IsActive),
	}
}
