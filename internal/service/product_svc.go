package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	shopRepo     repository.ShopRepository
	activitySvc  *ActivityLogService
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	shopRepo repository.ShopRepository,
	activitySvc *ActivityLogService,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		shopRepo:     shopRepo,
		activitySvc:  activitySvc,
	}
}

// CreateProduct 上架商品
// slug 由名称派生
func (s *ProductService) CreateProduct(ctx context.Context, sellerID, shopID int64, req *dto.CreateProductRequest) (*model.Product, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil || shop.SellerID != sellerID {
		return nil, ErrShopNotFound
	}

	if req.CategoryID > 0 {
		if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	product := &model.Product{
		ShopID:      shopID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		IsActive:    model.Active,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "上架商品",
		fmt.Sprintf("店铺 %d 上架商品 %s (ID: %d)", shopID, product.Name, product.ID))
	return product, nil
}

// applyProductPatch 把补丁应用到商品，nil 字段跳过
// 名称变更同步重算 slug
func applyProductPatch(product *model.Product, req *dto.UpdateProductRequest) {
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
}

// UpdateProduct 更新商品
func (s *ProductService) UpdateProduct(ctx context.Context, sellerID, productID int64, req *dto.UpdateProductRequest) (*model.Product, error) {
	product, err := s.getOwnedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Price != nil && *req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if req.CategoryID != nil && *req.CategoryID > 0 {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	applyProductPatch(product, req)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "更新商品", fmt.Sprintf("商品 %d 已更新", productID))
	return product, nil
}

// DeactivateProduct 下架商品
func (s *ProductService) DeactivateProduct(ctx context.Context, sellerID, productID int64) error {
	if _, err := s.getOwnedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := s.productRepo.UpdateFields(ctx, productID, map[string]interface{}{
		"is_active": model.NotActive,
	}); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "下架商品", fmt.Sprintf("商品 %d 已下架", productID))
	return nil
}

// ActivateProduct 重新上架商品
func (s *ProductService) ActivateProduct(ctx context.Context, sellerID, productID int64) error {
	if _, err := s.getOwnedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := s.productRepo.UpdateFields(ctx, productID, map[string]interface{}{
		"is_active": model.Active,
	}); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "上架商品", fmt.Sprintf("商品 %d 已重新上架", productID))
	return nil
}

// GetProduct 查询商品
func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetProductBySlug 按 slug 查询商品
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts 商品列表
func (s *ProductService) ListProducts(ctx context.Context, req *dto.ListProductsRequest) ([]model.Product, int64, error) {
	active := model.Active
	return s.productRepo.List(ctx, repository.ProductFilter{
		ShopID:     req.ShopID,
		CategoryID: req.CategoryID,
		Keyword:    req.Keyword,
		IsActive:   &active,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
}

// CreateCategory 新建分类
func (s *ProductService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name:     req.Name,
		IsActive: model.Active,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories 分类列表
func (s *ProductService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// getOwnedProduct 查商品并校验归属
func (s *ProductService) getOwnedProduct(ctx context.Context, sellerID, productID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	shop, err := s.shopRepo.GetByID(ctx, product.ShopID)
	if err != nil || shop.SellerID != sellerID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ==================== 错误定义 ====================

var (
	ErrProductNotFound  = errors.New("商品不存在")
	ErrCategoryNotFound = errors.New("商品分类不存在")
	ErrInvalidPrice     = errors.New("商品价格必须大于零")
	ErrInvalidQuantity  = errors.New("商品库存不能为负")
)
