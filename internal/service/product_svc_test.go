package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 单元测试 ====================

func TestProductService_Create(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	product, err := env.productSvc.CreateProduct(testCtx(), fx.seller.ID, fx.shop.ID, &dto.CreateProductRequest{
		Name:     "Bamboo Wind Chime",
		Price:    150,
		Quantity: 20,
	})
	if err != nil {
		t.Fatalf("上架商品失败: %v", err)
	}
	if product.Slug != "bamboo-wind-chime" {
		t.Errorf("slug = %s, want bamboo-wind-chime", product.Slug)
	}
	if product.IsActive != model.Active {
		t.Errorf("is_active = %d, want %d", product.IsActive, model.Active)
	}

	// 非本卖家的店铺按不存在处理
	other := env.mustCreateSeller(t, env.mustCreateUser(t, "seller02", model.RoleSeller).ID, "09171230002")
	if _, err := env.productSvc.CreateProduct(testCtx(), other.ID, fx.shop.ID, &dto.CreateProductRequest{
		Name: "Nope", Price: 10,
	}); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}

	// 分类不存在
	if _, err := env.productSvc.CreateProduct(testCtx(), fx.seller.ID, fx.shop.ID, &dto.CreateProductRequest{
		Name: "Nope", Price: 10, CategoryID: 9999,
	}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestProductService_UpdatePatch(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	// 只改价，名称和 slug 不动
	newPrice := int64(75)
	updated, err := env.productSvc.UpdateProduct(testCtx(), fx.seller.ID, fx.productA.ID, &dto.UpdateProductRequest{
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("更新商品失败: %v", err)
	}
	if updated.Price != 75 {
		t.Errorf("price = %d, want 75", updated.Price)
	}
	if updated.Name != fx.productA.Name {
		t.Errorf("名称被意外改写: %s", updated.Name)
	}

	// 改名同步重算 slug
	newName := "Rattan Basket XL"
	updated, err = env.productSvc.UpdateProduct(testCtx(), fx.seller.ID, fx.productA.ID, &dto.UpdateProductRequest{
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("改名失败: %v", err)
	}
	if updated.Slug != "rattan-basket-xl" {
		t.Errorf("slug = %s, want rattan-basket-xl", updated.Slug)
	}
}

func TestProductService_UpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	badPrice := int64(0)
	if _, err := env.productSvc.UpdateProduct(testCtx(), fx.seller.ID, fx.productA.ID, &dto.UpdateProductRequest{
		Price: &badPrice,
	}); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("err = %v, want ErrInvalidPrice", err)
	}

	badQty := -1
	if _, err := env.productSvc.UpdateProduct(testCtx(), fx.seller.ID, fx.productA.ID, &dto.UpdateProductRequest{
		Quantity: &badQty,
	}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}

	badCategory := int64(9999)
	if _, err := env.productSvc.UpdateProduct(testCtx(), fx.seller.ID, fx.productA.ID, &dto.UpdateProductRequest{
		CategoryID: &badCategory,
	}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}

	// 别人的商品按不存在处理
	other := env.mustCreateSeller(t, env.mustCreateUser(t, "seller02", model.RoleSeller).ID, "09171230002")
	price := int64(10)
	if _, err := env.productSvc.UpdateProduct(testCtx(), other.ID, fx.productA.ID, &dto.UpdateProductRequest{
		Price: &price,
	}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductService_ListOnlyActive(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	if err := env.productSvc.DeactivateProduct(testCtx(), fx.seller.ID, fx.productB.ID); err != nil {
		t.Fatalf("下架失败: %v", err)
	}

	// 公开列表只出启用中的商品
	products, total, err := env.productSvc.ListProducts(testCtx(), &dto.ListProductsRequest{ShopID: fx.shop.ID})
	if err != nil {
		t.Fatalf("商品列表失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("商品数 = %d, want 1", total)
	}
	if products[0].ID != fx.productA.ID {
		t.Errorf("列表返回了下架商品: %d", products[0].ID)
	}

	// 重新上架后恢复
	if err := env.productSvc.ActivateProduct(testCtx(), fx.seller.ID, fx.productB.ID); err != nil {
		t.Fatalf("重新上架失败: %v", err)
	}
	_, total, err = env.productSvc.ListProducts(testCtx(), &dto.ListProductsRequest{ShopID: fx.shop.ID})
	if err != nil {
		t.Fatalf("商品列表失败: %v", err)
	}
	if total != 2 {
		t.Errorf("商品数 = %d, want 2", total)
	}
}

func TestProductService_GetBySlug(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	product, err := env.productSvc.CreateProduct(testCtx(), fx.seller.ID, fx.shop.ID, &dto.CreateProductRequest{
		Name:  "Capiz Shell Lamp",
		Price: 300,
	})
	if err != nil {
		t.Fatalf("上架商品失败: %v", err)
	}

	found, err := env.productSvc.GetProductBySlug(testCtx(), "capiz-shell-lamp")
	if err != nil {
		t.Fatalf("按 slug 查询失败: %v", err)
	}
	if found.ID != product.ID {
		t.Errorf("id = %d, want %d", found.ID, product.ID)
	}

	if _, err := env.productSvc.GetProductBySlug(testCtx(), "no-such-slug"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductService_Categories(t *testing.T) {
	env := newTestEnv(t)

	category, err := env.productSvc.CreateCategory(testCtx(), &dto.CreateCategoryRequest{Name: "Home Decor"})
	if err != nil {
		t.Fatalf("新建分类失败: %v", err)
	}
	if category.ID == 0 {
		t.Error("分类未落库")
	}

	list, err := env.productSvc.ListCategories(testCtx())
	if err != nil {
		t.Fatalf("分类列表失败: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("分类数 = %d, want 1", len(list))
	}
}
