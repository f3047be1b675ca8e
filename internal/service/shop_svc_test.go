package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 单元测试 ====================

func TestShopService_CreateShop(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := env.mustCreateSeller(t, user.ID, "09171230001")

	shop, err := env.shopSvc.CreateShop(testCtx(), seller.ID, &dto.CreateShopRequest{
		Name:        "Sunrise Crafts",
		Description: "handmade goods",
	})
	if err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}
	if shop.IsActive != model.Active {
		t.Errorf("is_active = %d, want %d", shop.IsActive, model.Active)
	}

	// 卖家不存在
	if _, err := env.shopSvc.CreateShop(testCtx(), 9999, &dto.CreateShopRequest{Name: "Ghost"}); !errors.Is(err, ErrSellerNotFound) {
		t.Errorf("err = %v, want ErrSellerNotFound", err)
	}
}

func TestShopService_SecondActiveShopRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := env.mustCreateSeller(t, user.ID, "09171230001")

	if _, err := env.shopSvc.CreateShop(testCtx(), seller.ID, &dto.CreateShopRequest{Name: "First"}); err != nil {
		t.Fatalf("创建第一家店铺失败: %v", err)
	}

	// 已有启用中的店铺，再开一家被拒
	_, err := env.shopSvc.CreateShop(testCtx(), seller.ID, &dto.CreateShopRequest{Name: "Second"})
	if !errors.Is(err, ErrActiveShopExists) {
		t.Fatalf("err = %v, want ErrActiveShopExists", err)
	}

	// 另一个卖家不受影响
	user2 := env.mustCreateUser(t, "seller02", model.RoleSeller)
	seller2 := env.mustCreateSeller(t, user2.ID, "09171230002")
	if _, err := env.shopSvc.CreateShop(testCtx(), seller2.ID, &dto.CreateShopRequest{Name: "Other"}); err != nil {
		t.Errorf("其他卖家开店失败: %v", err)
	}
}

func TestShopService_ActivateAfterDeactivate(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := env.mustCreateSeller(t, user.ID, "09171230001")

	first, err := env.shopSvc.CreateShop(testCtx(), seller.ID, &dto.CreateShopRequest{Name: "First"})
	if err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}

	// 停用后即可开第二家
	if err := env.shopSvc.DeactivateShop(testCtx(), seller.ID, first.ID); err != nil {
		t.Fatalf("停用店铺失败: %v", err)
	}
	second, err := env.shopSvc.CreateShop(testCtx(), seller.ID, &dto.CreateShopRequest{Name: "Second"})
	if err != nil {
		t.Fatalf("停用后开第二家失败: %v", err)
	}

	// 第二家启用中时，重新启用第一家被拒
	if err := env.shopSvc.ActivateShop(testCtx(), seller.ID, first.ID); !errors.Is(err, ErrActiveShopExists) {
		t.Errorf("err = %v, want ErrActiveShopExists", err)
	}

	// 对同一家店重复启用放行
	if err := env.shopSvc.ActivateShop(testCtx(), seller.ID, second.ID); err != nil {
		t.Errorf("重复启用同一家店失败: %v", err)
	}

	// 把第二家停掉之后第一家才能回来
	if err := env.shopSvc.DeactivateShop(testCtx(), seller.ID, second.ID); err != nil {
		t.Fatalf("停用第二家失败: %v", err)
	}
	if err := env.shopSvc.ActivateShop(testCtx(), seller.ID, first.ID); err != nil {
		t.Errorf("重新启用第一家失败: %v", err)
	}
}

func TestShopService_ActivateOwnership(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := env.mustCreateSeller(t, user.ID, "09171230001")
	other := env.mustCreateSeller(t, env.mustCreateUser(t, "seller02", model.RoleSeller).ID, "09171230002")
	shop := env.mustCreateShop(t, seller.ID, "Mine", model.NotActive)

	// 别人的店铺按不存在处理
	if err := env.shopSvc.ActivateShop(testCtx(), other.ID, shop.ID); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}
	if err := env.shopSvc.DeactivateShop(testCtx(), other.ID, shop.ID); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}
}

func TestShopService_UpdateShopPatch(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := env.mustCreateSeller(t, user.ID, "09171230001")
	shop := env.mustCreateShop(t, seller.ID, "Old Name", model.Active)

	newName := "New Name"
	updated, err := env.shopSvc.UpdateShop(testCtx(), seller.ID, shop.ID, &dto.UpdateShopRequest{
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("更新店铺失败: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name = %s, want New Name", updated.Name)
	}
	// 未携带的字段保持原值
	if updated.Description != shop.Description {
		t.Errorf("description 被意外改写: %s", updated.Description)
	}
}

func TestApplyShopPatch(t *testing.T) {
	shop := &model.Shop{Name: "Old", Description: "keep"}
	name := "New"

	applyShopPatch(shop, &dto.UpdateShopRequest{Name: &name})

	if shop.Name != "New" {
		t.Errorf("name = %s, want New", shop.Name)
	}
	if shop.Description != "keep" {
		t.Errorf("description = %s, want keep", shop.Description)
	}
}

func TestShopService_GetShopWithFollowers(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
		t.Fatalf("关注店铺失败: %v", err)
	}

	shop, followers, err := env.shopSvc.GetShop(testCtx(), fx.shop.ID)
	if err != nil {
		t.Fatalf("查询店铺失败: %v", err)
	}
	if shop.ID != fx.shop.ID {
		t.Errorf("shop id = %d, want %d", shop.ID, fx.shop.ID)
	}
	if followers != 1 {
		t.Errorf("followers = %d, want 1", followers)
	}

	if _, _, err := env.shopSvc.GetShop(testCtx(), 9999); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}
}
