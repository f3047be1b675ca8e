package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 单元测试 ====================

func TestFollowService_FollowAndCount(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	buyer2 := env.mustCreateUser(t, "buyer02", model.RoleCustomer)

	if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}
	if err := env.followSvc.FollowShop(testCtx(), buyer2.ID, fx.shop.ID); err != nil {
		t.Fatalf("第二个买家关注失败: %v", err)
	}

	count, err := env.followSvc.CountFollowers(testCtx(), fx.shop.ID)
	if err != nil {
		t.Fatalf("统计粉丝失败: %v", err)
	}
	if count != 2 {
		t.Errorf("followers = %d, want 2", count)
	}

	// 店铺不存在
	if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, 9999); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}
}

func TestFollowService_FollowIdempotent(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	// 重复关注不报错也不重复计数
	for i := 0; i < 3; i++ {
		if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
			t.Fatalf("第 %d 次关注失败: %v", i+1, err)
		}
	}

	count, err := env.followSvc.CountFollowers(testCtx(), fx.shop.ID)
	if err != nil {
		t.Fatalf("统计粉丝失败: %v", err)
	}
	if count != 1 {
		t.Errorf("followers = %d, want 1", count)
	}
}

func TestFollowService_UnfollowAndRefollow(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}
	if err := env.followSvc.UnfollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
		t.Fatalf("取关失败: %v", err)
	}

	count, _ := env.followSvc.CountFollowers(testCtx(), fx.shop.ID)
	if count != 0 {
		t.Errorf("取关后 followers = %d, want 0", count)
	}

	// 重新关注复用原记录而不是新建行
	if err := env.followSvc.FollowShop(testCtx(), fx.customer.ID, fx.shop.ID); err != nil {
		t.Fatalf("重新关注失败: %v", err)
	}
	var rows int64
	env.db.Model(&model.Follow{}).
		Where("shop_id = ? AND customer_id = ?", fx.shop.ID, fx.customer.ID).
		Count(&rows)
	if rows != 1 {
		t.Errorf("关注记录数 = %d, want 1", rows)
	}

	// 未关注时取关是幂等的
	if err := env.followSvc.UnfollowShop(testCtx(), 9999, fx.shop.ID); err != nil {
		t.Errorf("幂等取关失败: %v", err)
	}
}
