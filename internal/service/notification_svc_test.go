package service

import (
	"testing"
)

// ==================== 单元测试 ====================

func TestNotificationService_CustomerFlow(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	env.notificationSvc.NotifyCustomer(testCtx(), fx.shop.ID, fx.customer.ID, "订单状态更新", "已发货")
	env.notificationSvc.NotifyCustomer(testCtx(), fx.shop.ID, fx.customer.ID, "下单成功", "订单已创建")

	list, total, err := env.notificationSvc.ListCustomerNotifications(testCtx(), fx.customer.ID, 1, 20)
	if err != nil {
		t.Fatalf("买家通知列表失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("通知数 = %d, want 2", total)
	}

	// 撤下后不再出现在列表里
	if err := env.notificationSvc.DismissCustomerNotification(testCtx(), list[0].ID); err != nil {
		t.Fatalf("撤下通知失败: %v", err)
	}
	_, total, err = env.notificationSvc.ListCustomerNotifications(testCtx(), fx.customer.ID, 1, 20)
	if err != nil {
		t.Fatalf("买家通知列表失败: %v", err)
	}
	if total != 1 {
		t.Errorf("撤下后通知数 = %d, want 1", total)
	}
}

func TestNotificationService_SellerFlow(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	env.notificationSvc.NotifySeller(testCtx(), fx.seller.ID, "新订单", "店铺收到新订单")

	list, total, err := env.notificationSvc.ListSellerNotifications(testCtx(), fx.seller.ID, 1, 20)
	if err != nil {
		t.Fatalf("卖家通知列表失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("通知数 = %d, want 1", total)
	}
	if list[0].Title != "新订单" {
		t.Errorf("title = %s, want 新订单", list[0].Title)
	}

	if err := env.notificationSvc.DismissSellerNotification(testCtx(), list[0].ID); err != nil {
		t.Fatalf("撤下通知失败: %v", err)
	}
	_, total, _ = env.notificationSvc.ListSellerNotifications(testCtx(), fx.seller.ID, 1, 20)
	if total != 0 {
		t.Errorf("撤下后通知数 = %d, want 0", total)
	}
}

func TestOrderFlowEmitsNotifications(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	mustCreateOrder(t, env, fx)

	// 下单同时给买卖双方发站内通知
	_, sellerTotal, err := env.notificationSvc.ListSellerNotifications(testCtx(), fx.seller.ID, 1, 20)
	if err != nil {
		t.Fatalf("卖家通知列表失败: %v", err)
	}
	if sellerTotal != 1 {
		t.Errorf("卖家通知数 = %d, want 1", sellerTotal)
	}

	_, customerTotal, err := env.notificationSvc.ListCustomerNotifications(testCtx(), fx.customer.ID, 1, 20)
	if err != nil {
		t.Fatalf("买家通知列表失败: %v", err)
	}
	if customerTotal != 1 {
		t.Errorf("买家通知数 = %d, want 1", customerTotal)
	}
}
