package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== 测试辅助 ====================

// mustCreateOrder 以标准夹具下一单（商品A x1 + 商品B x1）
func mustCreateOrder(t *testing.T, env *testEnv, fx *marketplaceFixture) *model.Order {
	t.Helper()
	order, err := env.orderSvc.CreateOrder(testCtx(), fx.customer.ID, &dto.CreateOrderRequest{
		ShopID:        fx.shop.ID,
		PaymentMethod: "cod",
		Items: []dto.OrderItemRequest{
			{ProductID: fx.productA.ID, Quantity: 1},
			{ProductID: fx.productB.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	return order
}

// ==================== 单元测试 ====================

func TestReturnRefundService_Request(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	order := mustCreateOrder(t, env, fx)

	rr, err := env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productA.ID,
		Reason:    "damaged on arrival",
	})
	if err != nil {
		t.Fatalf("发起申请失败: %v", err)
	}
	if rr.Status != model.ReturnRefundStatusPending {
		t.Errorf("status = %s, want pending", rr.Status)
	}

	// 申请携带快照行项目的副本
	line, err := rr.ProductLine()
	if err != nil {
		t.Fatalf("解析快照副本失败: %v", err)
	}
	if line.ProductID != fx.productA.ID || line.Price != 50 {
		t.Errorf("快照副本不符: %+v", line)
	}
}

func TestReturnRefundService_ProductMustBeInSnapshot(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)

	// 只买了商品A
	order, err := env.orderSvc.CreateOrder(testCtx(), fx.customer.ID, &dto.CreateOrderRequest{
		ShopID:        fx.shop.ID,
		PaymentMethod: "cod",
		Items:         []dto.OrderItemRequest{{ProductID: fx.productA.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	// 商品B存在于目录但不在本单快照里，按不存在处理
	_, err = env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productB.ID,
		Reason:    "wrong item",
	})
	if !errors.Is(err, ErrProductNotInOrder) {
		t.Fatalf("err = %v, want ErrProductNotInOrder", err)
	}

	// 别人的订单按不存在处理
	stranger := env.mustCreateUser(t, "stranger", model.RoleCustomer)
	_, err = env.returnRefundSvc.RequestReturnRefund(testCtx(), stranger.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productA.ID,
		Reason:    "not mine",
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestReturnRefundService_AdjudicateAccepted(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	order := mustCreateOrder(t, env, fx)

	rr, err := env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productA.ID,
		Reason:    "damaged",
	})
	if err != nil {
		t.Fatalf("发起申请失败: %v", err)
	}

	updated, err := env.returnRefundSvc.Adjudicate(testCtx(), rr.PublicID, model.ReturnRefundStatusAccepted)
	if err != nil {
		t.Fatalf("裁决失败: %v", err)
	}
	if updated.Status != model.ReturnRefundStatusAccepted {
		t.Errorf("status = %s, want accepted", updated.Status)
	}

	// 同意后该行项目的 pending 流水被撤销，另一行不受影响
	rows, _, err := env.balanceRepo.List(testCtx(), repository.BalanceFilter{OrderRefID: order.ID})
	if err != nil {
		t.Fatalf("查询流水失败: %v", err)
	}
	for _, b := range rows {
		switch b.ProductID {
		case fx.productA.ID:
			if b.Status != model.BalanceStatusCancelled {
				t.Errorf("商品A流水状态 = %s, want cancelled", b.Status)
			}
		case fx.productB.ID:
			if b.Status != model.BalanceStatusPending {
				t.Errorf("商品B流水状态 = %s, want pending", b.Status)
			}
		}
	}
}

func TestReturnRefundService_TerminalIsFinal(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	order := mustCreateOrder(t, env, fx)

	rr, err := env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productA.ID,
		Reason:    "damaged",
	})
	if err != nil {
		t.Fatalf("发起申请失败: %v", err)
	}

	if _, err := env.returnRefundSvc.Adjudicate(testCtx(), rr.PublicID, model.ReturnRefundStatusRejected); err != nil {
		t.Fatalf("裁决失败: %v", err)
	}

	// 终态不可再改，哪怕换个结论
	if _, err := env.returnRefundSvc.Adjudicate(testCtx(), rr.PublicID, model.ReturnRefundStatusAccepted); !errors.Is(err, ErrReturnRefundFinalized) {
		t.Errorf("err = %v, want ErrReturnRefundFinalized", err)
	}
	if _, err := env.returnRefundSvc.Adjudicate(testCtx(), rr.PublicID, model.ReturnRefundStatusRejected); !errors.Is(err, ErrReturnRefundFinalized) {
		t.Errorf("err = %v, want ErrReturnRefundFinalized", err)
	}

	// 驳回不撤销余额流水
	rows, err := env.balanceRepo.ListPendingByOrder(testCtx(), order.ID)
	if err != nil {
		t.Fatalf("查询流水失败: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("pending 流水数 = %d, want 2", len(rows))
	}
}

func TestReturnRefundService_InvalidDecision(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	order := mustCreateOrder(t, env, fx)

	rr, err := env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
		OrderID:   order.PublicID,
		ProductID: fx.productA.ID,
		Reason:    "damaged",
	})
	if err != nil {
		t.Fatalf("发起申请失败: %v", err)
	}

	if _, err := env.returnRefundSvc.Adjudicate(testCtx(), rr.PublicID, "maybe"); !errors.Is(err, ErrInvalidDecision) {
		t.Errorf("err = %v, want ErrInvalidDecision", err)
	}
	if _, err := env.returnRefundSvc.Adjudicate(testCtx(), "missing", model.ReturnRefundStatusAccepted); !errors.Is(err, ErrReturnRefundNotFound) {
		t.Errorf("err = %v, want ErrReturnRefundNotFound", err)
	}
}

func TestReturnRefundService_ListByCustomer(t *testing.T) {
	env := newTestEnv(t)
	fx := env.mustSeedMarketplace(t)
	order := mustCreateOrder(t, env, fx)

	for _, pid := range []int64{fx.productA.ID, fx.productB.ID} {
		if _, err := env.returnRefundSvc.RequestReturnRefund(testCtx(), fx.customer.ID, &dto.CreateReturnRefundRequest{
			OrderID:   order.PublicID,
			ProductID: pid,
			Reason:    "damaged",
		}); err != nil {
			t.Fatalf("发起申请失败: %v", err)
		}
	}

	_, total, err := env.returnRefundSvc.ListByCustomer(testCtx(), fx.customer.ID, &dto.ListReturnRefundsRequest{})
	if err != nil {
		t.Fatalf("申请列表失败: %v", err)
	}
	if total != 2 {
		t.Errorf("申请数 = %d, want 2", total)
	}
}
