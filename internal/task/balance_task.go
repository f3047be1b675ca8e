package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// 每轮扫描的订单数上限
const settleBatchSize = 200

// ==================== BalanceSettleTask 余额自动结算任务 ====================

// BalanceSettleTask 余额自动结算任务
// 周期扫描已签收订单，把其下仍处于 pending 的余额流水结算为 completed。
// 带前置状态条件更新，和人工结算、退款撤销并发安全
type BalanceSettleTask struct {
	orderRepo   repository.OrderRepository
	balanceRepo repository.SellerBalanceRepository
	cron        *cron.Cron
	spec        string
}

// NewBalanceSettleTask 创建结算任务
func NewBalanceSettleTask(
	orderRepo repository.OrderRepository,
	balanceRepo repository.SellerBalanceRepository,
	spec string,
) *BalanceSettleTask {
	return &BalanceSettleTask{
		orderRepo:   orderRepo,
		balanceRepo: balanceRepo,
		cron:        cron.New(cron.WithSeconds()),
		spec:        spec,
	}
}

// Start 启动任务
func (t *BalanceSettleTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		t.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	zap.L().Info("余额自动结算任务已启动", zap.String("cron", t.spec))
	return nil
}

// Stop 停止任务，等待正在执行的一轮结束
func (t *BalanceSettleTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	zap.L().Info("余额自动结算任务已停止")
}

// RunOnce 执行一轮结算
func (t *BalanceSettleTask) RunOnce(ctx context.Context) {
	orders, err := t.orderRepo.ListByStatus(ctx, model.OrderStatusDelivered, settleBatchSize)
	if err != nil {
		zap.L().Error("扫描已签收订单失败", zap.Error(err))
		return
	}

	var settled int64
	for i := range orders {
		rows, err := t.balanceRepo.ListPendingByOrder(ctx, orders[i].ID)
		if err != nil {
			zap.L().Warn("查询订单待结算流水失败",
				zap.Int64("order_id", orders[i].ID), zap.Error(err))
			continue
		}
		for j := range rows {
			affected, err := t.balanceRepo.UpdateStatusFrom(ctx, rows[j].ID,
				model.BalanceStatusPending, model.BalanceStatusCompleted)
			if err != nil {
				zap.L().Warn("余额结算失败",
					zap.Int64("balance_id", rows[j].ID), zap.Error(err))
				continue
			}
			settled += affected
		}
	}

	if settled > 0 {
		zap.L().Info("余额自动结算完成",
			zap.Int("orders", len(orders)),
			zap.Int64("settled", settled))
	}
}
