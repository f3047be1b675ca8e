package task

import (
	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/config"
)

// ==================== TaskManager 定时任务管理器 ====================

// TaskManager 统一管理定时任务
// 管理范围：余额自动结算、活动日志清理
type TaskManager struct {
	settleTask    *BalanceSettleTask
	retentionTask *LogRetentionTask
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	OrderRepo       repository.OrderRepository
	BalanceRepo     repository.SellerBalanceRepository
	ActivityLogRepo repository.ActivityLogRepository
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *config.TaskConfig) *TaskManager {
	tm := &TaskManager{}

	if cfg.BalanceSettleEnabled {
		tm.settleTask = NewBalanceSettleTask(deps.OrderRepo, deps.BalanceRepo, cfg.BalanceSettleCron)
	}
	if cfg.LogRetentionEnabled {
		tm.retentionTask = NewLogRetentionTask(deps.ActivityLogRepo, cfg.LogRetentionCron, cfg.LogRetentionDays)
	}

	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() {
	zap.L().Info("正在启动定时任务")

	if tm.settleTask != nil {
		if err := tm.settleTask.Start(); err != nil {
			zap.L().Error("余额自动结算任务启动失败", zap.Error(err))
		}
	}
	if tm.retentionTask != nil {
		if err := tm.retentionTask.Start(); err != nil {
			zap.L().Error("活动日志清理任务启动失败", zap.Error(err))
		}
	}
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	zap.L().Info("正在停止定时任务")

	if tm.settleTask != nil {
		tm.settleTask.Stop()
	}
	if tm.retentionTask != nil {
		tm.retentionTask.Stop()
	}
}
