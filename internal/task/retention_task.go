package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== LogRetentionTask 日志清理任务 ====================

// LogRetentionTask 活动日志保留期清理任务
type LogRetentionTask struct {
	logRepo       repository.ActivityLogRepository
	cron          *cron.Cron
	spec          string
	retentionDays int
}

// NewLogRetentionTask 创建清理任务
func NewLogRetentionTask(logRepo repository.ActivityLogRepository, spec string, retentionDays int) *LogRetentionTask {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &LogRetentionTask{
		logRepo:       logRepo,
		cron:          cron.New(cron.WithSeconds()),
		spec:          spec,
		retentionDays: retentionDays,
	}
}

// Start 启动任务
func (t *LogRetentionTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		t.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	zap.L().Info("活动日志清理任务已启动",
		zap.String("cron", t.spec),
		zap.Int("retention_days", t.retentionDays))
	return nil
}

// Stop 停止任务
func (t *LogRetentionTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	zap.L().Info("活动日志清理任务已停止")
}

// RunOnce 执行一轮清理
func (t *LogRetentionTask) RunOnce(ctx context.Context) {
	before := time.Now().AddDate(0, 0, -t.retentionDays)
	deleted, err := t.logRepo.DeleteBefore(ctx, before)
	if err != nil {
		zap.L().Error("活动日志清理失败", zap.Error(err))
		return
	}
	if deleted > 0 {
		zap.L().Info("活动日志清理完成",
			zap.Int64("deleted", deleted),
			zap.Time("before", before))
	}
}
