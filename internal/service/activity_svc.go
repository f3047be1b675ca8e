package service

import (
	"context"

	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/logger"
)

// ==================== ActivityLogService 操作日志服务 ====================

// ActivityLogService 操作日志服务
// 所有落库失败只记 Warn，不向主流程传播
type ActivityLogService struct {
	logRepo repository.ActivityLogRepository
}

// NewActivityLogService 创建操作日志服务
func NewActivityLogService(logRepo repository.ActivityLogRepository) *ActivityLogService {
	return &ActivityLogService{logRepo: logRepo}
}

// Record 记录一条操作日志（尽力而为）
// 操作方 IP 从审计上下文取
func (s *ActivityLogService) Record(ctx context.Context, title, description string) {
	log := &model.ActivityLog{
		Title:       title,
		Description: description,
		IPAddress:   middleware.GetAuditIP(ctx),
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		logger.L().Warn("操作日志写入失败",
			zap.String("title", title),
			zap.Error(err))
	}
}

// List 操作日志列表
func (s *ActivityLogService) List(ctx context.Context, page, pageSize int) ([]model.ActivityLog, int64, error) {
	return s.logRepo.List(ctx, page, pageSize)
}
