package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 仓储接口 ====================

// ActivityLogRepository 操作日志仓储接口
type ActivityLogRepository interface {
	Create(ctx context.Context, log *model.ActivityLog) error
	GetByID(ctx context.Context, id int64) (*model.ActivityLog, error)
	List(ctx context.Context, page, pageSize int) ([]model.ActivityLog, int64, error)

	// DeleteBefore 删除某时间点之前的日志，返回删除行数（保留期清理）
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// ==================== 仓储实现 ====================

type activityLogRepo struct {
	db *gorm.DB
}

// NewActivityLogRepository 创建操作日志仓储
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, log *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepo) GetByID(ctx context.Context, id int64) (*model.ActivityLog, error) {
	var log model.ActivityLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *activityLogRepo) List(ctx context.Context, page, pageSize int) ([]model.ActivityLog, int64, error) {
	var rows []model.ActivityLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page > 0 && pageSize > 0 {
		db = db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	if err := db.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *activityLogRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&model.ActivityLog{})
	return res.RowsAffected, res.Error
}
