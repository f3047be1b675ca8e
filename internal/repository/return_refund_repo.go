package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 过滤条件 ====================

// ReturnRefundFilter 退换/退款过滤条件
type ReturnRefundFilter struct {
	CustomerID int64
	OrderRefID int64
	Status     string
	Page       int
	PageSize   int
}

// ==================== ReturnRefundRepository 退换/退款仓库 ====================

// ReturnRefundRepository 退换/退款仓库接口
type ReturnRefundRepository interface {
	Create(ctx context.Context, rr *model.ReturnRefund) error
	GetByID(ctx context.Context, id int64) (*model.ReturnRefund, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.ReturnRefund, error)
	List(ctx context.Context, filter ReturnRefundFilter) ([]model.ReturnRefund, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error

	// UpdateStatusFrom 带前置状态条件的状态更新，返回受影响行数
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error)
}

type returnRefundRepository struct {
	db *gorm.DB
}

// NewReturnRefundRepository 创建退换/退款仓库
func NewReturnRefundRepository(db *gorm.DB) ReturnRefundRepository {
	return &returnRefundRepository{db: db}
}

func (r *returnRefundRepository) Create(ctx context.Context, rr *model.ReturnRefund) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *returnRefundRepository) GetByID(ctx context.Context, id int64) (*model.ReturnRefund, error) {
	var rr model.ReturnRefund
	err := r.db.WithContext(ctx).First(&rr, id).Error
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

func (r *returnRefundRepository) GetByPublicID(ctx context.Context, publicID string) (*model.ReturnRefund, error) {
	var rr model.ReturnRefund
	err := r.db.WithContext(ctx).Where("return_refund_id = ?", publicID).First(&rr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

func (r *returnRefundRepository) List(ctx context.Context, filter ReturnRefundFilter) ([]model.ReturnRefund, int64, error) {
	var rows []model.ReturnRefund
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ReturnRefund{})

	if filter.CustomerID > 0 {
		db = db.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.OrderRefID > 0 {
		db = db.Where("order_ref_id = ?", filter.OrderRefID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		db = db.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := db.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *returnRefundRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ReturnRefund{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *returnRefundRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ReturnRefund{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
