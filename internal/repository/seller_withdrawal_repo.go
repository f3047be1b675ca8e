package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 过滤条件 ====================

// WithdrawalFilter 提现过滤条件
type WithdrawalFilter struct {
	SellerID int64
	Status   string
	Page     int
	PageSize int
}

// ==================== SellerWithdrawalRepository 提现仓库 ====================

// SellerWithdrawalRepository 提现仓库接口
type SellerWithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *model.SellerWithdrawal) error
	GetByID(ctx context.Context, id int64) (*model.SellerWithdrawal, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.SellerWithdrawal, error)
	List(ctx context.Context, filter WithdrawalFilter) ([]model.SellerWithdrawal, int64, error)

	// UpdateStatusFrom 带前置状态条件的状态更新，返回受影响行数
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error)
}

type sellerWithdrawalRepository struct {
	db *gorm.DB
}

// NewSellerWithdrawalRepository 创建提现仓库
func NewSellerWithdrawalRepository(db *gorm.DB) SellerWithdrawalRepository {
	return &sellerWithdrawalRepository{db: db}
}

func (r *sellerWithdrawalRepository) Create(ctx context.Context, withdrawal *model.SellerWithdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *sellerWithdrawalRepository) GetByID(ctx context.Context, id int64) (*model.SellerWithdrawal, error) {
	var withdrawal model.SellerWithdrawal
	err := r.db.WithContext(ctx).First(&withdrawal, id).Error
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *sellerWithdrawalRepository) GetByPublicID(ctx context.Context, publicID string) (*model.SellerWithdrawal, error) {
	var withdrawal model.SellerWithdrawal
	err := r.db.WithContext(ctx).Where("seller_withdrawal_id = ?", publicID).First(&withdrawal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *sellerWithdrawalRepository) List(ctx context.Context, filter WithdrawalFilter) ([]model.SellerWithdrawal, int64, error) {
	var rows []model.SellerWithdrawal
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SellerWithdrawal{})

	if filter.SellerID > 0 {
		db = db.Where("seller_id = ?", filter.SellerID)
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

func (r *sellerWithdrawalRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SellerWithdrawal{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
