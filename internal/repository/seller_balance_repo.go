package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 过滤条件 ====================

// BalanceFilter 余额流水过滤条件
type BalanceFilter struct {
	SellerID   int64
	ShopID     int64
	OrderRefID int64
	Status     string
	Page       int
	PageSize   int
}

// ==================== SellerBalanceRepository 余额仓库 ====================

// SellerBalanceRepository 卖家余额仓库接口
type SellerBalanceRepository interface {
	Create(ctx context.Context, balance *model.SellerBalance) error
	CreateBatch(ctx context.Context, balances []model.SellerBalance) error
	GetByID(ctx context.Context, id int64) (*model.SellerBalance, error)
	List(ctx context.Context, filter BalanceFilter) ([]model.SellerBalance, int64, error)

	// UpdateStatusFrom 带前置状态条件的状态更新，返回受影响行数
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error)

	// ClaimCompleted 一条 UPDATE 原子认领该卖家全部已完成流水：
	// completed → pending_withdrawal，并打上提现单编号。
	// 两个并发提现请求不可能认领到同一行（行级写锁互斥）
	ClaimCompleted(ctx context.Context, sellerID int64, withdrawalID string) (int64, error)

	// ListByWithdrawalID 查某次提现扫入的流水
	ListByWithdrawalID(ctx context.Context, withdrawalID string) ([]model.SellerBalance, error)

	// SumByWithdrawalID 某次提现扫入流水的总金额
	SumByWithdrawalID(ctx context.Context, withdrawalID string) (int64, error)

	// MarkProcessedByWithdrawalID 提现打款后，批量落终态
	MarkProcessedByWithdrawalID(ctx context.Context, withdrawalID string) (int64, error)

	// ListPendingByOrder 查订单下仍处于 pending 的流水，供结算任务使用
	ListPendingByOrder(ctx context.Context, orderRefID int64) ([]model.SellerBalance, error)
}

type sellerBalanceRepository struct {
	db *gorm.DB
}

// NewSellerBalanceRepository 创建余额仓库
func NewSellerBalanceRepository(db *gorm.DB) SellerBalanceRepository {
	return &sellerBalanceRepository{db: db}
}

func (r *sellerBalanceRepository) Create(ctx context.Context, balance *model.SellerBalance) error {
	return r.db.WithContext(ctx).Create(balance).Error
}

func (r *sellerBalanceRepository) CreateBatch(ctx context.Context, balances []model.SellerBalance) error {
	if len(balances) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&balances).Error
}

func (r *sellerBalanceRepository) GetByID(ctx context.Context, id int64) (*model.SellerBalance, error) {
	var balance model.SellerBalance
	err := r.db.WithContext(ctx).First(&balance, id).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *sellerBalanceRepository) List(ctx context.Context, filter BalanceFilter) ([]model.SellerBalance, int64, error) {
	var rows []model.SellerBalance
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SellerBalance{})

	if filter.SellerID > 0 {
		db = db.Where("seller_id = ?", filter.SellerID)
	}
	if filter.ShopID > 0 {
		db = db.Where("shop_id = ?", filter.ShopID)
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

func (r *sellerBalanceRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SellerBalance{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *sellerBalanceRepository) ClaimCompleted(ctx context.Context, sellerID int64, withdrawalID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SellerBalance{}).
		Where("seller_id = ? AND status = ?", sellerID, model.BalanceStatusCompleted).
		Updates(map[string]interface{}{
			"status":        model.BalanceStatusPendingWithdrawal,
			"withdrawal_id": withdrawalID,
		})
	return res.RowsAffected, res.Error
}

func (r *sellerBalanceRepository) ListByWithdrawalID(ctx context.Context, withdrawalID string) ([]model.SellerBalance, error) {
	var rows []model.SellerBalance
	err := r.db.WithContext(ctx).
		Where("withdrawal_id = ?", withdrawalID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *sellerBalanceRepository) SumByWithdrawalID(ctx context.Context, withdrawalID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.SellerBalance{}).
		Where("withdrawal_id = ?", withdrawalID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *sellerBalanceRepository) MarkProcessedByWithdrawalID(ctx context.Context, withdrawalID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SellerBalance{}).
		Where("withdrawal_id = ? AND status = ?", withdrawalID, model.BalanceStatusPendingWithdrawal).
		Update("status", model.BalanceStatusProcessedWithdrawal)
	return res.RowsAffected, res.Error
}

func (r *sellerBalanceRepository) ListPendingByOrder(ctx context.Context, orderRefID int64) ([]model.SellerBalance, error) {
	var rows []model.SellerBalance
	err := r.db.WithContext(ctx).
		Where("order_ref_id = ? AND status = ?", orderRefID, model.BalanceStatusPending).
		Find(&rows).Error
	return rows, err
}
