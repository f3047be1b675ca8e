package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== BankAccountRepository 收款账户仓库 ====================

// BankAccountRepository 收款账户仓库接口
type BankAccountRepository interface {
	Create(ctx context.Context, account *model.BankAccount) error
	GetByID(ctx context.Context, id int64) (*model.BankAccount, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]model.BankAccount, error)
	Update(ctx context.Context, account *model.BankAccount) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error

	// FindActiveBySeller 查该卖家当前启用中的收款账户，没有时返回 nil
	FindActiveBySeller(ctx context.Context, sellerID int64) (*model.BankAccount, error)
}

type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository 创建收款账户仓库
func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (r *bankAccountRepository) Create(ctx context.Context, account *model.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *bankAccountRepository) GetByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	var account model.BankAccount
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *bankAccountRepository) ListBySeller(ctx context.Context, sellerID int64) ([]model.BankAccount, error) {
	var accounts []model.BankAccount
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *bankAccountRepository) Update(ctx context.Context, account *model.BankAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *bankAccountRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *bankAccountRepository) FindActiveBySeller(ctx context.Context, sellerID int64) (*model.BankAccount, error) {
	var account model.BankAccount
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND is_active = ?", sellerID, model.Active).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
