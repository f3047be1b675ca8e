package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== SellerRepository 卖家仓库 ====================

// SellerRepository 卖家仓库接口
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	GetByID(ctx context.Context, id int64) (*model.Seller, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Seller, error)
	GetByContactNumber(ctx context.Context, contactNumber string) (*model.Seller, error)
	Update(ctx context.Context, seller *model.Seller) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建卖家仓库
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).First(&seller, id).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// GetByContactNumber 按手机号查找，不存在时返回 nil
func (r *sellerRepository) GetByContactNumber(ctx context.Context, contactNumber string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).Where("contact_number = ?", contactNumber).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) Update(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Seller{}).
		Where("id = ?", id).
		Updates(fields).Error
}
