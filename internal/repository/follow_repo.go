package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== FollowRepository 关注仓库 ====================

// FollowRepository 关注仓库接口
type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	GetByShopAndCustomer(ctx context.Context, shopID, customerID int64) (*model.Follow, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Follow, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository 创建关注仓库
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// GetByShopAndCustomer 查关注关系（含已停用的行），不存在时返回 nil
func (r *followRepository) GetByShopAndCustomer(ctx context.Context, shopID, customerID int64) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND customer_id = ?", shopID, customerID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_active = ?", customerID, model.Active).
		Order("id DESC").
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("shop_id = ? AND is_active = ?", shopID, model.Active).
		Count(&count).Error
	return count, err
}

func (r *followRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("id = ?", id).
		Updates(fields).Error
}
