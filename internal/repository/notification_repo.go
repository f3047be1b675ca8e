package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/model"
)

// ==================== NotificationRepository 买家通知仓库 ====================

// NotificationRepository 买家通知仓库接口
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByCustomer(ctx context.Context, customerID int64, page, pageSize int) ([]model.Notification, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建买家通知仓库
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByCustomer(ctx context.Context, customerID int64, page, pageSize int) ([]model.Notification, int64, error) {
	var rows []model.Notification
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("customer_id = ? AND is_active = ?", customerID, model.Active)

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

func (r *notificationRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// ==================== SellerNotificationRepository 卖家通知仓库 ====================

// SellerNotificationRepository 卖家通知仓库接口
type SellerNotificationRepository interface {
	Create(ctx context.Context, notification *model.SellerNotification) error
	ListBySeller(ctx context.Context, sellerID int64, page, pageSize int) ([]model.SellerNotification, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

type sellerNotificationRepository struct {
	db *gorm.DB
}

// NewSellerNotificationRepository 创建卖家通知仓库
func NewSellerNotificationRepository(db *gorm.DB) SellerNotificationRepository {
	return &sellerNotificationRepository{db: db}
}

func (r *sellerNotificationRepository) Create(ctx context.Context, notification *model.SellerNotification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *sellerNotificationRepository) ListBySeller(ctx context.Context, sellerID int64, page, pageSize int) ([]model.SellerNotification, int64, error) {
	var rows []model.SellerNotification
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SellerNotification{}).
		Where("seller_id = ? AND is_active = ?", sellerID, model.Active)

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

func (r *sellerNotificationRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.SellerNotification{}).
		Where("id = ?", id).
		Updates(fields).Error
}
