package service

import (
	"context"

	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== NotificationService 通知服务 ====================

// NotificationService 站内通知服务
// 通知是业务操作的副作用，写入失败只记日志，不阻断主流程
type NotificationService struct {
	notificationRepo       repository.NotificationRepository
	sellerNotificationRepo repository.SellerNotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	sellerNotificationRepo repository.SellerNotificationRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo:       notificationRepo,
		sellerNotificationRepo: sellerNotificationRepo,
	}
}

// NotifyCustomer 给买家发站内通知
func (s *NotificationService) NotifyCustomer(ctx context.Context, shopID, customerID int64, title, description string) {
	notification := &model.Notification{
		PublicID:    utils.GeneratePublicID(),
		ShopID:      shopID,
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		IsActive:    model.Active,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		zap.L().Warn("买家通知写入失败",
			zap.Int64("customer_id", customerID),
			zap.String("title", title),
			zap.Error(err))
	}
}

// NotifySeller 给卖家发站内通知
func (s *NotificationService) NotifySeller(ctx context.Context, sellerID int64, title, description string) {
	notification := &model.SellerNotification{
		PublicID:    utils.GeneratePublicID(),
		SellerID:    sellerID,
		Title:       title,
		Description: description,
		IsActive:    model.Active,
	}
	if err := s.sellerNotificationRepo.Create(ctx, notification); err != nil {
		zap.L().Warn("卖家通知写入失败",
			zap.Int64("seller_id", sellerID),
			zap.String("title", title),
			zap.Error(err))
	}
}

// ListCustomerNotifications 买家通知列表
func (s *NotificationService) ListCustomerNotifications(ctx context.Context, customerID int64, page, pageSize int) ([]model.Notification, int64, error) {
	return s.notificationRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

// ListSellerNotifications 卖家通知列表
func (s *NotificationService) ListSellerNotifications(ctx context.Context, sellerID int64, page, pageSize int) ([]model.SellerNotification, int64, error) {
	return s.sellerNotificationRepo.ListBySeller(ctx, sellerID, page, pageSize)
}

// DismissCustomerNotification 买家撤下通知
func (s *NotificationService) DismissCustomerNotification(ctx context.Context, id int64) error {
	return s.notificationRepo.UpdateFields(ctx, id, map[string]interface{}{
		"is_active": model.NotActive,
	})
}

// DismissSellerNotification 卖家撤下通知
func (s *NotificationService) DismissSellerNotification(ctx context.Context, id int64) error {
	return s.sellerNotificationRepo.UpdateFields(ctx, id, map[string]interface{}{
		"is_active": model.NotActive,
	})
}
