package service

import (
	"context"
	"fmt"

	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== FollowService 关注服务 ====================

// FollowService 店铺关注服务
type FollowService struct {
	followRepo  repository.FollowRepository
	shopRepo    repository.ShopRepository
	activitySvc *ActivityLogService
}

// NewFollowService 创建关注服务
func NewFollowService(
	followRepo repository.FollowRepository,
	shopRepo repository.ShopRepository,
	activitySvc *ActivityLogService,
) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		shopRepo:    shopRepo,
		activitySvc: activitySvc,
	}
}

// FollowShop 关注店铺
// 重复关注时复用已有记录（重新激活），唯一索引兜底并发重复写入
func (s *FollowService) FollowShop(ctx context.Context, customerID, shopID int64) error {
	if _, err := s.shopRepo.GetByID(ctx, shopID); err != nil {
		return ErrShopNotFound
	}

	existing, err := s.followRepo.GetByShopAndCustomer(ctx, shopID, customerID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.IsActive == model.Active {
			return nil
		}
		return s.followRepo.UpdateFields(ctx, existing.ID, map[string]interface{}{
			"is_active": model.Active,
		})
	}

	follow := &model.Follow{
		PublicID:   utils.GeneratePublicID(),
		ShopID:     shopID,
		CustomerID: customerID,
		IsActive:   model.Active,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "关注店铺",
		fmt.Sprintf("买家 %d 关注店铺 %d", customerID, shopID))
	return nil
}

// UnfollowShop 取消关注
func (s *FollowService) UnfollowShop(ctx context.Context, customerID, shopID int64) error {
	existing, err := s.followRepo.GetByShopAndCustomer(ctx, shopID, customerID)
	if err != nil {
		return err
	}
	if existing == nil || existing.IsActive != model.Active {
		return nil
	}
	return s.followRepo.UpdateFields(ctx, existing.ID, map[string]interface{}{
		"is_active": model.NotActive,
	})
}

// ListFollowedShops 买家关注列表
func (s *FollowService) ListFollowedShops(ctx context.Context, customerID int64) ([]model.Follow, error) {
	return s.followRepo.ListByCustomer(ctx, customerID)
}

// CountFollowers 店铺粉丝数
func (s *FollowService) CountFollowers(ctx context.Context, shopID int64) (int64, error) {
	return s.followRepo.CountByShop(ctx, shopID)
}
