package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== ShopService 店铺服务 ====================

// ShopService 店铺服务
type ShopService struct {
	uow         *repository.AccountUnitOfWork
	shopRepo    repository.ShopRepository
	sellerRepo  repository.SellerRepository
	followRepo  repository.FollowRepository
	activitySvc *ActivityLogService
}

// NewShopService 创建店铺服务
func NewShopService(
	uow *repository.AccountUnitOfWork,
	shopRepo repository.ShopRepository,
	sellerRepo repository.SellerRepository,
	followRepo repository.FollowRepository,
	activitySvc *ActivityLogService,
) *ShopService {
	return &ShopService{
		uow:         uow,
		shopRepo:    shopRepo,
		sellerRepo:  sellerRepo,
		followRepo:  followRepo,
		activitySvc: activitySvc,
	}
}

// ==================== 创建/启用 ====================

// CreateShop 新建店铺
// 同一卖家同时最多一家启用中的店铺：检查和落库在同一事务内，
// 数据库部分唯一索引兜底并发竞争
func (s *ShopService) CreateShop(ctx context.Context, sellerID int64, req *dto.CreateShopRequest) (*model.Shop, error) {
	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return nil, ErrSellerNotFound
	}

	shop := &model.Shop{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    model.Active,
	}

	err := s.uow.Transaction(ctx, func(uow *repository.AccountUnitOfWork) error {
		active, err := uow.Shops.FindActiveBySeller(ctx, sellerID)
		if err != nil {
			return err
		}
		if active != nil && !canActivate(active.ID, 0) {
			return ErrActiveShopExists
		}
		return uow.Shops.Create(ctx, shop)
	})
	if err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "创建店铺",
		fmt.Sprintf("卖家 %d 创建店铺 %q (ID: %d)", sellerID, shop.Name, shop.ID))
	return shop, nil
}

// ActivateShop 启用店铺
// 重复启用同一家店铺放行；卖家已有另一家启用中的店铺时拒绝
func (s *ShopService) ActivateShop(ctx context.Context, sellerID, shopID int64) error {
	err := s.uow.Transaction(ctx, func(uow *repository.AccountUnitOfWork) error {
		shop, err := uow.Shops.GetByID(ctx, shopID)
		if err != nil {
			return ErrShopNotFound
		}
		if shop.SellerID != sellerID {
			return ErrShopNotFound
		}

		active, err := uow.Shops.FindActiveBySeller(ctx, sellerID)
		if err != nil {
			return err
		}
		activeID := int64(0)
		if active != nil {
			activeID = active.ID
		}
		if !canActivate(activeID, shopID) {
			return ErrActiveShopExists
		}

		return uow.Shops.UpdateFields(ctx, shopID, map[string]interface{}{
			"is_active": model.Active,
		})
	})
	if err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "启用店铺", fmt.Sprintf("店铺 %d 已启用", shopID))
	return nil
}

// DeactivateShop 停用店铺（软删除开关，与订单状态无关）
func (s *ShopService) DeactivateShop(ctx context.Context, sellerID, shopID int64) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil || shop.SellerID != sellerID {
		return ErrShopNotFound
	}

	if err := s.shopRepo.UpdateFields(ctx, shopID, map[string]interface{}{
		"is_active": model.NotActive,
	}); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "停用店铺", fmt.Sprintf("店铺 %d 已停用", shopID))
	return nil
}

// ==================== 更新/查询 ====================

// applyShopPatch 把补丁应用到店铺，nil 字段跳过
// 纯函数，便于单测
func applyShopPatch(shop *model.Shop, req *dto.UpdateShopRequest) {
	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Description != nil {
		shop.Description = *req.Description
	}
}

// UpdateShop 更新店铺资料
func (s *ShopService) UpdateShop(ctx context.Context, sellerID, shopID int64, req *dto.UpdateShopRequest) (*model.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil || shop.SellerID != sellerID {
		return nil, ErrShopNotFound
	}

	applyShopPatch(shop, req)
	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "更新店铺", fmt.Sprintf("店铺 %d 资料已更新", shopID))
	return shop, nil
}

// GetShop 查店铺
func (s *ShopService) GetShop(ctx context.Context, shopID int64) (*model.Shop, int64, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, 0, ErrShopNotFound
	}
	followers, _ := s.followRepo.CountByShop(ctx, shopID)
	return shop, followers, nil
}

// ListShops 店铺列表
func (s *ShopService) ListShops(ctx context.Context, filter repository.ShopFilter) ([]model.Shop, int64, error) {
	return s.shopRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrShopNotFound     = errors.New("店铺不存在")
	ErrActiveShopExists = errors.New("该卖家已有启用中的店铺")
)
