package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== SellerService 卖家服务 ====================

// SellerService 卖家服务
type SellerService struct {
	sellerRepo  repository.SellerRepository
	userRepo    repository.UserRepository
	activitySvc *ActivityLogService
}

// NewSellerService 创建卖家服务
func NewSellerService(
	sellerRepo repository.SellerRepository,
	userRepo repository.UserRepository,
	activitySvc *ActivityLogService,
) *SellerService {
	return &SellerService{
		sellerRepo:  sellerRepo,
		userRepo:    userRepo,
		activitySvc: activitySvc,
	}
}

// CreateSeller 卖家入驻
// 手机号全局唯一，一个用户只能入驻一次
func (s *SellerService) CreateSeller(ctx context.Context, userID int64, req *dto.CreateSellerRequest) (*model.Seller, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	if existing, err := s.sellerRepo.GetByUserID(ctx, userID); err == nil && existing != nil {
		return nil, ErrSellerExists
	}

	dup, err := s.sellerRepo.GetByContactNumber(ctx, req.ContactNumber)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, ErrContactNumberTaken
	}

	seller := &model.Seller{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		IsActive:      model.Active,
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "卖家入驻",
		fmt.Sprintf("用户 %d 入驻为卖家 (ID: %d)", userID, seller.ID))
	return seller, nil
}

// applySellerPatch 把补丁应用到卖家资料，nil 字段跳过
func applySellerPatch(seller *model.Seller, req *dto.UpdateSellerRequest) {
	if req.FirstName != nil {
		seller.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		seller.LastName = *req.LastName
	}
	if req.ContactNumber != nil {
		seller.ContactNumber = *req.ContactNumber
	}
}

// UpdateSeller 更新卖家资料
func (s *SellerService) UpdateSeller(ctx context.Context, sellerID int64, req *dto.UpdateSellerRequest) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, ErrSellerNotFound
	}

	if req.ContactNumber != nil && *req.ContactNumber != seller.ContactNumber {
		dup, err := s.sellerRepo.GetByContactNumber(ctx, *req.ContactNumber)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrContactNumberTaken
		}
	}

	applySellerPatch(seller, req)
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "更新卖家资料", fmt.Sprintf("卖家 %d 资料已更新", sellerID))
	return seller, nil
}

// GetSeller 查询卖家
func (s *SellerService) GetSeller(ctx context.Context, sellerID int64) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

// GetSellerByUser 按用户查询卖家身份
func (s *SellerService) GetSellerByUser(ctx context.Context, userID int64) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

// ==================== 错误定义 ====================

var (
	ErrSellerNotFound     = errors.New("卖家不存在")
	ErrSellerExists       = errors.New("该用户已入驻为卖家")
	ErrContactNumberTaken = errors.New("手机号已被占用")
)
