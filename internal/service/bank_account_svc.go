package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== BankAccountService 收款账户服务 ====================

// BankAccountService 收款账户服务
type BankAccountService struct {
	uow         *repository.AccountUnitOfWork
	accountRepo repository.BankAccountRepository
	sellerRepo  repository.SellerRepository
	activitySvc *ActivityLogService
}

// NewBankAccountService 创建收款账户服务
func NewBankAccountService(
	uow *repository.AccountUnitOfWork,
	accountRepo repository.BankAccountRepository,
	sellerRepo repository.SellerRepository,
	activitySvc *ActivityLogService,
) *BankAccountService {
	return &BankAccountService{
		uow:         uow,
		accountRepo: accountRepo,
		sellerRepo:  sellerRepo,
		activitySvc: activitySvc,
	}
}

// ==================== 创建/启用 ====================

// CreateBankAccount 新增收款账户
// 同一卖家同时最多一个启用中的收款账户
func (s *BankAccountService) CreateBankAccount(ctx context.Context, sellerID int64, req *dto.CreateBankAccountRequest) (*model.BankAccount, error) {
	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return nil, ErrSellerNotFound
	}
	if !model.ValidBankProvider(model.BankProvider(req.Name)) {
		return nil, ErrInvalidBankProvider
	}

	account := &model.BankAccount{
		SellerID:      sellerID,
		Name:          model.BankProvider(req.Name),
		ContactNumber: req.ContactNumber,
		IsActive:      model.Active,
	}

	err := s.uow.Transaction(ctx, func(uow *repository.AccountUnitOfWork) error {
		active, err := uow.BankAccounts.FindActiveBySeller(ctx, sellerID)
		if err != nil {
			return err
		}
		if active != nil && !canActivate(active.ID, 0) {
			return ErrActiveBankAccountExists
		}
		return uow.BankAccounts.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "新增收款账户",
		fmt.Sprintf("卖家 %d 新增 %s 收款账户 (ID: %d)", sellerID, account.Name, account.ID))
	return account, nil
}

// ActivateBankAccount 启用收款账户
// 启用 A 前须先停用 B；重复启用同一账户放行
func (s *BankAccountService) ActivateBankAccount(ctx context.Context, sellerID, accountID int64) error {
	err := s.uow.Transaction(ctx, func(uow *repository.AccountUnitOfWork) error {
		account, err := uow.BankAccounts.GetByID(ctx, accountID)
		if err != nil || account.SellerID != sellerID {
			return ErrBankAccountNotFound
		}

		active, err := uow.BankAccounts.FindActiveBySeller(ctx, sellerID)
		if err != nil {
			return err
		}
		activeID := int64(0)
		if active != nil {
			activeID = active.ID
		}
		if !canActivate(activeID, accountID) {
			return ErrActiveBankAccountExists
		}

		return uow.BankAccounts.UpdateFields(ctx, accountID, map[string]interface{}{
			"is_active": model.Active,
		})
	})
	if err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "启用收款账户", fmt.Sprintf("收款账户 %d 已启用", accountID))
	return nil
}

// DeactivateBankAccount 停用收款账户
func (s *BankAccountService) DeactivateBankAccount(ctx context.Context, sellerID, accountID int64) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil || account.SellerID != sellerID {
		return ErrBankAccountNotFound
	}

	if err := s.accountRepo.UpdateFields(ctx, accountID, map[string]interface{}{
		"is_active": model.NotActive,
	}); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, "停用收款账户", fmt.Sprintf("收款账户 %d 已停用", accountID))
	return nil
}

// ==================== 更新/查询 ====================

// applyBankAccountPatch 把补丁应用到收款账户，nil 字段跳过
func applyBankAccountPatch(account *model.BankAccount, req *dto.UpdateBankAccountRequest) error {
	if req.Name != nil {
		provider := model.BankProvider(*req.Name)
		if !model.ValidBankProvider(provider) {
			return ErrInvalidBankProvider
		}
		account.Name = provider
	}
	if req.ContactNumber != nil {
		account.ContactNumber = *req.ContactNumber
	}
	return nil
}

// UpdateBankAccount 更新收款账户
func (s *BankAccountService) UpdateBankAccount(ctx context.Context, sellerID, accountID int64, req *dto.UpdateBankAccountRequest) (*model.BankAccount, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil || account.SellerID != sellerID {
		return nil, ErrBankAccountNotFound
	}

	if err := applyBankAccountPatch(account, req); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, "更新收款账户", fmt.Sprintf("收款账户 %d 已更新", accountID))
	return account, nil
}

// ListBankAccounts 卖家收款账户列表
func (s *BankAccountService) ListBankAccounts(ctx context.Context, sellerID int64) ([]model.BankAccount, error) {
	return s.accountRepo.ListBySeller(ctx, sellerID)
}

// ==================== 错误定义 ====================

var (
	ErrBankAccountNotFound     = errors.New("收款账户不存在")
	ErrActiveBankAccountExists = errors.New("该卖家已有启用中的收款账户")
	ErrInvalidBankProvider     = errors.New("不支持的收款渠道")
)
