package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== BalanceService 余额/提现服务 ====================

// BalanceService 卖家余额与提现服务
type BalanceService struct {
	uow             *repository.LedgerUnitOfWork
	balanceRepo     repository.SellerBalanceRepository
	withdrawalRepo  repository.SellerWithdrawalRepository
	sellerRepo      repository.SellerRepository
	notificationSvc *NotificationService
	activitySvc     *ActivityLogService
}

// NewBalanceService 创建余额服务
func NewBalanceService(
	uow *repository.LedgerUnitOfWork,
	balanceRepo repository.SellerBalanceRepository,
	withdrawalRepo repository.SellerWithdrawalRepository,
	sellerRepo repository.SellerRepository,
	notificationSvc *NotificationService,
	activitySvc *ActivityLogService,
) *BalanceService {
	return &BalanceService{
		uow:             uow,
		balanceRepo:     balanceRepo,
		withdrawalRepo:  withdrawalRepo,
		sellerRepo:      sellerRepo,
		notificationSvc: notificationSvc,
		activitySvc:     activitySvc,
	}
}

// ==================== 结算 ====================

// SettleBalance 结算单条余额流水
// pending → completed（正常履约）或 pending → cancelled（取消/退货）。
// 带前置状态条件更新，0 行受影响按冲突处理
func (s *BalanceService) SettleBalance(ctx context.Context, balanceID int64, status string) (*model.SellerBalance, error) {
	balance, err := s.balanceRepo.GetByID(ctx, balanceID)
	if err != nil {
		return nil, ErrBalanceNotFound
	}

	if !model.CanTransitionBalance(balance.Status, status) {
		return nil, ErrIllegalBalanceTransition
	}

	affected, err := s.balanceRepo.UpdateStatusFrom(ctx, balance.ID, balance.Status, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalBalanceTransition
	}
	balance.Status = status

	s.activitySvc.Record(ctx, "余额结算",
		fmt.Sprintf("余额流水 %s 结算为 %s", balance.PublicID, status))
	return balance, nil
}

// ==================== 提现 ====================

// RequestWithdrawal 卖家提现申请
// 同一事务内：一条 UPDATE 原子认领该卖家全部 completed 流水
// （completed → pending_withdrawal，并打上提现单编号），
// 再按扫入流水求和生成提现单。金额从不信任客户端：
// reqAmount 只用于一致性校验，提现单金额一律以扫入总额为准。
// 并发的两次申请不可能扫到同一行，后到者扫入 0 行，按冲突处理
func (s *BalanceService) RequestWithdrawal(ctx context.Context, sellerID int64, reqAmount *int64) (*model.SellerWithdrawal, int64, error) {
	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return nil, 0, ErrSellerNotFound
	}

	publicID := utils.GeneratePublicID()
	var withdrawal *model.SellerWithdrawal
	var sweptCount int64

	err := s.uow.Transaction(ctx, func(uow *repository.LedgerUnitOfWork) error {
		claimed, err := uow.Balances.ClaimCompleted(ctx, sellerID, publicID)
		if err != nil {
			return err
		}
		if claimed == 0 {
			return ErrNoWithdrawableBalance
		}
		sweptCount = claimed

		amount, err := uow.Balances.SumByWithdrawalID(ctx, publicID)
		if err != nil {
			return err
		}
		if reqAmount != nil && *reqAmount != amount {
			return ErrWithdrawalAmountMismatch
		}

		rows, err := uow.Balances.ListByWithdrawalID(ctx, publicID)
		if err != nil {
			return err
		}
		shopID := int64(0)
		if len(rows) > 0 {
			shopID = rows[0].ShopID
		}

		withdrawal = &model.SellerWithdrawal{
			PublicID: publicID,
			SellerID: sellerID,
			ShopID:   shopID,
			Amount:   amount,
			Status:   model.WithdrawalStatusPending,
			IsActive: model.Active,
		}
		return uow.Withdrawals.Create(ctx, withdrawal)
	})
	if err != nil {
		return nil, 0, err
	}

	s.notificationSvc.NotifySeller(ctx, sellerID, "提现申请已受理",
		fmt.Sprintf("提现单 %s 已创建，金额 %d，共扫入 %d 笔流水", publicID, withdrawal.Amount, sweptCount))
	s.activitySvc.Record(ctx, "提现申请",
		fmt.Sprintf("卖家 %d 发起提现 %s，金额 %d", sellerID, publicID, withdrawal.Amount))

	return withdrawal, sweptCount, nil
}

// ProcessWithdrawal 提现打款
// pending_withdrawal → processed_withdrawal（终态），
// 提现单与其扫入的全部流水在同一事务内落终态
func (s *BalanceService) ProcessWithdrawal(ctx context.Context, publicID string) (*model.SellerWithdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if !model.CanProcessWithdrawal(withdrawal.Status) {
		return nil, ErrWithdrawalFinalized
	}

	err = s.uow.Transaction(ctx, func(uow *repository.LedgerUnitOfWork) error {
		affected, err := uow.Withdrawals.UpdateStatusFrom(ctx, withdrawal.ID,
			model.WithdrawalStatusPending, model.WithdrawalStatusProcessed)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrWithdrawalFinalized
		}
		_, err = uow.Balances.MarkProcessedByWithdrawalID(ctx, publicID)
		return err
	})
	if err != nil {
		return nil, err
	}
	withdrawal.Status = model.WithdrawalStatusProcessed

	s.notificationSvc.NotifySeller(ctx, withdrawal.SellerID, "提现已打款",
		fmt.Sprintf("提现单 %s 已打款，金额 %d", publicID, withdrawal.Amount))
	s.activitySvc.Record(ctx, "提现打款",
		fmt.Sprintf("提现单 %s 已打款", publicID))

	return withdrawal, nil
}

// ==================== 查询 ====================

// ListBalances 卖家余额流水列表
func (s *BalanceService) ListBalances(ctx context.Context, sellerID int64, status string, page, pageSize int) ([]model.SellerBalance, int64, error) {
	return s.balanceRepo.List(ctx, repository.BalanceFilter{
		SellerID: sellerID,
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
}

// ListWithdrawals 卖家提现单列表
func (s *BalanceService) ListWithdrawals(ctx context.Context, sellerID int64, page, pageSize int) ([]model.SellerWithdrawal, int64, error) {
	return s.withdrawalRepo.List(ctx, repository.WithdrawalFilter{
		SellerID: sellerID,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetWithdrawal 按对外编号查询提现单
func (s *BalanceService) GetWithdrawal(ctx context.Context, publicID string) (*model.SellerWithdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	return withdrawal, nil
}

// ==================== 错误定义 ====================

var (
	ErrBalanceNotFound          = errors.New("余额流水不存在")
	ErrIllegalBalanceTransition = errors.New("余额状态不允许该流转")
	ErrNoWithdrawableBalance    = errors.New("没有可提现的余额")
	ErrWithdrawalAmountMismatch = errors.New("提现金额与可提现总额不一致")
	ErrWithdrawalNotFound       = errors.New("提现单不存在")
	ErrWithdrawalFinalized      = errors.New("提现单已打款")
)
