package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== ReturnRefundService 退换/退款服务 ====================

// ReturnRefundService 退换/退款服务
type ReturnRefundService struct {
	returnRefundRepo repository.ReturnRefundRepository
	orderRepo        repository.OrderRepository
	balanceRepo      repository.SellerBalanceRepository
	shopRepo         repository.ShopRepository
	notificationSvc  *NotificationService
	activitySvc      *ActivityLogService
}

// NewReturnRefundService 创建退换/退款服务
func NewReturnRefundService(
	returnRefundRepo repository.ReturnRefundRepository,
	orderRepo repository.OrderRepository,
	balanceRepo repository.SellerBalanceRepository,
	shopRepo repository.ShopRepository,
	notificationSvc *NotificationService,
	activitySvc *ActivityLogService,
) *ReturnRefundService {
	return &ReturnRefundService{
		returnRefundRepo: returnRefundRepo,
		orderRepo:        orderRepo,
		balanceRepo:      balanceRepo,
		shopRepo:         shopRepo,
		notificationSvc:  notificationSvc,
		activitySvc:      activitySvc,
	}
}

// ==================== 申请 ====================

// RequestReturnRefund 买家发起退换/退款申请
// 商品必须存在于下单快照中，快照之外的商品一律按不存在处理；
// 申请携带的是快照行项目的副本，不回查商品表
func (s *ReturnRefundService) RequestReturnRefund(ctx context.Context, customerID int64, req *dto.CreateReturnRefundRequest) (*model.ReturnRefund, error) {
	order, err := s.orderRepo.GetByPublicID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}

	line, ok := order.FindLine(req.ProductID)
	if !ok {
		return nil, ErrProductNotInOrder
	}

	snapshot, err := json.Marshal(line)
	if err != nil {
		return nil, err
	}

	rr := &model.ReturnRefund{
		PublicID:      utils.GeneratePublicID(),
		OrderRefID:    order.ID,
		CustomerID:    customerID,
		Product:       datatypes.JSON(snapshot),
		Reason:        req.Reason,
		EvidenceImage: req.EvidenceImage,
		Status:        model.ReturnRefundStatusPending,
		IsActive:      model.Active,
	}
	if err := s.returnRefundRepo.Create(ctx, rr); err != nil {
		return nil, err
	}

	if shop, err := s.shopRepo.GetByID(ctx, order.ShopID); err == nil {
		s.notificationSvc.NotifySeller(ctx, shop.SellerID, "退换/退款申请",
			fmt.Sprintf("订单 %s 的商品 %s 收到退换/退款申请 %s", order.PublicID, line.Name, rr.PublicID))
	}
	s.activitySvc.Record(ctx, "发起退换/退款",
		fmt.Sprintf("买家 %d 对订单 %s 商品 %d 发起申请 %s", customerID, order.PublicID, req.ProductID, rr.PublicID))

	return rr, nil
}

// ==================== 裁决 ====================

// Adjudicate 卖家裁决退换/退款申请
// pending → accepted | rejected，终态不可再改；
// 带前置状态条件更新，0 行受影响说明已被裁决过，按冲突处理。
// 同意时把该行项目对应的 pending 余额流水置为 cancelled
func (s *ReturnRefundService) Adjudicate(ctx context.Context, publicID, decision string) (*model.ReturnRefund, error) {
	if !model.ValidReturnRefundDecision(decision) {
		return nil, ErrInvalidDecision
	}

	rr, err := s.returnRefundRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, ErrReturnRefundNotFound
	}

	affected, err := s.returnRefundRepo.UpdateStatusFrom(ctx, rr.ID, model.ReturnRefundStatusPending, decision)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrReturnRefundFinalized
	}
	rr.Status = decision

	// 同意退款时撤销对应行项目的待结算余额
	if decision == model.ReturnRefundStatusAccepted {
		if line, err := rr.ProductLine(); err == nil {
			s.cancelLineBalance(ctx, rr.OrderRefID, line.ProductID)
		}
	}

	s.notificationSvc.NotifyCustomer(ctx, 0, rr.CustomerID, "退换/退款结果",
		fmt.Sprintf("申请 %s 已被%s", rr.PublicID, decisionLabel(decision)))
	s.activitySvc.Record(ctx, "裁决退换/退款",
		fmt.Sprintf("申请 %s 裁决为 %s", rr.PublicID, decision))

	return rr, nil
}

// cancelLineBalance 把订单中某商品的 pending 余额流水置为 cancelled
func (s *ReturnRefundService) cancelLineBalance(ctx context.Context, orderRefID, productID int64) {
	rows, err := s.balanceRepo.ListPendingByOrder(ctx, orderRefID)
	if err != nil {
		return
	}
	for i := range rows {
		if rows[i].ProductID == productID {
			_, _ = s.balanceRepo.UpdateStatusFrom(ctx, rows[i].ID,
				model.BalanceStatusPending, model.BalanceStatusCancelled)
		}
	}
}

func decisionLabel(decision string) string {
	if decision == model.ReturnRefundStatusAccepted {
		return "同意"
	}
	return "驳回"
}

// ==================== 查询 ====================

// GetReturnRefund 按对外编号查询申请
func (s *ReturnRefundService) GetReturnRefund(ctx context.Context, publicID string) (*model.ReturnRefund, error) {
	rr, err := s.returnRefundRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, ErrReturnRefundNotFound
	}
	return rr, nil
}

// ListByCustomer 买家申请列表
func (s *ReturnRefundService) ListByCustomer(ctx context.Context, customerID int64, req *dto.ListReturnRefundsRequest) ([]model.ReturnRefund, int64, error) {
	return s.returnRefundRepo.List(ctx, repository.ReturnRefundFilter{
		CustomerID: customerID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
}

// ==================== 错误定义 ====================

var (
	ErrReturnRefundNotFound  = errors.New("退换/退款申请不存在")
	ErrReturnRefundFinalized = errors.New("退换/退款申请已裁决")
	ErrProductNotInOrder     = errors.New("商品不在该订单快照中")
	ErrInvalidDecision       = errors.New("非法的裁决值")
)
