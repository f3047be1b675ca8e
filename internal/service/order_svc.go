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

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	orderUow        *repository.OrderUnitOfWork
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	shopRepo        repository.ShopRepository
	balanceRepo     repository.SellerBalanceRepository
	userRepo        repository.UserRepository
	notificationSvc *NotificationService
	activitySvc     *ActivityLogService
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderUow *repository.OrderUnitOfWork,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	balanceRepo repository.SellerBalanceRepository,
	userRepo repository.UserRepository,
	notificationSvc *NotificationService,
	activitySvc *ActivityLogService,
) *OrderService {
	return &OrderService{
		orderUow:        orderUow,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		shopRepo:        shopRepo,
		balanceRepo:     balanceRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		activitySvc:     activitySvc,
	}
}

// ==================== 下单 ====================

// CreateOrder 下单
// 商品名称与单价在此刻落为快照，之后目录变更不影响本订单；
// 每个行项目同时生成一条 pending 状态的卖家余额流水
func (s *OrderService) CreateOrder(ctx context.Context, customerID int64, req *dto.CreateOrderRequest) (*model.Order, error) {
	shop, err := s.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.IsActive != model.Active {
		return nil, ErrShopNotFound
	}

	// 逐行校验商品并落快照
	lines := make([]model.OrderLine, 0, len(req.Items))
	var subtotal int64
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		if product.ShopID != req.ShopID || product.IsActive != model.Active {
			return nil, ErrProductNotFound
		}
		if product.Quantity < item.Quantity {
			return nil, ErrInsufficientStock
		}

		line := model.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		}
		lines = append(lines, line)
		subtotal += line.Subtotal()
	}

	snapshot, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}

	total := subtotal + req.ShippingFee - req.PriceDiscount - req.ShippingDiscount
	if total < 0 {
		return nil, ErrInvalidOrderAmount
	}

	order := &model.Order{
		PublicID:         utils.GeneratePublicID(),
		CustomerID:       customerID,
		ShopID:           req.ShopID,
		Products:         datatypes.JSON(snapshot),
		PaymentMethod:    req.PaymentMethod,
		SubtotalPrice:    subtotal,
		ShippingFee:      req.ShippingFee,
		PriceDiscount:    req.PriceDiscount,
		ShippingDiscount: req.ShippingDiscount,
		TotalPrice:       total,
		Status:           model.OrderStatusProcessing,
		IsActive:         model.Active,
	}
	// 订单落库、扣库存、生成余额流水在同一事务里，任何一步失败整体回滚。
	// 库存扣减带 quantity >= 扣减量 条件，并发下单抢同一件库存时后到者回滚
	err = s.orderUow.Transaction(ctx, func(uow *repository.OrderUnitOfWork) error {
		if err := uow.Orders.Create(ctx, order); err != nil {
			return err
		}

		for _, line := range lines {
			affected, err := uow.Products.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}

		// 每个行项目一条余额流水，初始 pending
		balances := make([]model.SellerBalance, 0, len(lines))
		for _, line := range lines {
			balances = append(balances, model.SellerBalance{
				PublicID:   utils.GeneratePublicID(),
				OrderRefID: order.ID,
				SellerID:   shop.SellerID,
				ShopID:     shop.ID,
				ProductID:  line.ProductID,
				Amount:     line.Subtotal(),
				Status:     model.BalanceStatusPending,
				IsActive:   model.Active,
			})
		}
		return uow.Balances.CreateBatch(ctx, balances)
	})
	if err != nil {
		return nil, err
	}

	s.notificationSvc.NotifySeller(ctx, shop.SellerID, "新订单",
		fmt.Sprintf("店铺收到新订单 %s，共 %d 件商品", order.PublicID, len(lines)))
	s.notificationSvc.NotifyCustomer(ctx, shop.ID, customerID, "下单成功",
		fmt.Sprintf("订单 %s 已创建，正在处理中", order.PublicID))
	s.activitySvc.Record(ctx, "创建订单",
		fmt.Sprintf("买家 %d 在店铺 %d 下单 %s，总额 %d", customerID, shop.ID, order.PublicID, total))

	return order, nil
}

// ==================== 状态流转 ====================

// AdvanceStatus 推进订单状态
// 只允许流转到紧邻的下一个状态；带前置状态条件更新，
// 受影响行数为 0 说明状态已被并发改走，按冲突处理。
// sellerID 为 0 表示管理员流转，不做店铺归属校验
func (s *OrderService) AdvanceStatus(ctx context.Context, sellerID int64, publicID, next string) (*model.Order, error) {
	if !model.ValidOrderStatus(next) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if sellerID != 0 {
		shop, err := s.shopRepo.GetByID(ctx, order.ShopID)
		if err != nil || shop.SellerID != sellerID {
			return nil, ErrOrderNotFound
		}
	}

	if !model.CanAdvanceOrderStatus(order.Status, next) {
		return nil, ErrIllegalOrderTransition
	}

	affected, err := s.orderRepo.UpdateStatusFrom(ctx, order.ID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalOrderTransition
	}
	order.Status = next

	s.notificationSvc.NotifyCustomer(ctx, order.ShopID, order.CustomerID, "订单状态更新",
		fmt.Sprintf("订单 %s 状态已更新为 %s", order.PublicID, next))
	s.activitySvc.Record(ctx, "订单状态流转",
		fmt.Sprintf("订单 %s 流转至 %s", order.PublicID, next))

	return order, nil
}

// ==================== 查询 ====================

// GetOrder 按对外编号查询订单
func (s *OrderService) GetOrder(ctx context.Context, publicID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListCustomerOrders 买家订单列表
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID int64, filter repository.OrderFilter) ([]model.Order, int64, error) {
	filter.CustomerID = customerID
	return s.orderRepo.List(ctx, filter)
}

// ListShopOrders 店铺订单列表（卖家视角）
func (s *OrderService) ListShopOrders(ctx context.Context, sellerID, shopID int64, filter repository.OrderFilter) ([]model.Order, int64, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil || shop.SellerID != sellerID {
		return nil, 0, ErrShopNotFound
	}
	filter.ShopID = shopID
	return s.orderRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrOrderNotFound          = errors.New("订单不存在")
	ErrInvalidOrderStatus     = errors.New("非法的订单状态")
	ErrIllegalOrderTransition = errors.New("订单状态不允许该流转")
	ErrInsufficientStock      = errors.New("商品库存不足")
	ErrInvalidOrderAmount     = errors.New("订单金额不合法")
)
