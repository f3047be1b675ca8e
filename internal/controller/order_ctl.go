package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// OrderController 订单控制器
type OrderController struct {
	orderService  *service.OrderService
	sellerService *service.SellerService
}

func NewOrderController(
	orderService *service.OrderService,
	sellerService *service.SellerService,
) *OrderController {
	return &OrderController{
		orderService:  orderService,
		sellerService: sellerService,
	}
}

// ==================== API 方法 ====================

// CreateOrder 下单
// @Summary 买家下单
// @Tags Order
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderRequest true "下单请求"
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toOrderInfo(order))
}

// AdvanceStatus 推进订单状态
// 卖家只能推进自己店铺的订单，管理员不受限
// @Summary 推进订单状态
// @Tags Order
// @Param order_id path string true "订单编号"
// @Param body body dto.AdvanceOrderStatusRequest true "目标状态"
// @Router /api/orders/{order_id}/status [post]
func (ctrl *OrderController) AdvanceStatus(c *gin.Context) {
	publicID := c.Param("order_id")
	if publicID == "" {
		BadRequest(c, "无效的订单编号")
		return
	}

	var req dto.AdvanceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var sellerID int64
	if middleware.GetUserRole(c) != string(model.RoleAdmin) {
		seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
		if err != nil {
			Fail(c, err)
			return
		}
		sellerID = seller.ID
	}

	order, err := ctrl.orderService.AdvanceStatus(c.Request.Context(), sellerID, publicID, req.Status)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toOrderInfo(order))
}

// GetOrder 查询订单
// @Summary 查询订单
// @Tags Order
// @Param order_id path string true "订单编号"
// @Router /api/orders/{order_id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	publicID := c.Param("order_id")
	if publicID == "" {
		BadRequest(c, "无效的订单编号")
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), publicID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toOrderInfo(order))
}

// ListMyOrders 买家订单列表
// @Summary 买家订单列表
// @Tags Order
// @Router /api/orders [get]
func (ctrl *OrderController) ListMyOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	filter, ok := buildOrderFilter(c, &req)
	if !ok {
		return
	}

	orders, total, err := ctrl.orderService.ListCustomerOrders(c.Request.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toOrderListResponse(orders, total))
}

// ListShopOrders 店铺订单列表（卖家视角）
// @Summary 店铺订单列表
// @Tags Order
// @Param id path int true "店铺ID"
// @Router /api/shops/{id}/orders [get]
func (ctrl *OrderController) ListShopOrders(c *gin.Context) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	filter, ok := buildOrderFilter(c, &req)
	if !ok {
		return
	}

	orders, total, err := ctrl.orderService.ListShopOrders(c.Request.Context(), seller.ID, shopID, filter)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toOrderListResponse(orders, total))
}

// ==================== 转换函数 ====================

// buildOrderFilter 把列表请求转换为仓库过滤条件
func buildOrderFilter(c *gin.Context, req *dto.ListOrdersRequest) (repository.OrderFilter, bool) {
	filter := repository.OrderFilter{
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			BadRequest(c, "无效的 start_date")
			return filter, false
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			BadRequest(c, "无效的 end_date")
			return filter, false
		}
		end := t.Add(24*time.Hour - time.Second)
		filter.EndDate = &end
	}
	return filter, true
}

func toOrderInfo(order *model.Order) dto.OrderInfo {
	info := dto.OrderInfo{
		ID:               order.ID,
		OrderID:          order.PublicID,
		CustomerID:       order.CustomerID,
		ShopID:           order.ShopID,
		PaymentMethod:    order.PaymentMethod,
		SubtotalPrice:    order.SubtotalPrice,
		ShippingFee:      order.ShippingFee,
		PriceDiscount:    order.PriceDiscount,
		ShippingDiscount: order.ShippingDiscount,
		TotalPrice:       order.TotalPrice,
		Status:           order.Status,
		IsActive:         int(order.IsActive),
		CreatedAt:        order.CreatedAt,
	}
	if lines, err := order.Lines(); err == nil {
		for _, line := range lines {
			info.Lines = append(info.Lines, dto.OrderLineInfo{
				ProductID: line.ProductID,
				Name:      line.Name,
				Price:     line.Price,
				Quantity:  line.Quantity,
			})
		}
	}
	return info
}

func toOrderListResponse(orders []model.Order, total int64) dto.ListOrdersResponse {
	list := make([]dto.OrderInfo, 0, len(orders))
	for i := range orders {
		list = append(list, toOrderInfo(&orders[i]))
	}
	return dto.ListOrdersResponse{Total: total, List: list}
}
