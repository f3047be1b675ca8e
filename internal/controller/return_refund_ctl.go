package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// ReturnRefundController 退换/退款控制器
type ReturnRefundController struct {
	returnRefundService *service.ReturnRefundService
}

func NewReturnRefundController(returnRefundService *service.ReturnRefundService) *ReturnRefundController {
	return &ReturnRefundController{returnRefundService: returnRefundService}
}

// ==================== API 方法 ====================

// RequestReturnRefund 买家发起退换/退款申请
// @Summary 发起退换/退款申请
// @Tags ReturnRefund
// @Accept json
// @Produce json
// @Param body body dto.CreateReturnRefundRequest true "申请"
// @Router /api/return-refunds [post]
func (ctrl *ReturnRefundController) RequestReturnRefund(c *gin.Context) {
	var req dto.CreateReturnRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rr, err := ctrl.returnRefundService.RequestReturnRefund(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toReturnRefundInfo(rr))
}

// Adjudicate 卖家裁决申请
// @Summary 裁决退换/退款申请
// @Tags ReturnRefund
// @Param return_refund_id path string true "申请编号"
// @Param body body dto.AdjudicateReturnRefundRequest true "裁决"
// @Router /api/return-refunds/{return_refund_id}/adjudicate [post]
func (ctrl *ReturnRefundController) Adjudicate(c *gin.Context) {
	publicID := c.Param("return_refund_id")
	if publicID == "" {
		BadRequest(c, "无效的申请编号")
		return
	}

	var req dto.AdjudicateReturnRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rr, err := ctrl.returnRefundService.Adjudicate(c.Request.Context(), publicID, req.Decision)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toReturnRefundInfo(rr))
}

// GetReturnRefund 查询申请
// @Summary 查询退换/退款申请
// @Tags ReturnRefund
// @Param return_refund_id path string true "申请编号"
// @Router /api/return-refunds/{return_refund_id} [get]
func (ctrl *ReturnRefundController) GetReturnRefund(c *gin.Context) {
	publicID := c.Param("return_refund_id")
	if publicID == "" {
		BadRequest(c, "无效的申请编号")
		return
	}

	rr, err := ctrl.returnRefundService.GetReturnRefund(c.Request.Context(), publicID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toReturnRefundInfo(rr))
}

// ListMyReturnRefunds 买家申请列表
// @Summary 买家退换/退款列表
// @Tags ReturnRefund
// @Router /api/return-refunds [get]
func (ctrl *ReturnRefundController) ListMyReturnRefunds(c *gin.Context) {
	var req dto.ListReturnRefundsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rows, total, err := ctrl.returnRefundService.ListByCustomer(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.ReturnRefundInfo, 0, len(rows))
	for i := range rows {
		list = append(list, toReturnRefundInfo(&rows[i]))
	}
	Success(c, gin.H{"total": total, "list": list})
}

// ==================== 转换函数 ====================

func toReturnRefundInfo(rr *model.ReturnRefund) dto.ReturnRefundInfo {
	info := dto.ReturnRefundInfo{
		ID:             rr.ID,
		ReturnRefundID: rr.PublicID,
		OrderRefID:     rr.OrderRefID,
		CustomerID:     rr.CustomerID,
		Reason:         rr.Reason,
		EvidenceImage:  rr.EvidenceImage,
		Status:         rr.Status,
		CreatedAt:      rr.CreatedAt,
	}
	if line, err := rr.ProductLine(); err == nil {
		info.Product = &dto.OrderLineInfo{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}
	return info
}
