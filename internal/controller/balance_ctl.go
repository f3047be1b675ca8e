package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// BalanceController 余额/提现控制器
type BalanceController struct {
	balanceService *service.BalanceService
	sellerService  *service.SellerService
}

func NewBalanceController(
	balanceService *service.BalanceService,
	sellerService *service.SellerService,
) *BalanceController {
	return &BalanceController{
		balanceService: balanceService,
		sellerService:  sellerService,
	}
}

func (ctrl *BalanceController) currentSeller(c *gin.Context) (*model.Seller, bool) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return seller, true
}

// ==================== API 方法 ====================

// SettleBalance 结算余额流水（管理员）
// @Summary 结算余额流水
// @Tags Balance
// @Param id path int true "流水ID"
// @Param body body dto.SettleBalanceRequest true "结算请求"
// @Router /api/balances/{id}/settle [post]
func (ctrl *BalanceController) SettleBalance(c *gin.Context) {
	balanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SettleBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	balance, err := ctrl.balanceService.SettleBalance(c.Request.Context(), balanceID, req.Status)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toBalanceInfo(balance))
}

// ListBalances 卖家余额流水列表
// @Summary 卖家余额流水列表
// @Tags Balance
// @Router /api/balances [get]
func (ctrl *BalanceController) ListBalances(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.ListBalancesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rows, total, err := ctrl.balanceService.ListBalances(c.Request.Context(), seller.ID, req.Status, req.Page, req.PageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.BalanceInfo, 0, len(rows))
	for i := range rows {
		list = append(list, toBalanceInfo(&rows[i]))
	}
	Success(c, dto.ListBalancesResponse{Total: total, List: list})
}

// RequestWithdrawal 发起提现
// @Summary 卖家发起提现
// @Tags Withdrawal
// @Param body body dto.RequestWithdrawalRequest true "提现请求"
// @Router /api/withdrawals [post]
func (ctrl *BalanceController) RequestWithdrawal(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.RequestWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	withdrawal, sweptCount, err := ctrl.balanceService.RequestWithdrawal(c.Request.Context(), seller.ID, req.Amount)
	if err != nil {
		Fail(c, err)
		return
	}

	info := toWithdrawalInfo(withdrawal)
	info.SweptCount = int(sweptCount)
	Created(c, info)
}

// ProcessWithdrawal 提现打款（管理员）
// @Summary 提现打款
// @Tags Withdrawal
// @Param withdrawal_id path string true "提现单编号"
// @Router /api/withdrawals/{withdrawal_id}/process [post]
func (ctrl *BalanceController) ProcessWithdrawal(c *gin.Context) {
	publicID := c.Param("withdrawal_id")
	if publicID == "" {
		BadRequest(c, "无效的提现单编号")
		return
	}

	withdrawal, err := ctrl.balanceService.ProcessWithdrawal(c.Request.Context(), publicID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toWithdrawalInfo(withdrawal))
}

// ListWithdrawals 卖家提现单列表
// @Summary 卖家提现单列表
// @Tags Withdrawal
// @Router /api/withdrawals [get]
func (ctrl *BalanceController) ListWithdrawals(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.ListWithdrawalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rows, total, err := ctrl.balanceService.ListWithdrawals(c.Request.Context(), seller.ID, req.Page, req.PageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.WithdrawalInfo, 0, len(rows))
	for i := range rows {
		list = append(list, toWithdrawalInfo(&rows[i]))
	}
	Success(c, dto.ListWithdrawalsResponse{Total: total, List: list})
}

// ==================== 转换函数 ====================

func toBalanceInfo(balance *model.SellerBalance) dto.BalanceInfo {
	return dto.BalanceInfo{
		ID:              balance.ID,
		SellerBalanceID: balance.PublicID,
		OrderRefID:      balance.OrderRefID,
		SellerID:        balance.SellerID,
		ShopID:          balance.ShopID,
		ProductID:       balance.ProductID,
		Amount:          balance.Amount,
		Status:          balance.Status,
		WithdrawalID:    balance.WithdrawalID,
		CreatedAt:       balance.CreatedAt,
	}
}

func toWithdrawalInfo(withdrawal *model.SellerWithdrawal) dto.WithdrawalInfo {
	return dto.WithdrawalInfo{
		ID:                 withdrawal.ID,
		SellerWithdrawalID: withdrawal.PublicID,
		SellerID:           withdrawal.SellerID,
		ShopID:             withdrawal.ShopID,
		Amount:             withdrawal.Amount,
		Status:             withdrawal.Status,
		CreatedAt:          withdrawal.CreatedAt,
	}
}
