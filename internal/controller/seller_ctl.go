package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// SellerController 卖家/收款账户控制器
type SellerController struct {
	sellerService      *service.SellerService
	bankAccountService *service.BankAccountService
}

func NewSellerController(
	sellerService *service.SellerService,
	bankAccountService *service.BankAccountService,
) *SellerController {
	return &SellerController{
		sellerService:      sellerService,
		bankAccountService: bankAccountService,
	}
}

// currentSeller 解析当前登录用户的卖家身份
func (ctrl *SellerController) currentSeller(c *gin.Context) (*model.Seller, bool) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return seller, true
}

// ==================== 卖家 ====================

// CreateSeller 卖家入驻
// @Summary 卖家入驻
// @Tags Seller
// @Accept json
// @Produce json
// @Param body body dto.CreateSellerRequest true "入驻请求"
// @Router /api/sellers [post]
func (ctrl *SellerController) CreateSeller(c *gin.Context) {
	var req dto.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	seller, err := ctrl.sellerService.CreateSeller(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toSellerInfo(seller))
}

// UpdateSeller 更新卖家资料
// @Summary 更新卖家资料
// @Tags Seller
// @Param body body dto.UpdateSellerRequest true "更新请求"
// @Router /api/sellers/me [patch]
func (ctrl *SellerController) UpdateSeller(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updated, err := ctrl.sellerService.UpdateSeller(c.Request.Context(), seller.ID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toSellerInfo(updated))
}

// GetSeller 当前卖家资料
// @Summary 当前卖家资料
// @Tags Seller
// @Router /api/sellers/me [get]
func (ctrl *SellerController) GetSeller(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	Success(c, toSellerInfo(seller))
}

// ==================== 收款账户 ====================

// CreateBankAccount 新增收款账户
// @Summary 新增收款账户
// @Tags BankAccount
// @Param body body dto.CreateBankAccountRequest true "新增请求"
// @Router /api/sellers/me/bank-accounts [post]
func (ctrl *SellerController) CreateBankAccount(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	account, err := ctrl.bankAccountService.CreateBankAccount(c.Request.Context(), seller.ID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toBankAccountInfo(account))
}

// ActivateBankAccount 启用收款账户
// @Summary 启用收款账户
// @Tags BankAccount
// @Param id path int true "账户ID"
// @Router /api/sellers/me/bank-accounts/{id}/activate [post]
func (ctrl *SellerController) ActivateBankAccount(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.bankAccountService.ActivateBankAccount(c.Request.Context(), seller.ID, accountID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// DeactivateBankAccount 停用收款账户
// @Summary 停用收款账户
// @Tags BankAccount
// @Param id path int true "账户ID"
// @Router /api/sellers/me/bank-accounts/{id}/deactivate [post]
func (ctrl *SellerController) DeactivateBankAccount(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.bankAccountService.DeactivateBankAccount(c.Request.Context(), seller.ID, accountID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// UpdateBankAccount 更新收款账户
// @Summary 更新收款账户
// @Tags BankAccount
// @Param id path int true "账户ID"
// @Router /api/sellers/me/bank-accounts/{id} [patch]
func (ctrl *SellerController) UpdateBankAccount(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	account, err := ctrl.bankAccountService.UpdateBankAccount(c.Request.Context(), seller.ID, accountID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toBankAccountInfo(account))
}

// ListBankAccounts 收款账户列表
// @Summary 收款账户列表
// @Tags BankAccount
// @Router /api/sellers/me/bank-accounts [get]
func (ctrl *SellerController) ListBankAccounts(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	accounts, err := ctrl.bankAccountService.ListBankAccounts(c.Request.Context(), seller.ID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.BankAccountInfo, 0, len(accounts))
	for i := range accounts {
		list = append(list, toBankAccountInfo(&accounts[i]))
	}
	Success(c, list)
}

// ==================== 转换函数 ====================

func toSellerInfo(seller *model.Seller) dto.SellerInfo {
	return dto.SellerInfo{
		ID:            seller.ID,
		UserID:        seller.UserID,
		FirstName:     seller.FirstName,
		LastName:      seller.LastName,
		ContactNumber: seller.ContactNumber,
		IsActive:      int(seller.IsActive),
	}
}

func toBankAccountInfo(account *model.BankAccount) dto.BankAccountInfo {
	return dto.BankAccountInfo{
		ID:            account.ID,
		SellerID:      account.SellerID,
		Name:          string(account.Name),
		ContactNumber: account.ContactNumber,
		IsActive:      int(account.IsActive),
	}
}
