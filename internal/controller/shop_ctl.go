package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// ShopController 店铺控制器
type ShopController struct {
	shopService   *service.ShopService
	sellerService *service.SellerService
	followService *service.FollowService
}

func NewShopController(
	shopService *service.ShopService,
	sellerService *service.SellerService,
	followService *service.FollowService,
) *ShopController {
	return &ShopController{
		shopService:   shopService,
		sellerService: sellerService,
		followService: followService,
	}
}

func (ctrl *ShopController) currentSeller(c *gin.Context) (*model.Seller, bool) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return seller, true
}

// ==================== API 方法 ====================

// CreateShop 新建店铺
// @Summary 新建店铺
// @Tags Shop
// @Accept json
// @Produce json
// @Param body body dto.CreateShopRequest true "新建请求"
// @Router /api/shops [post]
func (ctrl *ShopController) CreateShop(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}

	var req dto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	shop, err := ctrl.shopService.CreateShop(c.Request.Context(), seller.ID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, toShopInfo(shop, 0))
}

// ActivateShop 启用店铺
// @Summary 启用店铺
// @Tags Shop
// @Param id path int true "店铺ID"
// @Router /api/shops/{id}/activate [post]
func (ctrl *ShopController) ActivateShop(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.shopService.ActivateShop(c.Request.Context(), seller.ID, shopID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// DeactivateShop 停用店铺
// @Summary 停用店铺
// @Tags Shop
// @Param id path int true "店铺ID"
// @Router /api/shops/{id}/deactivate [post]
func (ctrl *ShopController) DeactivateShop(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.shopService.DeactivateShop(c.Request.Context(), seller.ID, shopID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// UpdateShop 更新店铺
// @Summary 更新店铺
// @Tags Shop
// @Param id path int true "店铺ID"
// @Param body body dto.UpdateShopRequest true "更新请求"
// @Router /api/shops/{id} [patch]
func (ctrl *ShopController) UpdateShop(c *gin.Context) {
	seller, ok := ctrl.currentSeller(c)
	if !ok {
		return
	}
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	shop, err := ctrl.shopService.UpdateShop(c.Request.Context(), seller.ID, shopID, &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toShopInfo(shop, 0))
}

// GetShop 查询店铺
// @Summary 查询店铺
// @Tags Shop
// @Param id path int true "店铺ID"
// @Router /api/shops/{id} [get]
func (ctrl *ShopController) GetShop(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	shop, followers, err := ctrl.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, toShopInfo(shop, followers))
}

// ListShops 店铺列表
// @Summary 店铺列表
// @Tags Shop
// @Router /api/shops [get]
func (ctrl *ShopController) ListShops(c *gin.Context) {
	var req dto.ListShopsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	shops, total, err := ctrl.shopService.ListShops(c.Request.Context(), repository.ShopFilter{
		SellerID: req.SellerID,
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.ShopInfo, 0, len(shops))
	for i := range shops {
		list = append(list, toShopInfo(&shops[i], 0))
	}
	Success(c, dto.ListShopsResponse{Total: total, List: list})
}

// ==================== 关注 ====================

// FollowShop 关注店铺
// @Summary 关注店铺
// @Tags Shop
// @Param body body dto.FollowShopRequest true "关注请求"
// @Router /api/shops/follow [post]
func (ctrl *ShopController) FollowShop(c *gin.Context) {
	var req dto.FollowShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if err := ctrl.followService.FollowShop(c.Request.Context(), middleware.GetUserID(c), req.ShopID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// UnfollowShop 取消关注
// @Summary 取消关注店铺
// @Tags Shop
// @Param id path int true "店铺ID"
// @Router /api/shops/{id}/follow [delete]
func (ctrl *ShopController) UnfollowShop(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.followService.UnfollowShop(c.Request.Context(), middleware.GetUserID(c), shopID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ==================== 转换函数 ====================

func toShopInfo(shop *model.Shop, followers int64) dto.ShopInfo {
	return dto.ShopInfo{
		ID:          shop.ID,
		SellerID:    shop.SellerID,
		Name:        shop.Name,
		Description: shop.Description,
		IsActive:    int(shop.IsActive),
		Followers:   followers,
	}
}
