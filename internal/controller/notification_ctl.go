package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// NotificationController 通知/活动日志控制器
type NotificationController struct {
	notificationService *service.NotificationService
	sellerService       *service.SellerService
	activityService     *service.ActivityLogService
}

func NewNotificationController(
	notificationService *service.NotificationService,
	sellerService *service.SellerService,
	activityService *service.ActivityLogService,
) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		sellerService:       sellerService,
		activityService:     activityService,
	}
}

// ==================== 买家通知 ====================

// ListMyNotifications 买家通知列表
// @Summary 买家通知列表
// @Tags Notification
// @Router /api/notifications [get]
func (ctrl *NotificationController) ListMyNotifications(c *gin.Context) {
	var req dto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rows, total, err := ctrl.notificationService.ListCustomerNotifications(
		c.Request.Context(), middleware.GetUserID(c), req.Page, req.PageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.NotificationInfo, 0, len(rows))
	for i := range rows {
		list = append(list, dto.NotificationInfo{
			ID:          rows[i].ID,
			PublicID:    rows[i].PublicID,
			Title:       rows[i].Title,
			Description: rows[i].Description,
			CreatedAt:   rows[i].CreatedAt,
		})
	}
	Success(c, dto.ListNotificationsResponse{Total: total, List: list})
}

// DismissNotification 买家撤下通知
// @Summary 买家撤下通知
// @Tags Notification
// @Param id path int true "通知ID"
// @Router /api/notifications/{id} [delete]
func (ctrl *NotificationController) DismissNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.notificationService.DismissCustomerNotification(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ==================== 卖家通知 ====================

// ListSellerNotifications 卖家通知列表
// @Summary 卖家通知列表
// @Tags Notification
// @Router /api/sellers/me/notifications [get]
func (ctrl *NotificationController) ListSellerNotifications(c *gin.Context) {
	seller, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}

	var req dto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rows, total, err := ctrl.notificationService.ListSellerNotifications(
		c.Request.Context(), seller.ID, req.Page, req.PageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]dto.NotificationInfo, 0, len(rows))
	for i := range rows {
		list = append(list, dto.NotificationInfo{
			ID:          rows[i].ID,
			PublicID:    rows[i].PublicID,
			Title:       rows[i].Title,
			Description: rows[i].Description,
			CreatedAt:   rows[i].CreatedAt,
		})
	}
	Success(c, dto.ListNotificationsResponse{Total: total, List: list})
}

// DismissSellerNotification 卖家撤下通知
// @Summary 卖家撤下通知
// @Tags Notification
// @Param id path int true "通知ID"
// @Router /api/sellers/me/notifications/{id} [delete]
func (ctrl *NotificationController) DismissSellerNotification(c *gin.Context) {
	if _, err := ctrl.sellerService.GetSellerByUser(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		Fail(c, err)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.notificationService.DismissSellerNotification(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ==================== 活动日志 ====================

// ListActivityLogs 活动日志列表（管理员）
// @Summary 活动日志列表
// @Tags ActivityLog
// @Router /api/activity-logs [get]
func (ctrl *NotificationController) ListActivityLogs(c *gin.Context) {
	var req dto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	logs, total, err := ctrl.activityService.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"total": total, "list": logs})
}
