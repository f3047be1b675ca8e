package dto

import "time"

// ==================== 通知 ====================

// NotificationInfo 通知信息
type NotificationInfo struct {
	ID          int64     `json:"id"`
	PublicID    string    `json:"notification_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListNotificationsRequest 通知列表请求
type ListNotificationsRequest struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}

// ListNotificationsResponse 通知列表响应
type ListNotificationsResponse struct {
	Total int64              `json:"total"`
	List  []NotificationInfo `json:"list"`
}

// ==================== 关注 ====================

// FollowShopRequest 关注店铺请求
type FollowShopRequest struct {
	ShopID int64 `json:"shop_id" binding:"required"`
}

// ==================== 短信验证码 ====================

// SendOTPRequest 发送验证码请求
type SendOTPRequest struct {
	ContactNumber string `json:"contact_number" binding:"required,max=20"`
}

// VerifyOTPRequest 校验验证码请求
type VerifyOTPRequest struct {
	ContactNumber string `json:"contact_number" binding:"required,max=20"`
	Code          string `json:"code" binding:"required,len=6"`
}
