package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 统一响应 ====================

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    400,
		"message": message,
	})
}

// ==================== 错误映射 ====================

// notFoundErrs 资源不存在 → 404
var notFoundErrs = []error{
	service.ErrUserNotFound,
	service.ErrSellerNotFound,
	service.ErrShopNotFound,
	service.ErrBankAccountNotFound,
	service.ErrProductNotFound,
	service.ErrCategoryNotFound,
	service.ErrOrderNotFound,
	service.ErrProductNotInOrder,
	service.ErrReturnRefundNotFound,
	service.ErrBalanceNotFound,
	service.ErrWithdrawalNotFound,
}

// conflictErrs 状态/唯一性冲突 → 409
var conflictErrs = []error{
	service.ErrActiveShopExists,
	service.ErrActiveBankAccountExists,
	service.ErrSellerExists,
	service.ErrContactNumberTaken,
	service.ErrUsernameTaken,
	service.ErrIllegalOrderTransition,
	service.ErrReturnRefundFinalized,
	service.ErrIllegalBalanceTransition,
	service.ErrNoWithdrawableBalance,
	service.ErrWithdrawalAmountMismatch,
	service.ErrWithdrawalFinalized,
	service.ErrInsufficientStock,
}

// badRequestErrs 业务入参不合法 → 400
var badRequestErrs = []error{
	service.ErrInvalidOrderStatus,
	service.ErrInvalidDecision,
	service.ErrInvalidBankProvider,
	service.ErrInvalidPrice,
	service.ErrInvalidQuantity,
	service.ErrInvalidOrderAmount,
	service.ErrOTPExpired,
	service.ErrOTPMismatch,
}

// Fail 把服务层错误映射为 HTTP 状态码
// 未识别的错误一律按 500 处理，不向外暴露内部细节
func Fail(c *gin.Context, err error) {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"code": 409, "message": err.Error()})
			return
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
	case errors.Is(err, service.ErrUserDisabled):
		c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": err.Error()})
	case errors.Is(err, service.ErrOTPTooFrequent):
		c.JSON(http.StatusTooManyRequests, gin.H{"code": 429, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "服务器内部错误"})
	}
}

// ==================== 参数解析 ====================

// parseIDParam 解析路径上的数字ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "无效的"+name)
		return 0, false
	}
	return id, true
}
