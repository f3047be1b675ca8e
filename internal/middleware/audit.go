package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ==================== 审计上下文 ====================

// AuditContext Key
type auditContextKey struct{}

// AuditInfo 审计信息
type AuditInfo struct {
	UserID    int64
	Username  string
	IPAddress string
}

// WithAuditInfo 注入审计信息到 context
func WithAuditInfo(ctx context.Context, userID int64, username, ip string) context.Context {
	return context.WithValue(ctx, auditContextKey{}, &AuditInfo{
		UserID:    userID,
		Username:  username,
		IPAddress: ip,
	})
}

// GetAuditInfo 从 context 获取审计信息
func GetAuditInfo(ctx context.Context) *AuditInfo {
	if info, ok := ctx.Value(auditContextKey{}).(*AuditInfo); ok {
		return info
	}
	return nil
}

// GetAuditIP 从 context 获取请求方 IP
func GetAuditIP(ctx context.Context) string {
	if info := GetAuditInfo(ctx); info != nil {
		return info.IPAddress
	}
	return ""
}

// ==================== Gin 中间件 ====================

// AuditContext 审计上下文中间件
// 将 JWT 中的用户信息和来源 IP 注入 request context，供操作日志使用
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithAuditInfo(c.Request.Context(), GetUserID(c), GetUsername(c), c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
