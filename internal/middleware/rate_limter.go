package middleware

import (
	"fmt"
	"sync"
	"time"
)

// ==================== SendRateLimiter 发送限流器 ====================

// SendRateLimiter 发送类操作限流器
// 防止用户频繁触发短信验证码重发
type SendRateLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &SendRateLimiter{}

// GetLimiter 获取全局限流器
func GetLimiter() *SendRateLimiter {
	return globalLimiter
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "otp:09171234567"
// interval: 冷却间隔
func (r *SendRateLimiter) Check(key string, interval time.Duration) CheckResult {
	// 获取或创建锁条目
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)
	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 重置限流键（测试用）
func (r *SendRateLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// FormatRetryAfter 格式化剩余冷却时间提示
func FormatRetryAfter(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("请 %d 秒后重试", secs)
}
