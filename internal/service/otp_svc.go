package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/pkg/config"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== OTPService 短信验证码服务 ====================

// 验证码参数
const (
	otpLength       = 6
	otpTTL          = 5 * time.Minute
	otpSendInterval = 60 * time.Second
)

// OTPService 短信验证码服务
// 验证码走进程内 TTL 缓存，发送走短信网关 HTTP 接口
type OTPService struct {
	client  *resty.Client
	cfg     *config.SMSConfig
	limiter *middleware.SendRateLimiter
}

// NewOTPService 创建验证码服务
func NewOTPService(cfg *config.SMSConfig) *OTPService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Marketplace-Go-App/1.0")

	return &OTPService{
		client:  client,
		cfg:     cfg,
		limiter: middleware.GetLimiter(),
	}
}

// smsPayload 短信网关请求体
type smsPayload struct {
	APIKey  string `json:"api_key"`
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendOTP 下发验证码
// 同一手机号 60 秒内只允许发送一次
func (s *OTPService) SendOTP(ctx context.Context, contactNumber string) error {
	result := s.limiter.Check("otp:"+contactNumber, otpSendInterval)
	if !result.Allowed {
		return fmt.Errorf("%w: %s", ErrOTPTooFrequent, middleware.FormatRetryAfter(result.RetryAfter))
	}

	code, err := utils.GenerateNumericCode(otpLength)
	if err != nil {
		return err
	}
	utils.SetCache(otpCacheKey(contactNumber), code, otpTTL)

	// 未配置网关时只写缓存，便于本地联调
	if s.cfg.GatewayURL == "" {
		zap.L().Info("短信网关未配置，验证码仅写入缓存",
			zap.String("contact_number", contactNumber))
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(smsPayload{
			APIKey:  s.cfg.APIKey,
			Sender:  s.cfg.Sender,
			To:      contactNumber,
			Message: fmt.Sprintf("您的验证码是 %s，%d 分钟内有效", code, int(otpTTL.Minutes())),
		}).
		Post(s.cfg.GatewayURL)
	if err != nil {
		return fmt.Errorf("短信发送失败: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("短信网关返回错误: %s", resp.Status())
	}

	zap.L().Info("验证码已下发", zap.String("contact_number", contactNumber))
	return nil
}

// VerifyOTP 校验验证码，校验通过后立即失效
func (s *OTPService) VerifyOTP(_ context.Context, contactNumber, code string) error {
	cached, ok := utils.GetCache(otpCacheKey(contactNumber))
	if !ok {
		return ErrOTPExpired
	}
	if cached != code {
		return ErrOTPMismatch
	}
	utils.DeleteCache(otpCacheKey(contactNumber))
	return nil
}

func otpCacheKey(contactNumber string) string {
	return "otp:code:" + contactNumber
}

// ==================== 错误定义 ====================

var (
	ErrOTPTooFrequent = errors.New("验证码发送过于频繁")
	ErrOTPExpired     = errors.New("验证码不存在或已过期")
	ErrOTPMismatch    = errors.New("验证码错误")
)
