package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/pkg/config"
	"marketplace_dev_v1_202601/pkg/utils"
)

// ==================== 单元测试 ====================

// 网关留空时验证码只写缓存，正好可以整条链路跑通

func TestOTPService_SendAndVerify(t *testing.T) {
	svc := NewOTPService(&config.SMSConfig{})
	number := "09170000001"
	middleware.GetLimiter().Reset("otp:" + number)

	if err := svc.SendOTP(testCtx(), number); err != nil {
		t.Fatalf("下发验证码失败: %v", err)
	}

	code, ok := utils.GetCache("otp:code:" + number)
	if !ok {
		t.Fatal("验证码未写入缓存")
	}
	if len(code) != otpLength {
		t.Errorf("验证码长度 = %d, want %d", len(code), otpLength)
	}

	// 错误验证码
	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}
	if err := svc.VerifyOTP(testCtx(), number, wrong); !errors.Is(err, ErrOTPMismatch) {
		t.Errorf("err = %v, want ErrOTPMismatch", err)
	}

	// 正确验证码，校验通过后立即失效
	if err := svc.VerifyOTP(testCtx(), number, code); err != nil {
		t.Fatalf("校验验证码失败: %v", err)
	}
	if err := svc.VerifyOTP(testCtx(), number, code); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("err = %v, want ErrOTPExpired", err)
	}
}

func TestOTPService_ResendThrottled(t *testing.T) {
	svc := NewOTPService(&config.SMSConfig{})
	number := "09170000002"
	middleware.GetLimiter().Reset("otp:" + number)

	if err := svc.SendOTP(testCtx(), number); err != nil {
		t.Fatalf("下发验证码失败: %v", err)
	}

	// 60 秒冷却内重发被拒
	if err := svc.SendOTP(testCtx(), number); !errors.Is(err, ErrOTPTooFrequent) {
		t.Errorf("err = %v, want ErrOTPTooFrequent", err)
	}
}

func TestOTPService_VerifyUnknownNumber(t *testing.T) {
	svc := NewOTPService(&config.SMSConfig{})

	if err := svc.VerifyOTP(testCtx(), "09170000003", "123456"); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("err = %v, want ErrOTPExpired", err)
	}
}
