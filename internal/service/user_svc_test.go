package service

import (
	"errors"
	"testing"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/model"
)

// ==================== 单元测试 ====================

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userSvc.Register(testCtx(), &dto.RegisterRequest{
		Username: "juan",
		Password: "secret123",
		Email:    "juan@example.com",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.Role != model.RoleCustomer {
		t.Errorf("role = %s, want customer", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("密码以明文落库")
	}

	// 用户名唯一
	if _, err := env.userSvc.Register(testCtx(), &dto.RegisterRequest{
		Username: "juan", Password: "another123",
	}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}

	resp, err := env.userSvc.Login(testCtx(), &dto.LoginRequest{
		Username: "juan",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("令牌为空")
	}
	if resp.User.Username != "juan" {
		t.Errorf("username = %s, want juan", resp.User.Username)
	}
}

func TestUserService_LoginFailures(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.userSvc.Register(testCtx(), &dto.RegisterRequest{
		Username: "juan", Password: "secret123",
	}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 密码错误
	if _, err := env.userSvc.Login(testCtx(), &dto.LoginRequest{
		Username: "juan", Password: "wrong",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	// 用户不存在
	if _, err := env.userSvc.Login(testCtx(), &dto.LoginRequest{
		Username: "ghost", Password: "secret123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	// 账号被禁用
	if err := env.db.Model(&model.SysUser{}).Where("username = ?", "juan").
		Update("status", model.UserStatusDisabled).Error; err != nil {
		t.Fatalf("禁用账号失败: %v", err)
	}
	if _, err := env.userSvc.Login(testCtx(), &dto.LoginRequest{
		Username: "juan", Password: "secret123",
	}); !errors.Is(err, ErrUserDisabled) {
		t.Errorf("err = %v, want ErrUserDisabled", err)
	}
}

func TestUserService_RegisterSellerRole(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userSvc.Register(testCtx(), &dto.RegisterRequest{
		Username: "maria",
		Password: "secret123",
		Role:     "seller",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.Role != model.RoleSeller {
		t.Errorf("role = %s, want seller", user.Role)
	}
}
