package controller

import (
	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/api/dto"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/service"
)

// ==================== 控制器 ====================

// UserController 注册/登录控制器
type UserController struct {
	userService *service.UserService
	otpService  *service.OTPService
}

func NewUserController(userService *service.UserService, otpService *service.OTPService) *UserController {
	return &UserController{userService: userService, otpService: otpService}
}

// ==================== API 方法 ====================

// Register 注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "注册请求"
// @Router /api/auth/register [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := ctrl.userService.Register(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	Created(c, dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    int(user.Status),
		CreatedAt: user.CreatedAt,
	})
}

// Login 登录
// 登录成功后把 Access Token 写入 Cookie，同时在响应体返回
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录请求"
// @Router /api/auth/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	resp, err := ctrl.userService.Login(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	maxAge := int(middleware.GetJWTConfig().AccessTokenTTL.Seconds())
	c.SetCookie(middleware.AccessTokenCookie, resp.AccessToken, maxAge, "/", "", false, true)

	Success(c, resp)
}

// Logout 登出，清除 Cookie
// @Summary 用户登出
// @Tags Auth
// @Router /api/auth/logout [post]
func (ctrl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	Success(c, nil)
}

// Me 当前登录用户信息
// @Summary 当前用户
// @Tags Auth
// @Router /api/auth/me [get]
func (ctrl *UserController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := ctrl.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    int(user.Status),
		CreatedAt: user.CreatedAt,
	})
}

// SendOTP 下发短信验证码
// @Summary 发送验证码
// @Tags Auth
// @Param body body dto.SendOTPRequest true "发送请求"
// @Router /api/auth/otp/send [post]
func (ctrl *UserController) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if err := ctrl.otpService.SendOTP(c.Request.Context(), req.ContactNumber); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// VerifyOTP 校验短信验证码
// @Summary 校验验证码
// @Tags Auth
// @Param body body dto.VerifyOTPRequest true "校验请求"
// @Router /api/auth/otp/verify [post]
func (ctrl *UserController) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if err := ctrl.otpService.VerifyOTP(c.Request.Context(), req.ContactNumber, req.Code); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}
