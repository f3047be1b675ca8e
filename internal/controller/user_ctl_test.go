package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/internal/service"
	"marketplace_dev_v1_202601/pkg/config"
)

// ==================== 测试环境 ====================

// setupAuthRouter 组装注册/登录相关路由，走真实 service 和内存库
func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.SysUser{}, &model.ActivityLog{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	activitySvc := service.NewActivityLogService(repository.NewActivityLogRepository(db))
	userSvc := service.NewUserService(repository.NewUserRepository(db), activitySvc)
	otpSvc := service.NewOTPService(&config.SMSConfig{})
	userCtrl := NewUserController(userSvc, otpSvc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/me", middleware.JWTAuth(), userCtrl.Me)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 注册/登录流程 ====================

func TestUserController_RegisterLoginMe(t *testing.T) {
	r := setupAuthRouter(t)

	// 注册
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "webuser01",
		"password": "secret123",
		"email":    "webuser01@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("注册应返回 201，实际 %d: %s", w.Code, w.Body.String())
	}

	// 重复注册同名用户冲突
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "webuser01",
		"password": "secret123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("重复用户名应返回 409，实际 %d", w.Code)
	}

	// 登录，应写入 Cookie
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "webuser01",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录应返回 200，实际 %d: %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("登录响应应设置 access_token Cookie")
	}

	var loginResp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("解析登录响应失败: %v", err)
	}
	if loginResp.Data.User.Role != string(model.RoleCustomer) {
		t.Fatalf("默认角色应为 customer，实际 %s", loginResp.Data.User.Role)
	}

	// 带 Cookie 访问 /me
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("携带 Cookie 访问 /me 应返回 200，实际 %d: %s", w2.Code, w2.Body.String())
	}

	var meResp struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &meResp); err != nil {
		t.Fatalf("解析 /me 响应失败: %v", err)
	}
	if meResp.Data.Username != "webuser01" {
		t.Fatalf("/me 应返回当前用户，实际 %s", meResp.Data.Username)
	}

	// 无 Cookie 访问 /me 被拒
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req)
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("未登录访问 /me 应返回 401，实际 %d", w3.Code)
	}
}

func TestUserController_LoginFailures(t *testing.T) {
	r := setupAuthRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "webuser02",
		"password": "secret123",
	})

	// 密码错误
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "webuser02",
		"password": "wrongpass",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("密码错误应返回 401，实际 %d", w.Code)
	}

	// 缺少必填字段
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "webuser02",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少密码应返回 400，实际 %d", w.Code)
	}
}

func TestUserController_Logout(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("登出应返回 200，实际 %d", w.Code)
	}

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("登出应清除 access_token Cookie")
	}
}
