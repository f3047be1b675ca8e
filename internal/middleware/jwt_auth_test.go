package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 单元测试 ====================

func TestGenerateAndParseToken(t *testing.T) {
	accessToken, refreshToken, err := GenerateTokenPair(42, "juan", "seller")
	if err != nil {
		t.Fatalf("生成 Token 对失败: %v", err)
	}

	claims, err := ParseToken(accessToken)
	if err != nil {
		t.Fatalf("解析 Access Token 失败: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "juan" || claims.Role != "seller" {
		t.Errorf("claims 不符: %+v", claims)
	}
	if claims.Subject != "access" {
		t.Errorf("subject = %s, want access", claims.Subject)
	}

	refreshClaims, err := ParseToken(refreshToken)
	if err != nil {
		t.Fatalf("解析 Refresh Token 失败: %v", err)
	}
	if refreshClaims.Subject != "refresh" {
		t.Errorf("subject = %s, want refresh", refreshClaims.Subject)
	}

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("非法 Token 未报错")
	}
}

func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetUserRole(c)})
	})
	r.GET("/admin", JWTAuth(), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})
	return r
}

func TestJWTAuth_CookieAndBearer(t *testing.T) {
	r := setupAuthTestRouter()
	accessToken, _, err := GenerateTokenPair(7, "juan", "customer")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	// Cookie 携带
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: accessToken})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Cookie 认证 status = %d, want 200", w.Code)
	}

	// Bearer 兼容
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Bearer 认证 status = %d, want 200", w.Code)
	}

	// 未携带
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("无 Token status = %d, want 401", w.Code)
	}

	// 伪造 Token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer forged.token.value")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("伪造 Token status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_RefreshTokenRejectedOnAPI(t *testing.T) {
	r := setupAuthTestRouter()
	_, refreshToken, err := GenerateTokenPair(7, "juan", "customer")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	// Refresh Token 不能当 Access Token 用
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Refresh Token status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := setupAuthTestRouter()

	adminToken, _, _ := GenerateTokenPair(1, "admin", "admin")
	customerToken, _, _ := GenerateTokenPair(2, "juan", "customer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("customer status = %d, want 403", w.Code)
	}
}

func TestSendRateLimiter(t *testing.T) {
	limiter := GetLimiter()
	key := "otp:limiter-test"
	limiter.Reset(key)

	first := limiter.Check(key, 100*time.Millisecond)
	if !first.Allowed {
		t.Fatal("首次检查应放行")
	}

	second := limiter.Check(key, 100*time.Millisecond)
	if second.Allowed {
		t.Fatal("冷却期内应被拒")
	}
	if second.RetryAfter <= 0 {
		t.Errorf("retry_after = %v, want > 0", second.RetryAfter)
	}

	time.Sleep(120 * time.Millisecond)
	third := limiter.Check(key, 100*time.Millisecond)
	if !third.Allowed {
		t.Error("冷却期过后应放行")
	}
}
