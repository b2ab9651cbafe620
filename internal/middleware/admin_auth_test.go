package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boutique/internal/config"
	"boutique/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, cookieValue string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}

	var seenUser string
	h := middleware.AdminAuth(cfg)(func(c echo.Context) error {
		seenUser, _ = c.Get(middleware.CtxAdminUserKey).(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/stats", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()

	err := h(e.NewContext(req, rec))
	assert.NoError(t, err)

	return rec, seenUser
}

func TestAdminAuth_NoCookie(t *testing.T) {
	rec, _ := doRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_GarbageToken(t *testing.T) {
	rec, _ := doRequest(t, "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := doRequest(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec, _ := doRequest(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := doRequest(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, user := doRequest(t, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", user)
}
