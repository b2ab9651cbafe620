package handler

import (
	"net/http"
	"time"

	"boutique/internal/config"
	"boutique/internal/middleware"
	auth "boutique/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// 管理画面のログイン／ログアウト。セッションはHttpOnly cookieのJWT。
type AuthHandler struct {
	uc           *auth.AdminLoginUsecase
	cookieSecure bool // prodのみSecure
}

// DI
func NewAuthHandler(uc *auth.AdminLoginUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		cookieSecure: cfg.GoEnv == "prod",
	}
}

// loginとlogoutはAdminAuthの外に置く
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
	e.POST("/admin/logout", h.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err == auth.ErrInvalidCredentials {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  out.ExpiresAt,
	})

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged in"})
}

func (h *AuthHandler) logout(c echo.Context) error {
	// cookieを失効させる
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}
