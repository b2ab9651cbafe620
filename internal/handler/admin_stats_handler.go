package handler

import (
	"net/http"

	"boutique/internal/config"
	"boutique/internal/middleware"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面トップのサマリAPI
type AdminStatsHandler struct {
	uc *usecase.StatsUsecase
}

// DI
func NewAdminStatsHandler(uc *usecase.StatsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{uc: uc}
}

// adminを登録
func (h *AdminStatsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))

	admin.GET("/dashboard/stats", h.stats)
}

func (h *AdminStatsHandler) stats(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
