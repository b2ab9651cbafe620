package handler

import (
	"net/http"

	"boutique/internal/config"
	"boutique/internal/middleware"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/subscribers の管理API
type AdminSubscriberHandler struct {
	uc *usecase.SubscriberUsecase
}

// DI
func NewAdminSubscriberHandler(uc *usecase.SubscriberUsecase) *AdminSubscriberHandler {
	return &AdminSubscriberHandler{uc: uc}
}

// adminを登録
func (h *AdminSubscriberHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))

	admin.GET("/subscribers", h.list)
	admin.DELETE("/subscribers/:id", h.delete)
}

func (h *AdminSubscriberHandler) list(c echo.Context) error {
	subscribers, err := h.uc.ListSubscribers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, subscribers)
}

func (h *AdminSubscriberHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteSubscriber(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
