package handler

import (
	"net/http"

	"boutique/internal/config"
	"boutique/internal/domain/model"
	"boutique/internal/middleware"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
)

type orderStatusRequest struct {
	Status string `json:"status"`
}

// /admin/orders の管理API
type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// adminを登録
func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))

	admin.GET("/orders", h.list)
	admin.GET("/orders/:id", h.detail)
	admin.PUT("/orders/:id/status", h.updateStatus)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	details, err := h.uc.GetOrderDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "status updated"})
}
