package handler

import (
	"net/http"

	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST /orders のリクエストボディ
type PlaceOrderRequest struct {
	CustomerName string                        `json:"customerName"`
	Email        string                        `json:"email"`
	Phone        string                        `json:"phone"`
	City         string                        `json:"city"`
	Address      string                        `json:"address"`
	Total        decimal.Decimal               `json:"total"`
	Items        []usecase.PlaceOrderItemInput `json:"items"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// ストアフロントのチェックアウトAPI
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.place)
}

func (h *OrderHandler) place(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Address:      req.Address,
		Total:        req.Total,
		Items:        req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID})
}
