package handler

import (
	"net/http"

	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// ニュースレター購読の公開API
type NewsletterHandler struct {
	uc *usecase.SubscriberUsecase
}

// DI
func NewNewsletterHandler(uc *usecase.SubscriberUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

func (h *NewsletterHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/newsletter/subscribe", h.subscribe)
}

func (h *NewsletterHandler) subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Subscribe(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "subscribed"})
}
