package handler

import (
	"net/http"

	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
)

type viewCountResponse struct {
	Count int64 `json:"count"`
}

// サイト全体のページビューカウンタ
type ViewsHandler struct {
	uc *usecase.StatsUsecase
}

// DI
func NewViewsHandler(uc *usecase.StatsUsecase) *ViewsHandler {
	return &ViewsHandler{uc: uc}
}

func (h *ViewsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/views/count", h.count)
	e.POST("/views/increment", h.increment)
}

func (h *ViewsHandler) count(c echo.Context) error {
	count, err := h.uc.GetViews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewCountResponse{Count: count})
}

func (h *ViewsHandler) increment(c echo.Context) error {
	count, err := h.uc.IncrementViews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewCountResponse{Count: count})
}
