package server

import (
	"context"
	"net/http"

	"boutique/internal/config"
	"boutique/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlersはルート登録に必要なハンドラ一式
type Handlers struct {
	Product         *handler.ProductHandler
	Order           *handler.OrderHandler
	Newsletter      *handler.NewsletterHandler
	Views           *handler.ViewsHandler
	Auth            *handler.AuthHandler
	AdminProduct    *handler.AdminProductHandler
	AdminOrder      *handler.AdminOrderHandler
	AdminSubscriber *handler.AdminSubscriberHandler
	AdminStats      *handler.AdminStatsHandler
}

// Newはechoを組み立ててルートを登録する。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// ストアフロントからのcookie付きリクエストを許可
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Newsletter.RegisterRoutes(e)
	h.Views.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminSubscriber.RegisterRoutes(e, cfg)
	h.AdminStats.RegisterRoutes(e, cfg)

	return e
}

// Startはブロックする。shutdownはShutdownで。
func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
