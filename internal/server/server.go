package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/handler"
)

type Handlers struct {
	Products          *handler.ProductHandler
	Categories        *handler.CategoryHandler
	DeliveryLocations *handler.DeliveryLocationHandler
	Orders            *handler.OrderHandler
}

// NewはEchoを組み立てる。起動はしない（テストから使うため）。
func New(cfg config.Config, logger *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status))
			return nil
		},
	}))

	//CORSはフロントのオリジンだけ許可
	origins := []string{"*"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
	}))

	RegisterRoutes(e, h)
	return e
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	v1 := e.Group("/v1")

	h.Products.RegisterRoutes(v1)
	h.Categories.RegisterRoutes(v1)
	h.DeliveryLocations.RegisterRoutes(v1)
	h.Orders.RegisterRoutes(v1)
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
