package server

import (
	"net/http"

	"fashionstore/internal/config"
	"fashionstore/internal/handler"
	"fashionstore/internal/logger"
	"fashionstore/internal/metrics"
	"fashionstore/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
}

// echoを組み立てる（起動はmain）
func New(cfg config.Config, m *metrics.Metrics, limiter *middleware.RateLimiter, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(logger.RequestID())
	e.Use(logger.RequestLogger())
	e.Use(m.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			handler.HeaderIdempotencyKey,
			logger.HeaderRequestID,
		},
		ExposeHeaders: []string{logger.HeaderRequestID},
	}))

	RegisterRoutes(e, cfg, m, limiter, h)
	return e
}
