package server

import (
	"net/http"

	_ "fashionstore/docs"
	"fashionstore/internal/config"
	"fashionstore/internal/metrics"
	"fashionstore/internal/middleware"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, m *metrics.Metrics, limiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	h.Auth.RegisterRoutes(api, limiter.Middleware())
	h.Products.RegisterRoutes(api)
	h.Orders.RegisterRoutes(api, middleware.AuthJWT(cfg))
}
