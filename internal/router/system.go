package router

import (
	"github.com/deppfellow/records-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not resources: health,
// documentation UI and the static files it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
