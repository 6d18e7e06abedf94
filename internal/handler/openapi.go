package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/records-api/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds openapi.html and openapi.json.
const StaticDir = "static"

// OpenAPIHandler serves the API documentation UI. The page loads
// /static/openapi.json, which describes both resources.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: StaticDir,
	}
}

// ServeOpenAPIUI serves openapi.html uncached so doc changes show up
// immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.html"))

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
