// Package router builds the echo instance: global middleware in order,
// system routes and one route group per resource.
package router

import (
	"net/http"

	"github.com/deppfellow/records-api/internal/handler"
	"github.com/deppfellow/records-api/internal/middleware"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/labstack/echo/v4"
)

// APIPrefix is where resource routes are mounted.
const APIPrefix = "/api"

// NewRouter returns the HTTP handler for the whole service.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(r, h)

	api := r.Group(APIPrefix)
	for _, rh := range h.Resources() {
		registerResourceRoutes(api, h.Base(), rh)
	}

	return r
}

// registerResourceRoutes mounts the five operations of one resource. PUT and
// PATCH are both partial updates.
func registerResourceRoutes(api *echo.Group, base handler.Handler, rh *handler.RecordHandler) {
	schema := rh.Schema()
	validatePayload := middleware.ValidatePayload(schema)

	g := api.Group("/" + schema.Path)

	g.GET("", handler.Handle(base, rh.List, http.StatusOK, &handler.ListRequest{}))
	g.GET("/:id", handler.Handle(base, rh.Get, http.StatusOK, &handler.RecordIDRequest{}))
	g.POST("", handler.Handle(base, rh.Create, http.StatusCreated, &handler.CreateRequest{}), validatePayload)
	g.PUT("/:id", handler.Handle(base, rh.Update, http.StatusOK, &handler.RecordIDRequest{}), validatePayload)
	g.PATCH("/:id", handler.Handle(base, rh.Update, http.StatusOK, &handler.RecordIDRequest{}), validatePayload)
	g.DELETE("/:id", handler.Handle(base, rh.Delete, http.StatusOK, &handler.RecordIDRequest{}))
}
