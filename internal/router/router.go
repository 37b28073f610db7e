// Package router builds the Echo instance: global middleware, the JSON
// serializer, the error handler and every route of the catalog API.
package router

import (
	"github.com/deppfellow/music-catalog/internal/handler"
	"github.com/deppfellow/music-catalog/internal/middleware"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns a fully wired Echo instance ready to be passed to
// server.SetupHTTPServer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = server.JSONSerializer{}
	router.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the logger is built,
	// and the New Relic transaction before trace ids are read.
	router.Use(
		middleware.RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.Secure(),
		mws.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerCatalogRoutes(router, h)

	return router
}
