// README: API gateway; registers HTTP routes and delegates to the planner.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"packmin/internal/http/handlers"
	"packmin/internal/http/middleware"
	"packmin/internal/modules/history"
)

type ServerDeps struct {
	Planner handlers.Generator
	History *history.Store // nil disables history routes
	Log     *zap.Logger
}

func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.Recovery(deps.Log))

	packingHandler := handlers.NewPackingHandler(deps.Planner)
	r.POST("/api/packing-lists", packingHandler.Create)

	if deps.History != nil {
		historyHandler := handlers.NewHistoryHandler(deps.History)
		r.GET("/api/packing-lists/recent", historyHandler.List)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
