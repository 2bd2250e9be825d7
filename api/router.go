package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/ladle/api/handler"
	"github.com/use-agent/ladle/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain: Recovery → Logger. The extractor has no auth or quota
// layer; it is meant to sit behind the caller's own frontend.
func NewRouter(p handler.Runner, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health(startTime))
	v1.POST("/recipe", handler.Recipe(p))

	return r
}
