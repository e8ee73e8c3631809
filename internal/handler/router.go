package handler

import (
	"net/http"

	"member-events-api/config"
	"member-events-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouteRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

// NewRouter 建立 gin engine 並掛上中介層、health check 與各資源路由
func NewRouter(cfg *config.ServerConfig, registrars ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// 不檢查任何相依服務
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	for _, registrar := range registrars {
		registrar.RegisterRoutes(r)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}
