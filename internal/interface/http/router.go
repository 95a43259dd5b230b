package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/city-insights/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	limiter := rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger)

	router.GET("/", handler.Page)
	router.POST("/refresh", limiter, handler.SubmitRefresh)
	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1", corsMiddleware(cfg.HTTP.AllowedOrigins))
	{
		api.GET("/dashboard", handler.GetDashboard)
		api.POST("/etl/run", limiter, handler.RunETL)
		api.POST("/insights/reload", limiter, handler.ReloadInsights)
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", c.GetString(requestIDKey))
	}
}
