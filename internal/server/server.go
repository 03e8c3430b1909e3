package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fridgy/backend/config"
	"github.com/fridgy/backend/internal/api"
	"github.com/fridgy/backend/internal/middleware"
	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// Server wires the router and the underlying HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates the server: CORS, request metrics, the metrics endpoint, and
// the API routes against the given repository.
func New(cfg *config.Config, repo store.Repository) *Server {
	router := gin.Default()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.SetupAPI(router, repo, service.SystemClock(), nil)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
