// Package server provides the Gin HTTP server hosting the interview
// analysis API.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/server/middleware"
)

// Server wraps a Gin engine and an http.Server with lifecycle management.
type Server struct {
	config     Config
	engine     *gin.Engine
	httpServer *http.Server
	log        *logger.Logger
}

// New creates a Server with the standard middleware stack applied.
func New(cfg Config, log *logger.Logger) *Server {
	cfg.ApplyDefaults()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.BodySizeLimit(cfg.MaxBodySize),
		middleware.RequestLogger(),
	)

	return &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.Address(),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log.WithComponent("server"),
	}
}

// Engine exposes the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving and blocks until the server stops. It returns nil on
// graceful shutdown.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server", map[string]interface{}{
		"address": s.config.Address(),
	})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, waiting up to ShutdownTimeout for
// in-flight requests to complete.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
