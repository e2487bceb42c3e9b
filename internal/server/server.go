// Package server exposes the artifact renderer over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/stagehand/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server wires the gin router, metrics and logger together.
type Server struct {
	engine   *gin.Engine
	log      *logger.Logger
	metrics  *Metrics
	registry *prometheus.Registry
}

// New builds a Server with its own metrics registry.
func New(log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	gin.SetMode(gin.ReleaseMode)

	reg := prometheus.NewRegistry()
	s := &Server{
		engine:   gin.New(),
		log:      log,
		metrics:  NewMetrics(reg),
		registry: reg,
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery())
	r.Use(s.observe())

	r.GET("/health", healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.POST("/render", s.renderJSON)
	v1.GET("/render/:kind", s.renderText)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "route not found"})
	})
}

// observe records request metrics and writes one log line per request.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		latency := time.Since(start)

		s.metrics.RequestsTotal.WithLabelValues(status, route).Inc()
		s.metrics.RequestDuration.WithLabelValues(route).Observe(latency.Seconds())

		s.log.WithFields(map[string]any{
			"method":  c.Request.Method,
			"route":   route,
			"status":  c.Writer.Status(),
			"latency": latency.String(),
		}).Debug("request handled")
	}
}

func healthHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("render server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down render server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
