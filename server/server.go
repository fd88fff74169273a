// SPDX-License-Identifier: MIT

// Package server exposes the solvers over HTTP with gin.
//
// Routes:
//
//	POST /v1/solve      solve one system, full step log
//	POST /v1/compare    run every method on the same system
//	POST /v1/dominance  diagonal-dominance report for A
//	GET  /v1/methods    method registry
//	GET  /healthz       liveness
//	GET  /metrics       Prometheus exposition
//
// Handlers hold no mutable state; the only shared state is the Prometheus
// collectors.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/linstep/config"
	"github.com/katalvlaran/linstep/solver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server wires the gin engine to the configured solver defaults.
type Server struct {
	cfg    config.ServerConfig
	log    *zap.Logger
	method solver.Method
	opts   []solver.Option
	engine *gin.Engine
}

// New validates cfg and builds the routes. A nil log is replaced by a no-op logger.
func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	m, err := cfg.Solver.Method()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg.Server,
		log:    log,
		method: m,
		opts:   cfg.Solver.Options(),
	}
	s.engine = s.routes()

	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), recovery(s.log), accessLog(s.log), limitBody(s.cfg.MaxBodyBytes))

	v1 := r.Group("/v1")
	v1.POST("/solve", s.HandleSolve)
	v1.POST("/compare", s.HandleCompare)
	v1.POST("/dominance", s.HandleDominance)
	v1.GET("/methods", s.HandleMethods)

	r.GET("/healthz", s.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
