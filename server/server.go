package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/skillsenselab/webtest/errors"
	"github.com/skillsenselab/webtest/logger"
	"github.com/skillsenselab/webtest/server/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Server is an in-process HTTP server for tests, backed by Gin with optional
// support for additional http.Handler mounts on the same port.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	mux        *http.ServeMux
	config     Config
	log        *logger.Logger
	addr       *net.TCPAddr
}

// New creates a new Server with a fresh Gin engine mounted at "/".
// Register routes via GinEngine before calling Start.
func New(cfg Config, log *logger.Logger) *Server {
	engine := gin.New()
	s := newServer(cfg, log, engine)
	s.engine = engine
	return s
}

// NewWithHandler creates a new Server that serves the given application
// handler instead of a Gin engine. A *gin.Engine also satisfies http.Handler,
// so either works.
func NewWithHandler(cfg Config, log *logger.Logger, handler http.Handler) *Server {
	if engine, ok := handler.(*gin.Engine); ok {
		s := newServer(cfg, log, engine)
		s.engine = engine
		return s
	}
	return newServer(cfg, log, handler)
}

func newServer(cfg Config, log *logger.Logger, handler http.Handler) *Server {
	cfg.ApplyDefaults()

	mux := http.NewServeMux()
	mux.Handle("/", handler)

	var root http.Handler = mux
	if cfg.H2C {
		h2s := &http2.Server{
			MaxConcurrentStreams: 250,
			IdleTimeout:          120 * time.Second,
		}
		root = h2c.NewHandler(mux, h2s)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      root,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		mux:        mux,
		config:     cfg,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
// It is nil when the server was created from a non-Gin handler.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handle mounts an http.Handler at the given pattern on the root ServeMux.
// The pattern must include a trailing slash for subtree matches.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
	s.log.Debug("Handler mounted", map[string]interface{}{
		"pattern": pattern,
	})
}

// Start binds the listener and begins serving. It returns once the listener
// is bound so the caller knows the resolved address; serving continues in a
// goroutine until Stop.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.BindFailed(s.httpServer.Addr, err)
	}
	s.addr = listener.Addr().(*net.TCPAddr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.WithError(errors.ServeFailed(err)).Error("Server error", map[string]interface{}{
				logger.FieldAddr: s.addr.String(),
			})
		}
	}()

	s.log.Info("Test server started", map[string]interface{}{
		logger.FieldAddr: s.addr.String(),
	})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s.addr == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.WithError(err).Error("Server shutdown error")
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("Test server shut down")
	return nil
}

// Addr returns the resolved listen address, nil before Start.
func (s *Server) Addr() *net.TCPAddr {
	return s.addr
}

// BaseURL returns "http://<resolved-ip>:<resolved-port>", empty before Start.
func (s *Server) BaseURL() string {
	if s.addr == nil {
		return ""
	}
	return fmt.Sprintf("http://%s", s.addr)
}

// ApplyMiddleware applies the standard middleware stack to the server's Gin
// engine: recovery, request-ID, and request logging. No-op for non-Gin servers.
func (s *Server) ApplyMiddleware() {
	if s.engine == nil {
		return
	}
	s.engine.Use(middleware.Recovery(s.log))
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.RequestLogger(s.log))
}
