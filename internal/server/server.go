// Package server serves the question page and a small JSON API over the loaded graph.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ersonp/kural-core/internal/application/handlers"
	"github.com/ersonp/kural-core/internal/infrastructure/logger"
)

//go:embed templates/index.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// User facing messages.
const (
	MsgNoMatch       = "Sorry, I couldn't find a clear answer for that in my knowledge base."
	MsgEmptyQuestion = "Please enter a question first."
)

// Config holds everything the server needs. The graph behind Query is loaded once
// before the server starts and never changes afterwards.
type Config struct {
	Query     *handlers.QueryHandler
	GraphPath string
	LoadErr   error // non-nil when the graph failed to load; the page reports it
	Logger    *logger.Logger
	Metrics   *Metrics
}

// Server answers questions over HTTP.
type Server struct {
	query     *handlers.QueryHandler
	graphPath string
	loadErr   error
	log       *logger.Logger
	metrics   *Metrics
	page      *template.Template
}

// New creates a server from cfg.
func New(cfg Config) (*Server, error) {
	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	if cfg.Query != nil {
		metrics.GraphEntries.Set(float64(len(cfg.Query.Entries(""))))
	}

	return &Server{
		query:     cfg.Query,
		graphPath: cfg.GraphPath,
		loadErr:   cfg.LoadErr,
		log:       log.With("component", "server"),
		metrics:   metrics,
		page:      page,
	}, nil
}

// Router builds the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(s.log))
	r.Use(CountRequests(s.metrics))
	r.Use(Recover(s.log)) // innermost: the logger and counter see the 500
	r.SetHTMLTemplate(s.page)

	r.GET("/", s.Index)
	r.POST("/ask", s.Ask)
	r.GET("/api/answer", s.Answer)
	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
