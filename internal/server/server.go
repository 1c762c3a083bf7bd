// Package server exposes the ticket tool over HTTP: the embedded editor
// shell, a handful of JSON endpoints passing through to the order backend,
// and the printable ticket page. All rendering semantics live in
// pkg/ticket; this layer only wires transport around them.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rdawsonsdp/appsheet/internal/templatestore"
	"github.com/rdawsonsdp/appsheet/pkg/order"
	"github.com/rdawsonsdp/appsheet/pkg/ticket"
)

// OrdersSource is the slice of the backend client the server consumes.
type OrdersSource interface {
	FindRows(ctx context.Context, table string) ([]order.Record, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithOrdersSource wires the backend client and the table to read. A nil
// source leaves the server running on the built-in sample order.
func WithOrdersSource(src OrdersSource, table string) Option {
	return func(s *Server) {
		s.source = src
		s.table = table
	}
}

// WithStore sets the template store.
func WithStore(store templatestore.Store) Option {
	return func(s *Server) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRenderer sets the ticket renderer.
func WithRenderer(r *ticket.Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithAllowedOrigins sets the CORS origin allowlist.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// Server is the HTTP surface. It satisfies http.Handler.
type Server struct {
	log      *zap.Logger
	source   OrdersSource
	table    string
	store    templatestore.Store
	renderer *ticket.Renderer
	engine   *shellEngine
	origins  []string
	router   chi.Router
}

// New constructs a Server applying any provided options.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		log:      zap.NewNop(),
		store:    templatestore.NewMemory(),
		renderer: ticket.NewRenderer(),
		origins:  []string{"*"},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}

	engine, err := newShellEngine(templatesFS())
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.engine = engine
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleShell)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS()))))
	r.Get("/healthz", s.handleHealth)
	r.Get("/print", s.handlePrint)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", s.handleOrders)
		r.Get("/fields", s.handleFields)
		r.Get("/template", s.handleGetTemplate)
		r.Put("/template", s.handleSaveTemplate)
		r.Delete("/template", s.handleClearTemplate)
		r.Post("/preview", s.handlePreview)
	})
	return r
}

// ServeHTTP delegates to the configured router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

// fetchOrders returns the backend's rows, substituting the built-in sample
// whenever the backend is missing, failing, or empty. The rendering path
// never sees an upstream failure.
func (s *Server) fetchOrders(ctx context.Context) []order.Record {
	if s.source == nil {
		return []order.Record{order.FallbackSample()}
	}
	records, err := s.source.FindRows(ctx, s.table)
	if err != nil {
		s.log.Warn("order fetch failed, using sample", zap.Error(err))
		return []order.Record{order.FallbackSample()}
	}
	if len(records) == 0 {
		return []order.Record{order.FallbackSample()}
	}
	return records
}

// activeTemplate returns the stored override or the built-in default.
func (s *Server) activeTemplate() (string, bool) {
	value, ok, err := s.store.Load()
	if err != nil {
		s.log.Warn("template load failed, using default", zap.Error(err))
		return ticket.DefaultTemplate, false
	}
	if !ok {
		return ticket.DefaultTemplate, false
	}
	return value, true
}
