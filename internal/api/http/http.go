package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/oqrlabs/revenue-manager/internal/apisrv/dashboard"
	"github.com/oqrlabs/revenue-manager/internal/middleware"
	"github.com/oqrlabs/revenue-manager/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// RequestsPerMinute caps uncached report requests per client address.
	// Zero disables the limiter.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	limiter *ratelimit.Limiter
	done    chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router(ds *dashboard.Server) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{http.MethodHead, http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	if s.c.RequestsPerMinute > 0 {
		s.limiter = ratelimit.NewLimiter(time.Minute, s.c.RequestsPerMinute)
		r.Use(s.limiter.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/overview", s.getOverview(ds))
		r.Get("/filters", s.getFilterOptions(ds))
	})

	return r
}

// Start starts the http server serving the dashboard API.
func (s *Server) Start(ctx context.Context, ds *dashboard.Server) error {
	addr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              addr,
		Handler:           s.router(ds),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening",
			slog.String("addr", addr),
		)
		if err := s.hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().Error("http server exited",
				slog.String("err", err.Error()),
			)
		}
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.hs == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.hs.Shutdown(shutdownCtx); err != nil {
		slog.Default().Error("http server shutdown",
			slog.String("err", err.Error()),
		)
	}
}
