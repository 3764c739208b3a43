package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/config"
	"github.com/nexuscv/ats-refinery/internal/db"
	"github.com/nexuscv/ats-refinery/internal/fetch"
	"github.com/nexuscv/ats-refinery/internal/refine"
	"github.com/nexuscv/ats-refinery/internal/server/middleware"
)

// Server is the HTTP API surface over the scoring and refinement engine.
// The database is optional; without one the API serves anonymously and
// skips persistence.
type Server struct {
	catalog    *catalog.Catalog
	engine     *refine.Engine
	db         *db.DB
	log        *zap.Logger
	httpServer *http.Server
	useBrowser bool
}

// New builds a Server from resolved configuration. It connects to the
// database when a URL is configured and ensures the schema exists.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var cat *catalog.Catalog
	var err error
	if cfg.JobRoles != "" || cfg.CareerPaths != "" {
		cat, err = catalog.Load(cfg.JobRoles, cfg.CareerPaths)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	s := &Server{
		catalog:    cat,
		engine:     refine.NewEngine(cat, log),
		log:        log,
		useBrowser: cfg.UseBrowser,
	}

	mux := http.NewServeMux()

	var authMiddleware func(http.Handler) http.Handler
	var optionalAuth func(http.Handler) http.Handler

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		s.db = database

		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			database.Close()
			return nil, err
		}
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			database.Close()
			return nil, err
		}

		jwtService := NewJWTService(jwtConfig)
		userService := NewUserService(database, passwordConfig)
		authHandler := NewAuthHandler(userService, jwtService)

		validator := jwtService.AsTokenValidator()
		authMiddleware = middleware.Auth(validator)
		optionalAuth = middleware.OptionalAuth(validator)

		mux.HandleFunc("POST /auth/register", authHandler.Register)
		mux.HandleFunc("POST /auth/login", authHandler.Login)
		mux.Handle("GET /users/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	} else {
		log.Info("no database configured, running without auth or persistence")
	}

	withOptional := func(h http.HandlerFunc) http.Handler {
		if optionalAuth == nil {
			return h
		}
		return optionalAuth(h)
	}

	mux.Handle("POST /score", withOptional(s.handleScore))
	mux.Handle("POST /refine", withOptional(s.handleRefine))
	mux.Handle("POST /analyze", withOptional(s.handleAnalyze))
	mux.HandleFunc("POST /jd-match", s.handleJDMatch)
	mux.HandleFunc("GET /health", s.handleHealth)

	if authMiddleware != nil {
		mux.Handle("GET /history", authMiddleware(http.HandlerFunc(s.handleHistory)))
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start listens for requests until an interrupt or SIGTERM, then shuts
// down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// Handler exposes the routed handler stack, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) fetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = s.useBrowser
	return opts
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error JSON response.
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
