package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/stemify/apiserver/config"
	"github.com/stemify/apiserver/internal/db"
	"github.com/stemify/apiserver/internal/handlers"
	"github.com/stemify/apiserver/internal/services"
	"github.com/stemify/apiserver/internal/store"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	logger     *zap.Logger
}

// New constructs a Server connected to the hosted store.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	logger, err := newLogger(cfg.Env)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	userService := services.NewUserService(userRepo)

	router := newRouter(cfg, userService, logger)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		logger:     logger,
	}, nil
}

// newRouter assembles the middleware stack and routes. The CORS policy is
// one of two configured alternatives: the wildcard shell that stamps
// permissive headers on every response and short-circuits preflights, or
// an origin allowlist delegated to the cors middleware.
func newRouter(cfg config.Config, userService *services.UserService, logger *zap.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		requestLogger(logger),
		middleware.Timeout(60*time.Second),
	)

	switch cfg.CORSMode {
	case config.CORSModeAllowlist:
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "x-admin-key"},
			MaxAge:         300,
		}))
	default:
		router.Use(wildcardCORS)
	}

	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.NotFound)

	router.Get("/", handlers.Index)
	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, userService, cfg.JWTSecret)
	router.Route("/admin", func(r chi.Router) {
		handlers.AdminRouter(r, userService, cfg.AdminKey)
	})

	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return s.httpServer.Close()
}
