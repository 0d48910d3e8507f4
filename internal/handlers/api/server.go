package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/services/auth"
	"github.com/KirkDiggler/sportsmeet/internal/services/cricket"
	"github.com/KirkDiggler/sportsmeet/internal/services/registry"
	"github.com/KirkDiggler/sportsmeet/internal/services/schedule"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server is the HTTP front end of the meet
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	resources  map[string]Resource
	config     *Config
}

// Config holds the configuration for the server
type Config struct {
	// Addr is the listen address, e.g. ":3001"
	Addr string

	// StaticDir optionally holds a built single-page app served for non-API paths
	StaticDir string

	// CORSOrigins lists allowed origins; "*" allows any
	CORSOrigins []string

	Registry registry.Service
	Scoring  scoring.Service
	Schedule schedule.Service
	Cricket  cricket.Service
	Auth     auth.Service
	Catalog  *catalog.Catalog
}

// New creates the server and mounts every resource
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry service cannot be nil")
	}
	if cfg.Scoring == nil {
		return nil, errors.New("scoring service cannot be nil")
	}
	if cfg.Schedule == nil {
		return nil, errors.New("schedule service cannot be nil")
	}
	if cfg.Cricket == nil {
		return nil, errors.New("cricket service cannot be nil")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth service cannot be nil")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	engine := gin.Default()
	engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	server := &Server{
		engine:    engine,
		resources: make(map[string]Resource),
		config:    cfg,
	}

	api := engine.Group("/api")
	guard := &Guard{auth: cfg.Auth}
	for _, resource := range []Resource{
		&loginResource{auth: cfg.Auth},
		&participantResource{registry: cfg.Registry, scoring: cfg.Scoring},
		&scoreResource{scoring: cfg.Scoring},
		&eventResource{schedule: cfg.Schedule},
		&cricketResource{cricket: cfg.Cricket},
		&catalogResource{catalog: cfg.Catalog},
	} {
		if err := server.RegisterResource(api, guard, resource); err != nil {
			return nil, err
		}
	}

	if cfg.StaticDir != "" {
		engine.NoRoute(spaHandler(cfg.StaticDir))
	} else {
		engine.NoRoute(notFound)
	}

	server.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, nil
}

// RegisterResource mounts a resource's routes under the API group
func (s *Server) RegisterResource(api *gin.RouterGroup, guard *Guard, resource Resource) error {
	name := resource.GetName()
	if _, exists := s.resources[name]; exists {
		return fmt.Errorf("resource %s already registered", name)
	}
	resource.Register(api, guard)
	s.resources[name] = resource
	log.Printf("Registered %s routes", name)
	return nil
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Stop is called
func (s *Server) Start() error {
	log.Printf("Sports meet API listening on %s", s.config.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Stop waits for in-flight requests to finish, up to ctx's deadline
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{skippedMatchesHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
