package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/clock"
	"github.com/KirkDiggler/sportsmeet/internal/common/uuid"
	"github.com/KirkDiggler/sportsmeet/internal/config"
	"github.com/KirkDiggler/sportsmeet/internal/handlers/api"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
	eventRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/event"
	matchRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/match"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	teamScoreRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/teamscore"
	"github.com/KirkDiggler/sportsmeet/internal/services/auth"
	"github.com/KirkDiggler/sportsmeet/internal/services/cricket"
	"github.com/KirkDiggler/sportsmeet/internal/services/registry"
	"github.com/KirkDiggler/sportsmeet/internal/services/schedule"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

func main() {
	// A missing .env is fine; the process environment still applies
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flagSet := pflag.NewFlagSet("sportsmeet", pflag.ContinueOnError)
	cfg.AddFlags(flagSet)
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.JWTSecret == "change-me" {
		log.Println("WARNING: JWT_SECRET is not set, tokens are signed with the development secret")
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, err := newStore(&cfg)
	if err != nil {
		log.Fatalf("Failed to create %s document store: %v", cfg.StoreBackend, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize repositories
	participants, err := participantRepo.NewCollection(ctx, &participantRepo.Config{Store: store})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	teamScores, err := teamScoreRepo.NewCollection(ctx, &teamScoreRepo.Config{Store: store})
	if err != nil {
		log.Fatalf("Failed to create team score repository: %v", err)
	}

	events, err := eventRepo.NewCollection(ctx, &eventRepo.Config{Store: store})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	matches, err := matchRepo.NewCollection(ctx, &matchRepo.Config{
		Store: store,
		Seed:  cat.SeedMatches(),
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	// Registry and scoring both write participants
	writeLock := &sync.Mutex{}

	scoringSvc, err := scoring.New(&scoring.Config{
		ParticipantRepo: participants,
		TeamScoreRepo:   teamScores,
		Catalog:         cat,
		WriteLock:       writeLock,
	})
	if err != nil {
		log.Fatalf("Failed to create scoring service: %v", err)
	}

	registrySvc, err := registry.New(&registry.Config{
		ParticipantRepo: participants,
		Scoring:         scoringSvc,
		Catalog:         cat,
		WriteLock:       writeLock,
	})
	if err != nil {
		log.Fatalf("Failed to create registry service: %v", err)
	}

	scheduleSvc, err := schedule.New(&schedule.Config{
		EventRepo: events,
		Catalog:   cat,
		Clock:     clock.New(cfg.VenueLocation),
		Location:  cfg.VenueLocation,
	})
	if err != nil {
		log.Fatalf("Failed to create schedule service: %v", err)
	}

	cricketSvc, err := cricket.New(&cricket.Config{MatchRepo: matches})
	if err != nil {
		log.Fatalf("Failed to create cricket service: %v", err)
	}

	authSvc, err := auth.New(&auth.Config{
		Accounts: cat.Accounts,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
		Clock:    clock.New(cfg.VenueLocation),
		UUID:     uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Team totals may be stale if the store was edited by hand
	rebuilt, err := scoringSvc.Rebuild(ctx)
	if err != nil {
		log.Fatalf("Failed to rebuild team scores: %v", err)
	}
	log.Printf("Rebuilt scores for %d teams", len(rebuilt.TeamScores))

	server, err := api.New(&api.Config{
		Addr:        cfg.HTTPAddr,
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
		Registry:    registrySvc,
		Scoring:     scoringSvc,
		Schedule:    scheduleSvc,
		Cricket:     cricketSvc,
		Auth:        authSvc,
		Catalog:     cat,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}

	log.Println("Server has been shut down")
}

func newStore(cfg *config.Config) (document.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return document.NewRedis(&document.RedisConfig{
			RedisClient: redisClient,
			KeyPrefix:   cfg.RedisKeyPrefix,
		})
	case config.StoreMemory:
		return document.NewMemory(), nil
	default:
		return document.NewFile(&document.FileConfig{Dir: cfg.DataDir})
	}
}
