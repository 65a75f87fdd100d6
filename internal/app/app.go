package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/vadea/vadea-backend/internal/adapter/postgres"
	cacherepo "github.com/vadea/vadea-backend/internal/adapter/postgres/aicache"
	"github.com/vadea/vadea-backend/internal/adapter/postgres/card"
	"github.com/vadea/vadea-backend/internal/adapter/postgres/deck"
	"github.com/vadea/vadea-backend/internal/adapter/postgres/session"
	"github.com/vadea/vadea-backend/internal/adapter/provider/anthropic"
	"github.com/vadea/vadea-backend/internal/aicache"
	"github.com/vadea/vadea-backend/internal/auth"
	"github.com/vadea/vadea-backend/internal/config"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/ratelimit"
	"github.com/vadea/vadea-backend/internal/service/advisor"
	"github.com/vadea/vadea-backend/internal/service/study"
	"github.com/vadea/vadea-backend/internal/transport/middleware"
	"github.com/vadea/vadea-backend/internal/transport/rest"
)

// Run is the application entry point. It wires configuration, storage,
// services and the HTTP server, then blocks until ctx is cancelled and the
// server has shut down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ai_enabled", cfg.AI.Enabled),
		slog.String("config_source", cfg.Source),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	txm := postgres.NewTxManager(pool)
	decks := deck.New(pool)
	cards := card.New(pool)
	sessions := session.New(pool)

	studySvc := study.NewService(logger, decks, cards, sessions, txm, clock, srsConfig(cfg.SRS))

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), clock, rest.HealthCheck{Name: "database", Check: pool.Ping}),
		Study:  rest.NewStudyHandler(studySvc, logger),
	}

	var cache *aicache.Cache
	if cfg.AI.Enabled {
		store, err := newCacheStore(cfg.AI, pool)
		if err != nil {
			return err
		}
		cache = aicache.New(store, clock, logger, aicache.Options{
			TTL:          cfg.AI.CacheTTL(),
			WriteTimeout: cfg.AI.CacheWriteTimeout,
		})

		aiLimiter := ratelimit.New(ratelimit.Config{
			MaxRequests: cfg.AI.RateLimitMax,
			Window:      cfg.AI.RateLimitWindow,
		}, clock)
		aiLimiter.StartCleanup(cfg.AI.RateLimitCleanupInterval)
		defer aiLimiter.Stop()

		gen := anthropic.New(anthropic.Config{
			APIKey:     cfg.AI.APIKey,
			BaseURL:    cfg.AI.BaseURL,
			Model:      cfg.AI.Model,
			MaxTokens:  cfg.AI.MaxTokens,
			Timeout:    cfg.AI.RequestTimeout,
			MaxRetries: cfg.AI.MaxRetries,
		}, logger)

		advisorSvc := advisor.NewService(logger, gen, aiLimiter, cache, decks, cards, studySvc, txm)
		handlers.Advisor = rest.NewAdvisorHandler(advisorSvc, logger)
	}

	apiLimiter := ratelimit.New(ratelimit.Config{
		MaxRequests: cfg.Server.RateLimitMax,
		Window:      cfg.Server.RateLimitWindow,
	}, clock)
	apiLimiter.StartCleanup(cfg.Server.RateLimitWindow)
	defer apiLimiter.Stop()

	validator := auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, clock)

	router := rest.NewRouter(handlers,
		middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		),
		middleware.Chain(
			middleware.Auth(validator),
			middleware.RateLimit(apiLimiter, clock),
		),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		if cache != nil {
			cache.Wait()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newCacheStore picks the AI cache backend.
func newCacheStore(cfg config.AIConfig, pool *pgxpool.Pool) (aicache.Store, error) {
	switch cfg.CacheBackend {
	case "memory":
		store, err := aicache.NewMemoryStore(cfg.CacheMemorySize)
		if err != nil {
			return nil, fmt.Errorf("create memory cache: %w", err)
		}
		return store, nil
	default:
		return cacherepo.New(pool), nil
	}
}

func srsConfig(c config.SRSConfig) domain.SRSConfig {
	return domain.SRSConfig{
		DefaultEaseFactor:    c.DefaultEaseFactor,
		MinEaseFactor:        c.MinEaseFactor,
		AgainEasePenalty:     c.AgainEasePenalty,
		HardEasePenalty:      c.HardEasePenalty,
		EasyEaseBonus:        c.EasyEaseBonus,
		AgainIntervalDays:    c.AgainIntervalDays,
		FirstIntervalDays:    c.FirstIntervalDays,
		SecondIntervalDays:   c.SecondIntervalDays,
		HardIntervalModifier: c.HardIntervalModifier,
		EasyBonus:            c.EasyBonus,
		MaxIntervalDays:      c.MaxIntervalDays,
		MatureIntervalDays:   c.MatureIntervalDays,
		NewCardsPerSession:   c.NewCardsPerSession,
		MaxReviewsPerSession: c.MaxReviewsPerSession,
		StaleSessionAfter:    c.StaleSessionAfter,
	}
}
