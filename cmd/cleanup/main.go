// Command cleanup purges expired AI cache rows and abandons review sessions
// left ACTIVE longer than srs.stale_session_after. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vadea/vadea-backend/internal/adapter/postgres"
	cacherepo "github.com/vadea/vadea-backend/internal/adapter/postgres/aicache"
	"github.com/vadea/vadea-backend/internal/adapter/postgres/session"
	"github.com/vadea/vadea-backend/internal/app"
	"github.com/vadea/vadea-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()
	failed := false

	purged, err := cacherepo.New(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("purge ai cache failed", slog.String("error", err.Error()))
		failed = true
	} else {
		logger.Info("ai cache purged", slog.Int64("deleted", purged))
	}

	threshold := now.Add(-cfg.SRS.StaleSessionAfter)
	abandoned, err := session.New(pool).AbandonStale(ctx, threshold, now)
	if err != nil {
		logger.Error("abandon stale sessions failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		failed = true
	} else {
		logger.Info("stale sessions abandoned",
			slog.Int64("abandoned", abandoned),
			slog.Time("threshold", threshold),
		)
	}

	if failed {
		pool.Close()
		os.Exit(1)
	}
}
