package main

import (
	"log"
	"time"

	zlog "github.com/rs/zerolog/log"

	"smartlink/internal/pkg/logger"
	"smartlink/internal/platform/config"
	"smartlink/internal/platform/database"
	"smartlink/internal/platform/repositories"
	"smartlink/internal/workers"

	"database/sql"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	zlog.Info().Msg("background workers starting")

	go runDailyStatsWorker(db)
	go runUsageResetWorker(repositories.NewAccountRepository(db))

	// Keep process alive
	select {}
}

// runDailyStatsWorker aggregates yesterday's clicks at 01:00 UTC daily.
func runDailyStatsWorker(db *sql.DB) {
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day()+1, 1, 0, 0, 0, time.UTC)
		duration := next.Sub(now)
		if duration < 0 {
			duration = time.Minute
		}

		zlog.Debug().Dur("sleep", duration).Msg("daily stats worker sleeping")
		time.Sleep(duration)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		if err := workers.AggregateDailyStats(db, yesterday); err != nil {
			zlog.Error().Err(err).Msg("daily stats aggregation failed")
		}
	}
}

// runUsageResetWorker zeroes usage counters on the first of each month.
func runUsageResetWorker(accounts *repositories.AccountRepository) {
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		time.Sleep(next.Sub(now))

		if err := workers.ResetMonthlyUsage(accounts); err != nil {
			zlog.Error().Err(err).Msg("monthly usage reset failed")
		}
	}
}
