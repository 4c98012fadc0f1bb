package workers

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"smartlink/internal/platform/repositories"
)

// AggregateDailyStats rolls one UTC day of clicks up into daily_stats,
// one row per link. Re-running for the same day replaces the rows, so
// the worker is safe to retry.
func AggregateDailyStats(db *sql.DB, day time.Time) error {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := dayStart.Unix()
	end := dayStart.Add(24 * time.Hour).Unix()
	date := dayStart.Format("2006-01-02")

	query := `
		INSERT OR REPLACE INTO daily_stats (link_id, date, clicks, deeplink_clicks, updated_at)
		SELECT
			link_id,
			? AS date,
			COUNT(*) AS clicks,
			SUM(CASE WHEN redirect_type != 'web_fallback' THEN 1 ELSE 0 END) AS deeplink_clicks,
			?
		FROM clicks
		WHERE created_at >= ? AND created_at < ?
		GROUP BY link_id
	`
	res, err := db.Exec(query, date, time.Now().Unix(), start, end)
	if err != nil {
		return err
	}

	rows, _ := res.RowsAffected()
	log.Info().Str("date", date).Int64("links", rows).Msg("daily stats aggregated")
	return nil
}

// ResetMonthlyUsage zeroes every account's usage counter at billing
// rollover.
func ResetMonthlyUsage(accounts *repositories.AccountRepository) error {
	n, err := accounts.ResetAllUsage()
	if err != nil {
		return err
	}
	log.Info().Int64("accounts", n).Msg("monthly usage counters reset")
	return nil
}
