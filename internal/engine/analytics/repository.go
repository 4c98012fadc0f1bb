package analytics

import (
	"database/sql"
)

// ClickRow is one redirect visit as exposed to the dashboard API.
type ClickRow struct {
	Timestamp    int64   `json:"timestamp"`
	CountryCode  *string `json:"country_code,omitempty"`
	DeviceType   string  `json:"device_type"`
	RedirectType string  `json:"redirect_type"`
	Referrer     *string `json:"referrer,omitempty"`
}

// Breakdown is a count per label (country, device, redirect type).
type Breakdown struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates a link's clicks over a time window.
type Summary struct {
	TotalClicks int         `json:"total_clicks"`
	ByCountry   []Breakdown `json:"by_country"`
	ByDevice    []Breakdown `json:"by_device"`
	ByRedirect  []Breakdown `json:"by_redirect_type"`
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetClicks(linkID string, start, end int64, limit, offset int) ([]ClickRow, error) {
	query := `
		SELECT created_at, country_code, device_type, redirect_type, referrer
		FROM clicks
		WHERE link_id = ? AND created_at >= ? AND created_at <= ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.Query(query, linkID, start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []ClickRow
	for rows.Next() {
		var c ClickRow
		var country, referrer sql.NullString
		if err := rows.Scan(&c.Timestamp, &country, &c.DeviceType, &c.RedirectType, &referrer); err != nil {
			return nil, err
		}
		if country.Valid {
			c.CountryCode = &country.String
		}
		if referrer.Valid {
			c.Referrer = &referrer.String
		}
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}

func (r *Repository) CountClicks(linkID string, start, end int64) (int, error) {
	var n int
	query := "SELECT COUNT(*) FROM clicks WHERE link_id = ? AND created_at >= ? AND created_at <= ?"
	err := r.db.QueryRow(query, linkID, start, end).Scan(&n)
	return n, err
}

func (r *Repository) BreakdownBy(column, linkID string, start, end int64, limit int) ([]Breakdown, error) {
	// column comes from a fixed whitelist in the service, never from
	// user input.
	query := `
		SELECT COALESCE(` + column + `, 'unknown') AS label, COUNT(*) AS cnt
		FROM clicks
		WHERE link_id = ? AND created_at >= ? AND created_at <= ?
		GROUP BY label
		ORDER BY cnt DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, linkID, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Breakdown
	for rows.Next() {
		var b Breakdown
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
