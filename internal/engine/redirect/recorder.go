package redirect

import (
	"database/sql"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"smartlink/internal/engine/quota"
	"smartlink/internal/pkg/clientip"
	"smartlink/internal/pkg/geoip"
	"smartlink/internal/pkg/parser"
)

// Click is everything the recorder needs, captured by value before the
// HTTP response goes out so nothing holds onto the request.
type Click struct {
	LinkID       string
	AccountID    string
	IP           string
	UserAgent    string
	Referrer     string
	DeviceType   parser.DeviceType
	RedirectType RedirectType
	Timestamp    int64
}

// Recorder persists click events off the request path. Handlers enqueue
// onto a bounded channel and return immediately; a fixed worker pool
// drains it. Overflow drops the click and counts the drop rather than
// ever stalling a redirect.
type Recorder struct {
	db   *sql.DB
	gate quota.Gate
	geo  geoip.Resolver

	queue chan Click
	wg    sync.WaitGroup

	enqueued  atomic.Uint64
	dropped   atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
}

// RecorderStats is a point-in-time snapshot for the metrics endpoint.
type RecorderStats struct {
	Enqueued   uint64
	Dropped    uint64
	Processed  uint64
	Failed     uint64
	QueueDepth int
}

func NewRecorder(db *sql.DB, gate quota.Gate, geo geoip.Resolver, queueSize, workers int) *Recorder {
	if queueSize <= 0 {
		queueSize = 4096
	}
	if workers <= 0 {
		workers = 4
	}

	r := &Recorder{
		db:    db,
		gate:  gate,
		geo:   geo,
		queue: make(chan Click, queueSize),
	}

	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Enqueue hands a click to the worker pool without blocking. Returns
// false when the queue is full and the click was dropped.
func (r *Recorder) Enqueue(c Click) bool {
	select {
	case r.queue <- c:
		r.enqueued.Add(1)
		return true
	default:
		r.dropped.Add(1)
		log.Warn().Str("link_id", c.LinkID).Msg("click queue full, dropping click")
		return false
	}
}

// Stop closes the queue and waits for in-flight clicks to finish.
// Pending jobs run to completion; they were already acknowledged to the
// client.
func (r *Recorder) Stop() {
	close(r.queue)
	r.wg.Wait()
}

func (r *Recorder) Stats() RecorderStats {
	return RecorderStats{
		Enqueued:   r.enqueued.Load(),
		Dropped:    r.dropped.Load(),
		Processed:  r.processed.Load(),
		Failed:     r.failed.Load(),
		QueueDepth: len(r.queue),
	}
}

func (r *Recorder) worker() {
	defer r.wg.Done()
	for c := range r.queue {
		r.process(c)
	}
}

// process runs one click end to end. Every failure here is logged and
// swallowed; the redirect response this click belongs to is long gone.
func (r *Recorder) process(c Click) {
	defer func() {
		if rec := recover(); rec != nil {
			r.failed.Add(1)
			log.Error().Interface("panic", rec).Str("link_id", c.LinkID).Msg("recovered panic in click recorder")
		}
	}()

	// Country enrichment is best effort; private and loopback ranges
	// never reach the dataset.
	var country sql.NullString
	if c.IP != "" && !clientip.IsPrivate(c.IP) {
		if code, ok := r.geo.Country(c.IP); ok {
			country = sql.NullString{String: code, Valid: true}
		}
	}

	// The gate is consulted once per click; a gate failure denies
	// billing but never suppresses the analytics row.
	allowed, err := r.gate.MayRecordBillableClick(c.AccountID)
	if err != nil {
		allowed = false
		log.Error().Err(err).Str("account_id", c.AccountID).Msg("quota check failed")
	}

	query := `
		INSERT INTO clicks (
			id, link_id, ip_address, user_agent, referrer,
			country_code, device_type, redirect_type, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		uuid.New().String(),
		c.LinkID,
		nullIfEmpty(c.IP),
		nullIfEmpty(c.UserAgent),
		nullIfEmpty(c.Referrer),
		country,
		string(c.DeviceType),
		string(c.RedirectType),
		c.Timestamp,
	)
	if err != nil {
		r.failed.Add(1)
		log.Error().Err(err).Str("link_id", c.LinkID).Msg("failed to insert click")
	} else {
		r.processed.Add(1)
	}

	if allowed {
		if err := r.gate.IncrementUsage(c.AccountID); err != nil {
			log.Error().Err(err).Str("account_id", c.AccountID).Msg("failed to increment usage")
		}
	}
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
