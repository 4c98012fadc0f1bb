package handlers

import (
	"fmt"
	"net/http"

	"smartlink/internal/engine/redirect"
)

// MetricsHandler exposes recorder counters in the plaintext exposition
// format so a scraper can watch the click queue.
type MetricsHandler struct {
	Recorder *redirect.Recorder
}

func NewMetricsHandler(recorder *redirect.Recorder) *MetricsHandler {
	return &MetricsHandler{Recorder: recorder}
}

func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	stats := h.Recorder.Stats()

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "# HELP smartlink_clicks_enqueued_total Clicks accepted onto the recorder queue\n")
	fmt.Fprintf(w, "# TYPE smartlink_clicks_enqueued_total counter\n")
	fmt.Fprintf(w, "smartlink_clicks_enqueued_total %d\n", stats.Enqueued)
	fmt.Fprintf(w, "# HELP smartlink_clicks_dropped_total Clicks dropped because the queue was full\n")
	fmt.Fprintf(w, "# TYPE smartlink_clicks_dropped_total counter\n")
	fmt.Fprintf(w, "smartlink_clicks_dropped_total %d\n", stats.Dropped)
	fmt.Fprintf(w, "# HELP smartlink_clicks_processed_total Clicks persisted by the worker pool\n")
	fmt.Fprintf(w, "# TYPE smartlink_clicks_processed_total counter\n")
	fmt.Fprintf(w, "smartlink_clicks_processed_total %d\n", stats.Processed)
	fmt.Fprintf(w, "# HELP smartlink_clicks_failed_total Click writes that failed\n")
	fmt.Fprintf(w, "# TYPE smartlink_clicks_failed_total counter\n")
	fmt.Fprintf(w, "smartlink_clicks_failed_total %d\n", stats.Failed)
	fmt.Fprintf(w, "# HELP smartlink_click_queue_depth Clicks currently waiting in the queue\n")
	fmt.Fprintf(w, "# TYPE smartlink_click_queue_depth gauge\n")
	fmt.Fprintf(w, "smartlink_click_queue_depth %d\n", stats.QueueDepth)
}
