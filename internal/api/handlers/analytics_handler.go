package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smartlink/internal/engine/analytics"
	"smartlink/internal/pkg/errors"
)

type AnalyticsHandler struct {
	Service *analytics.Service
	Links   *LinkHandler
}

func NewAnalyticsHandler(service *analytics.Service, linksHandler *LinkHandler) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service, Links: linksHandler}
}

func (h *AnalyticsHandler) GetLinkSummary(w http.ResponseWriter, r *http.Request) {
	link, ok := h.Links.ownedLink(w, r)
	if !ok {
		return
	}

	start, end := parseWindow(r)
	summary, err := h.Service.LinkSummary(link.ID, start, end)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *AnalyticsHandler) GetLinkClicks(w http.ResponseWriter, r *http.Request) {
	link, ok := h.Links.ownedLink(w, r)
	if !ok {
		return
	}

	start, end := parseWindow(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	clicks, err := h.Service.LinkClicks(link.ID, start, end, limit, offset)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return
	}
	if clicks == nil {
		clicks = []analytics.ClickRow{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"clicks": clicks})
}

func parseWindow(r *http.Request) (int64, int64) {
	start, _ := strconv.ParseInt(r.URL.Query().Get("start"), 10, 64)
	end, _ := strconv.ParseInt(r.URL.Query().Get("end"), 10, 64)
	return start, end
}
