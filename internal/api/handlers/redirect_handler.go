package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	apiContext "smartlink/internal/api/context"
	"smartlink/internal/engine/links"
	"smartlink/internal/engine/platforms"
	"smartlink/internal/engine/redirect"
	"smartlink/internal/pkg/clientip"
	"smartlink/internal/pkg/errors"
	"smartlink/internal/pkg/parser"
)

// RedirectHandler serves GET /{platform}/{code}. It owns the whole
// latency budget of a redirect: validate, one point lookup, pure
// resolution, 307 out; click recording is enqueued and never waited on.
type RedirectHandler struct {
	Links    *links.Repository
	Cache    *redirect.LinkCache
	Recorder *redirect.Recorder

	// LookupTimeout bounds the link fetch; past it the handler answers
	// 500 instead of hanging into the client's redirect tolerance.
	LookupTimeout time.Duration
}

func NewRedirectHandler(repo *links.Repository, cache *redirect.LinkCache, recorder *redirect.Recorder, lookupTimeout time.Duration) *RedirectHandler {
	if lookupTimeout <= 0 {
		lookupTimeout = 2 * time.Second
	}
	return &RedirectHandler{
		Links:         repo,
		Cache:         cache,
		Recorder:      recorder,
		LookupTimeout: lookupTimeout,
	}
}

func (h *RedirectHandler) Handle(w http.ResponseWriter, r *http.Request) {
	params := r.Context().Value(apiContext.Params).(httprouter.Params)

	// 1. Validate the platform segment before anything touches the
	// data layer.
	platform, ok := platforms.Parse(params.ByName("platform"))
	if !ok {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput,
			"Unsupported platform", map[string]interface{}{"supported": platforms.All()})
		return
	}
	code := params.ByName("code")
	if code == "" {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Link not found", nil)
		return
	}

	// 2. Point lookup, cache first.
	link, cached := h.Cache.Get(platform, code)
	if !cached {
		ctx, cancel := context.WithTimeout(r.Context(), h.LookupTimeout)
		defer cancel()

		var err error
		link, err = h.Links.GetActiveByCode(ctx, platform, code)
		if err == links.ErrNotFound {
			errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Link not found", nil)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("platform", string(platform)).Str("code", code).Msg("link lookup failed")
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
			return
		}

		h.Cache.Set(link)
	}

	// 3+4. Classify the device and pick exactly one outbound URL.
	device := parser.ClassifyDevice(r.UserAgent())
	resolution := redirect.Resolve(link, device)

	// 5. Hand the click to the recorder; it finishes (or fails) on its
	// own time, after the response below.
	h.Recorder.Enqueue(redirect.Click{
		LinkID:       link.ID,
		AccountID:    link.AccountID,
		IP:           clientip.FromRequest(r),
		UserAgent:    r.UserAgent(),
		Referrer:     r.Referer(),
		DeviceType:   device.Type,
		RedirectType: resolution.Type,
		Timestamp:    time.Now().Unix(),
	})

	// 6. 307 keeps intermediaries from caching a device-dependent
	// decision.
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, resolution.OutboundURL, http.StatusTemporaryRedirect)
}
