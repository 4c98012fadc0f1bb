package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	apiContext "smartlink/internal/api/context"
	"smartlink/internal/pkg/errors"
	"smartlink/internal/platform/repositories"
)

// APIKeyMiddleware guards the management API. Keys arrive as
// `Authorization: Bearer sk_...` and are matched by sha256 hash; the
// owning account id lands in the request context.
type APIKeyMiddleware struct {
	keys *repositories.APIKeyRepository
}

func NewAPIKeyMiddleware(keys *repositories.APIKeyRepository) *APIKeyMiddleware {
	return &APIKeyMiddleware{keys: keys}
}

func (m *APIKeyMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Missing API key", nil)
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Missing API key", nil)
			return
		}

		key, err := m.keys.GetByHash(repositories.HashKey(raw))
		if err != nil {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Invalid API key", nil)
			return
		}
		if !key.Usable(time.Now().Unix()) {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "API key revoked or expired", nil)
			return
		}

		// Best effort; a failed bookkeeping write must not block the call.
		_ = m.keys.UpdateLastUsed(key.ID)

		ctx := context.WithValue(r.Context(), apiContext.Account, key.AccountID)
		next(w, r.WithContext(ctx))
	}
}

// AccountID pulls the authenticated account out of the context.
func AccountID(r *http.Request) string {
	id, _ := r.Context().Value(apiContext.Account).(string)
	return id
}
