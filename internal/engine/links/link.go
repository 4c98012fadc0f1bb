package links

import (
	"errors"

	"smartlink/internal/engine/platforms"
)

// ErrNotFound covers both an unknown (platform, short_code) pair and a
// deactivated or soft-deleted link; callers map it to HTTP 404.
var ErrNotFound = errors.New("link not found")

// ErrUnsupportedDestination means the destination URL matched none of
// the supported platforms.
var ErrUnsupportedDestination = errors.New("destination url matches no supported platform")

// Link is one short-code registration. AndroidURI and IOSURI are the
// deep links synthesized at creation time; nil means synthesis degraded
// and the resolver must fall back to DestinationURL for that OS.
type Link struct {
	ID             string             `json:"id"`
	AccountID      string             `json:"account_id"`
	DestinationURL string             `json:"destination_url"`
	AndroidURI     *string            `json:"android_uri,omitempty"`
	IOSURI         *string            `json:"ios_uri,omitempty"`
	Platform       platforms.Platform `json:"platform"`
	ShortCode      string             `json:"short_code"`
	IsActive       bool               `json:"is_active"`
	DeletedAt      *int64             `json:"deleted_at,omitempty"`
	CreatedAt      int64              `json:"created_at"`
	UpdatedAt      int64              `json:"updated_at"`
}

// Resolvable reports whether the row may serve redirects.
func (l *Link) Resolvable() bool {
	return l.IsActive && l.DeletedAt == nil
}
