package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Header chain in priority order. Intermediary proxies stack these, and
// the first client-facing value has to win over anything a closer hop
// appended.
var headerChain = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
}

// FromRequest extracts the client IP for a request that may have passed
// through proxies or a CDN. Falls back to the connection's remote
// address, and to loopback when even that is unusable.
func FromRequest(r *http.Request) string {
	for _, h := range headerChain {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For is a comma list; the first entry is the
		// original client.
		if ip := normalize(strings.Split(v, ",")[0]); ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if ip := normalize(host); ip != "" {
			return ip
		}
	}
	if ip := normalize(r.RemoteAddr); ip != "" {
		return ip
	}

	return "127.0.0.1"
}

// IsPrivate reports whether the IP is loopback, link-local, RFC 1918 or
// otherwise non-routable. Those never reach the geolocation dataset.
func IsPrivate(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() ||
		parsed.IsPrivate() ||
		parsed.IsLinkLocalUnicast() ||
		parsed.IsLinkLocalMulticast() ||
		parsed.IsUnspecified()
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if net.ParseIP(v) != nil {
		return v
	}
	return ""
}
