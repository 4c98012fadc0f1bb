package deeplink

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"smartlink/internal/engine/platforms"
)

// URIs is the synthesized redirect target set for one link. Android and
// IOS fall back to the plain destination when no deep link could be
// extracted, so all three fields are always non-empty.
type URIs struct {
	Android     string
	IOS         string
	WebFallback string
}

var (
	youtubeIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)
	tiktokIDRe  = regexp.MustCompile(`^[0-9]{6,}$`)
	asinRe      = regexp.MustCompile(`^[A-Z0-9]{10}$`)
)

// Synthesize builds the per-device URI set for a destination URL that
// was already classified into a platform. Extraction failures are not
// errors: both app URIs degrade to the destination verbatim so the
// redirect always has somewhere to go. Pure function, safe to call at
// link-creation time and cache on the row.
func Synthesize(dest string, p platforms.Platform) URIs {
	fallback := URIs{Android: dest, IOS: dest, WebFallback: dest}

	def, ok := platforms.Lookup(p)
	if !ok {
		return fallback
	}

	u, err := url.Parse(dest)
	if err != nil || u.Host == "" {
		return fallback
	}

	id, ok := extract(u, p)
	if !ok {
		return fallback
	}

	return URIs{
		Android:     fmt.Sprintf(def.AndroidTemplate, id),
		IOS:         fmt.Sprintf(def.IOSTemplate, id),
		WebFallback: dest,
	}
}

// extract pulls the platform-specific content id out of a parsed
// destination URL. The second return is false when the expected marker
// is absent.
func extract(u *url.URL, p platforms.Platform) (string, bool) {
	switch p {
	case platforms.YouTube:
		return extractYouTubeID(u)
	case platforms.Instagram:
		return extractInstagramCode(u)
	case platforms.Facebook:
		// The Facebook app opens arbitrary pages through its modal
		// wrapper, so the "id" is the whole destination URL.
		return url.QueryEscape(u.String()), true
	case platforms.TikTok:
		return extractTikTokID(u)
	case platforms.Maps:
		return extractMapsQuery(u)
	case platforms.Amazon:
		return extractASIN(u)
	}
	return "", false
}

func extractYouTubeID(u *url.URL) (string, bool) {
	if v := u.Query().Get("v"); youtubeIDRe.MatchString(v) {
		return v, true
	}

	segs := pathSegments(u)
	host := strings.ToLower(u.Hostname())
	if (host == "youtu.be" || strings.HasSuffix(host, ".youtu.be")) && len(segs) >= 1 {
		if youtubeIDRe.MatchString(segs[0]) {
			return segs[0], true
		}
	}
	// /shorts/{id}, /embed/{id}, /live/{id}
	if len(segs) >= 2 {
		switch segs[0] {
		case "shorts", "embed", "live":
			if youtubeIDRe.MatchString(segs[1]) {
				return segs[1], true
			}
		}
	}
	return "", false
}

func extractInstagramCode(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) < 2 {
		return "", false
	}
	switch segs[0] {
	case "p", "reel", "reels", "tv":
		return segs[1], true
	}
	return "", false
}

func extractTikTokID(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	for i, seg := range segs {
		if seg == "video" && i+1 < len(segs) && tiktokIDRe.MatchString(segs[i+1]) {
			return segs[i+1], true
		}
	}
	return "", false
}

func extractMapsQuery(u *url.URL) (string, bool) {
	if q := u.Query().Get("q"); q != "" {
		return url.QueryEscape(q), true
	}

	segs := pathSegments(u)
	// /maps/place/{name}/..., /maps/search/{query}/...
	for i, seg := range segs {
		if (seg == "place" || seg == "search") && i+1 < len(segs) {
			return url.QueryEscape(segs[i+1]), true
		}
	}
	return "", false
}

func extractASIN(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	for i, seg := range segs {
		switch seg {
		case "dp":
			if i+1 < len(segs) && asinRe.MatchString(segs[i+1]) {
				return segs[i+1], true
			}
		case "gp":
			if i+2 < len(segs) && segs[i+1] == "product" && asinRe.MatchString(segs[i+2]) {
				return segs[i+2], true
			}
		}
	}
	return "", false
}

func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.EscapedPath(), "/")
	if trimmed == "" {
		return nil
	}
	segs := strings.Split(trimmed, "/")
	out := segs[:0]
	for _, s := range segs {
		if dec, err := url.PathUnescape(s); err == nil {
			s = dec
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
