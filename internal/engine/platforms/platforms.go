package platforms

import (
	"net/url"
	"strings"
)

// Platform is the closed set of destination services a link can be
// classified into. The zero value is not a valid platform.
type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	TikTok    Platform = "tiktok"
	Maps      Platform = "maps"
	Amazon    Platform = "amazon"
)

// hostRule matches a hostname (exact or subdomain) with an optional
// required path prefix. The prefix matters for shared hosts like
// google.com, where only /maps belongs to us.
type hostRule struct {
	host       string
	pathPrefix string
}

// Definition is one row of the platform table: how to recognize a
// destination URL, how to build app URIs from it, and which user-agent
// substrings suggest the app is on the device.
type Definition struct {
	Tag Platform

	// Ordered host rules, includes region-specific short-link domains.
	Hosts []hostRule

	// Deep-link URI templates; %s is replaced with the extracted
	// content id (video id, post code, ASIN, search query).
	AndroidTemplate string
	IOSTemplate     string

	// Lowercase substrings of a user-agent that suggest the app (or a
	// co-bundled webview wrapper) is installed on the device.
	AppSignatures []string

	// AlwaysInstalled short-circuits the heuristic for platforms whose
	// deep link degrades gracefully on every device (geo: URIs).
	AlwaysInstalled bool
}

// definitions is ordered; Classify takes the first match.
var definitions = []Definition{
	{
		Tag: YouTube,
		Hosts: []hostRule{
			{host: "youtube.com"},
			{host: "youtu.be"},
			{host: "youtube-nocookie.com"},
		},
		AndroidTemplate: "vnd.youtube:%s",
		IOSTemplate:     "youtube://watch?v=%s",
		AppSignatures:   []string{"com.google.android.youtube", "youtube/"},
	},
	{
		Tag: Instagram,
		Hosts: []hostRule{
			{host: "instagram.com"},
			{host: "instagr.am"},
		},
		AndroidTemplate: "instagram://media?id=%s",
		IOSTemplate:     "instagram://media?id=%s",
		AppSignatures:   []string{"instagram", "fbav", "fban"},
	},
	{
		Tag: Facebook,
		Hosts: []hostRule{
			{host: "facebook.com"},
			{host: "fb.com"},
			{host: "fb.watch"},
			{host: "fb.me"},
		},
		AndroidTemplate: "fb://facewebmodal/f?href=%s",
		IOSTemplate:     "fb://facewebmodal/f?href=%s",
		AppSignatures:   []string{"fbav", "fban", "fb_iab"},
	},
	{
		Tag: TikTok,
		Hosts: []hostRule{
			{host: "tiktok.com"},
		},
		AndroidTemplate: "snssdk1233://aweme/detail/%s",
		IOSTemplate:     "snssdk1233://aweme/detail/%s",
		AppSignatures:   []string{"musical_ly", "tiktok", "bytedancewebview"},
	},
	{
		Tag: Maps,
		Hosts: []hostRule{
			{host: "maps.google.com"},
			{host: "maps.app.goo.gl"},
			{host: "google.com", pathPrefix: "/maps"},
			{host: "goo.gl", pathPrefix: "/maps"},
		},
		AndroidTemplate: "geo:0,0?q=%s",
		IOSTemplate:     "comgooglemaps://?q=%s",
		AlwaysInstalled: true,
	},
	{
		Tag: Amazon,
		Hosts: []hostRule{
			{host: "amazon.com"},
			{host: "amazon.co.uk"},
			{host: "amazon.de"},
			{host: "amazon.fr"},
			{host: "amazon.it"},
			{host: "amazon.es"},
			{host: "amazon.ca"},
			{host: "amazon.co.jp"},
			{host: "amazon.in"},
			{host: "amzn.to"},
			{host: "amzn.eu"},
			{host: "amzn.asia"},
		},
		AndroidTemplate: "com.amazon.mobile.shopping.web://amazon.com/dp/%s",
		IOSTemplate:     "com.amazon.mobile.shopping.web://amazon.com/dp/%s",
		AppSignatures:   []string{"amazonwebview", "amazonapp"},
	},
}

var byTag = func() map[Platform]*Definition {
	m := make(map[Platform]*Definition, len(definitions))
	for i := range definitions {
		m[definitions[i].Tag] = &definitions[i]
	}
	return m
}()

// All returns every supported platform tag in table order.
func All() []Platform {
	tags := make([]Platform, 0, len(definitions))
	for i := range definitions {
		tags = append(tags, definitions[i].Tag)
	}
	return tags
}

// Parse validates a raw path segment against the supported tags.
func Parse(tag string) (Platform, bool) {
	def, ok := byTag[Platform(strings.ToLower(tag))]
	if !ok {
		return "", false
	}
	return def.Tag, true
}

// Lookup returns the table row for a platform.
func Lookup(p Platform) (Definition, bool) {
	def, ok := byTag[p]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Classify decides which platform a destination URL belongs to.
// Matching is case-insensitive, tolerant of a missing scheme, and
// first-match-wins over the table. Returns false for unsupported or
// unparseable URLs; callers must reject those, there is no generic
// fallback platform.
func Classify(raw string) (Platform, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	path := u.EscapedPath()

	for i := range definitions {
		def := &definitions[i]
		for _, rule := range def.Hosts {
			if !hostMatches(host, rule.host) {
				continue
			}
			if rule.pathPrefix != "" && !strings.HasPrefix(path, rule.pathPrefix) {
				continue
			}
			return def.Tag, true
		}
	}

	return "", false
}

func hostMatches(host, want string) bool {
	return host == want || strings.HasSuffix(host, "."+want)
}
