package redirect

import (
	"smartlink/internal/engine/links"
	"smartlink/internal/pkg/parser"
)

// RedirectType labels which target class was actually served; it is
// stored on the click event so analytics can split deep-link opens from
// web fallbacks.
type RedirectType string

const (
	RedirectAndroidDeepLink RedirectType = "android_deeplink"
	RedirectIOSDeepLink     RedirectType = "ios_deeplink"
	RedirectWebFallback     RedirectType = "web_fallback"
)

// Resolution is the single outbound choice for one request.
type Resolution struct {
	OutboundURL string
	Type        RedirectType
}

// Resolve picks exactly one outbound URL for a stored link and a
// classified device. Selection order, first match wins:
//
//  1. Android OS, stored android URI, app likely installed.
//  2. iOS, stored ios URI, app likely installed.
//  3. The plain destination URL.
//
// Pure read; the same link and device always resolve identically.
func Resolve(link *links.Link, device parser.Device) Resolution {
	if device.OS == parser.OSAndroid && link.AndroidURI != nil && device.AppLikelyInstalled(link.Platform) {
		return Resolution{OutboundURL: *link.AndroidURI, Type: RedirectAndroidDeepLink}
	}
	if device.OS == parser.OSiOS && link.IOSURI != nil && device.AppLikelyInstalled(link.Platform) {
		return Resolution{OutboundURL: *link.IOSURI, Type: RedirectIOSDeepLink}
	}
	return Resolution{OutboundURL: link.DestinationURL, Type: RedirectWebFallback}
}
