package parser

import (
	"strings"

	"smartlink/internal/engine/platforms"
)

type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

type OSFamily string

const (
	OSAndroid OSFamily = "android"
	OSiOS     OSFamily = "ios"
	OSWeb     OSFamily = "web"
)

// Device is the classification of one request's user-agent. It keeps
// the lowercased user-agent around so the app-installed heuristic can
// scan it against platform signatures.
type Device struct {
	Type DeviceType
	OS   OSFamily

	ua string
}

var tabletTokens = []string{"ipad", "tablet", "kindle", "silk/", "playbook"}

var mobileTokens = []string{"android", "iphone", "ipod", "mobile", "windows phone", "blackberry", "opera mini"}

// ClassifyDevice sniffs device type and OS family out of a raw
// user-agent string. It never fails; an empty or alien user-agent
// classifies as a desktop web browser.
func ClassifyDevice(userAgent string) Device {
	ua := strings.ToLower(userAgent)
	d := Device{Type: DeviceDesktop, OS: OSWeb, ua: ua}

	for _, tok := range tabletTokens {
		if strings.Contains(ua, tok) {
			d.Type = DeviceTablet
			break
		}
	}
	// Android tablets carry the android token without "mobile".
	if d.Type == DeviceDesktop && strings.Contains(ua, "android") && !strings.Contains(ua, "mobile") {
		d.Type = DeviceTablet
	}
	if d.Type == DeviceDesktop {
		for _, tok := range mobileTokens {
			if strings.Contains(ua, tok) {
				d.Type = DeviceMobile
				break
			}
		}
	}

	if strings.Contains(ua, "android") {
		d.OS = OSAndroid
	} else if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ipod") {
		d.OS = OSiOS
	}

	return d
}

// AppLikelyInstalled guesses whether the platform's app is present on
// the device from user-agent signatures (the app's own token, or a
// co-bundled webview wrapper). Best effort: wrong in either direction
// is acceptable, it only changes which URI gets served.
func (d Device) AppLikelyInstalled(p platforms.Platform) bool {
	def, ok := platforms.Lookup(p)
	if !ok {
		return false
	}
	if def.AlwaysInstalled {
		return true
	}
	for _, sig := range def.AppSignatures {
		if strings.Contains(d.ua, sig) {
			return true
		}
	}
	return false
}
