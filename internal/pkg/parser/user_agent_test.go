package parser

import (
	"testing"

	"smartlink/internal/engine/platforms"
)

const (
	uaAndroidChrome   = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
	uaAndroidTablet   = "Mozilla/5.0 (Linux; Android 13; SM-X710) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	uaIPhoneSafari    = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPad            = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaMacDesktop      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	uaInstagramWebvw  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36 Instagram 312.0.0.32.112"
	uaFacebookWebview = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAN/FBIOS;FBAV/440.0.0.30.107]"
)

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		deviceType DeviceType
		os         OSFamily
	}{
		{"Android Phone", uaAndroidChrome, DeviceMobile, OSAndroid},
		{"Android Tablet", uaAndroidTablet, DeviceTablet, OSAndroid},
		{"iPhone", uaIPhoneSafari, DeviceMobile, OSiOS},
		{"iPad Is Tablet", uaIPad, DeviceTablet, OSiOS},
		{"Mac Desktop", uaMacDesktop, DeviceDesktop, OSWeb},
		{"Empty UA", "", DeviceDesktop, OSWeb},
		{"Kindle Silk", "Mozilla/5.0 (Linux; Android 9; KFTRWI) Silk/120 like Chrome Mobile Safari", DeviceTablet, OSAndroid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ClassifyDevice(tt.ua)
			if d.Type != tt.deviceType {
				t.Errorf("Type = %q, want %q", d.Type, tt.deviceType)
			}
			if d.OS != tt.os {
				t.Errorf("OS = %q, want %q", d.OS, tt.os)
			}
		})
	}
}

func TestAppLikelyInstalled(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		platform platforms.Platform
		expected bool
	}{
		{"Instagram Webview", uaInstagramWebvw, platforms.Instagram, true},
		{"Plain Browser No Instagram", uaAndroidChrome, platforms.Instagram, false},
		{"Facebook In App Browser", uaFacebookWebview, platforms.Facebook, true},
		{"FB Wrapper Counts For Instagram", uaFacebookWebview, platforms.Instagram, true},
		{"Maps Always Installed", uaMacDesktop, platforms.Maps, true},
		{"Unknown Platform", uaAndroidChrome, platforms.Platform("myspace"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ClassifyDevice(tt.ua)
			if got := d.AppLikelyInstalled(tt.platform); got != tt.expected {
				t.Errorf("AppLikelyInstalled(%q) = %v, want %v", tt.platform, got, tt.expected)
			}
		})
	}
}
