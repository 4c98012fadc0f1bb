package deeplink

import (
	"testing"

	"smartlink/internal/engine/platforms"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name     string
		dest     string
		platform platforms.Platform
		android  string
		ios      string
	}{
		{
			name:     "YouTube Watch Param",
			dest:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			platform: platforms.YouTube,
			android:  "vnd.youtube:dQw4w9WgXcQ",
			ios:      "youtube://watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "YouTube Short Domain",
			dest:     "https://youtu.be/dQw4w9WgXcQ",
			platform: platforms.YouTube,
			android:  "vnd.youtube:dQw4w9WgXcQ",
			ios:      "youtube://watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "YouTube Shorts Path",
			dest:     "https://www.youtube.com/shorts/Abc123xyz_-",
			platform: platforms.YouTube,
			android:  "vnd.youtube:Abc123xyz_-",
			ios:      "youtube://watch?v=Abc123xyz_-",
		},
		{
			name:     "Instagram Post",
			dest:     "https://www.instagram.com/p/CxYz123AbCd/",
			platform: platforms.Instagram,
			android:  "instagram://media?id=CxYz123AbCd",
			ios:      "instagram://media?id=CxYz123AbCd",
		},
		{
			name:     "Instagram Reel",
			dest:     "https://www.instagram.com/reel/CxYz123AbCd/",
			platform: platforms.Instagram,
			android:  "instagram://media?id=CxYz123AbCd",
			ios:      "instagram://media?id=CxYz123AbCd",
		},
		{
			name:     "Facebook Wraps Whole URL",
			dest:     "https://www.facebook.com/zuck",
			platform: platforms.Facebook,
			android:  "fb://facewebmodal/f?href=https%3A%2F%2Fwww.facebook.com%2Fzuck",
			ios:      "fb://facewebmodal/f?href=https%3A%2F%2Fwww.facebook.com%2Fzuck",
		},
		{
			name:     "TikTok Video",
			dest:     "https://www.tiktok.com/@someuser/video/7123456789012345678",
			platform: platforms.TikTok,
			android:  "snssdk1233://aweme/detail/7123456789012345678",
			ios:      "snssdk1233://aweme/detail/7123456789012345678",
		},
		{
			name:     "Maps Query Param",
			dest:     "https://maps.google.com/?q=eiffel tower",
			platform: platforms.Maps,
			android:  "geo:0,0?q=eiffel+tower",
			ios:      "comgooglemaps://?q=eiffel+tower",
		},
		{
			name:     "Maps Place Path",
			dest:     "https://www.google.com/maps/place/Eiffel+Tower/@48.8,2.2,17z",
			platform: platforms.Maps,
			android:  "geo:0,0?q=Eiffel%2BTower",
			ios:      "comgooglemaps://?q=Eiffel%2BTower",
		},
		{
			name:     "Amazon DP",
			dest:     "https://www.amazon.com/dp/B08N5WRWNW",
			platform: platforms.Amazon,
			android:  "com.amazon.mobile.shopping.web://amazon.com/dp/B08N5WRWNW",
			ios:      "com.amazon.mobile.shopping.web://amazon.com/dp/B08N5WRWNW",
		},
		{
			name:     "Amazon GP Product",
			dest:     "https://www.amazon.co.uk/gp/product/B08N5WRWNW?ref=nav",
			platform: platforms.Amazon,
			android:  "com.amazon.mobile.shopping.web://amazon.com/dp/B08N5WRWNW",
			ios:      "com.amazon.mobile.shopping.web://amazon.com/dp/B08N5WRWNW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(tt.dest, tt.platform)
			if got.Android != tt.android {
				t.Errorf("Android = %q, want %q", got.Android, tt.android)
			}
			if got.IOS != tt.ios {
				t.Errorf("IOS = %q, want %q", got.IOS, tt.ios)
			}
			if got.WebFallback != tt.dest {
				t.Errorf("WebFallback = %q, want %q", got.WebFallback, tt.dest)
			}
		})
	}
}

func TestSynthesizeDegradesToDestination(t *testing.T) {
	tests := []struct {
		name     string
		dest     string
		platform platforms.Platform
	}{
		{"YouTube Without Video ID", "https://www.youtube.com/feed/subscriptions", platforms.YouTube},
		{"Instagram Profile", "https://www.instagram.com/someuser", platforms.Instagram},
		{"TikTok Profile", "https://www.tiktok.com/@someuser", platforms.TikTok},
		{"Amazon Search Page", "https://www.amazon.com/s?k=headphones", platforms.Amazon},
		{"Maps Bare Share Link", "https://maps.app.goo.gl/Xyz123", platforms.Maps},
		{"Unparseable URL", "://not-a-url", platforms.YouTube},
		{"Unknown Platform", "https://example.com/x", platforms.Platform("myspace")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(tt.dest, tt.platform)
			if got.Android != tt.dest || got.IOS != tt.dest || got.WebFallback != tt.dest {
				t.Errorf("expected full degradation to %q, got %+v", tt.dest, got)
			}
		})
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	dest := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	first := Synthesize(dest, platforms.YouTube)
	second := Synthesize(dest, platforms.YouTube)
	if first != second {
		t.Errorf("two calls differ: %+v vs %+v", first, second)
	}
}
