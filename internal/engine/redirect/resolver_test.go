package redirect

import (
	"testing"

	"smartlink/internal/engine/links"
	"smartlink/internal/engine/platforms"
	"smartlink/internal/pkg/parser"
)

const (
	uaAndroidWithApp = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36 com.google.android.youtube/19.05"
	uaAndroidPlain   = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"
	uaIPhoneWithApp  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 YouTube/19.05"
	uaDesktop        = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"
)

func strPtr(s string) *string { return &s }

func videoLink() *links.Link {
	return &links.Link{
		ID:             "link1",
		AccountID:      "acct1",
		DestinationURL: "https://example.com/watch?v=xyz",
		AndroidURI:     strPtr("vnd.app:xyz"),
		Platform:       platforms.YouTube,
		ShortCode:      "abc123",
		IsActive:       true,
	}
}

func TestResolve(t *testing.T) {
	iosLink := videoLink()
	iosLink.IOSURI = strPtr("youtube://watch?v=xyz")

	tests := []struct {
		name     string
		link     *links.Link
		ua       string
		url      string
		redirect RedirectType
	}{
		{
			// Android, app signature present, android URI stored.
			name:     "Android With App Gets Deep Link",
			link:     videoLink(),
			ua:       uaAndroidWithApp,
			url:      "vnd.app:xyz",
			redirect: RedirectAndroidDeepLink,
		},
		{
			name:     "Desktop Gets Web Fallback",
			link:     videoLink(),
			ua:       uaDesktop,
			url:      "https://example.com/watch?v=xyz",
			redirect: RedirectWebFallback,
		},
		{
			name:     "Android Without App Signature Falls Back",
			link:     videoLink(),
			ua:       uaAndroidPlain,
			url:      "https://example.com/watch?v=xyz",
			redirect: RedirectWebFallback,
		},
		{
			// Link has no iOS URI stored: iPhone with the app still
			// falls back to the web.
			name:     "IOS Without Stored URI Falls Back",
			link:     videoLink(),
			ua:       uaIPhoneWithApp,
			url:      "https://example.com/watch?v=xyz",
			redirect: RedirectWebFallback,
		},
		{
			name:     "IOS With Stored URI And App",
			link:     iosLink,
			ua:       uaIPhoneWithApp,
			url:      "youtube://watch?v=xyz",
			redirect: RedirectIOSDeepLink,
		},
		{
			name:     "Empty UA Gets Web Fallback",
			link:     videoLink(),
			ua:       "",
			url:      "https://example.com/watch?v=xyz",
			redirect: RedirectWebFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := parser.ClassifyDevice(tt.ua)
			got := Resolve(tt.link, device)
			if got.OutboundURL != tt.url {
				t.Errorf("OutboundURL = %q, want %q", got.OutboundURL, tt.url)
			}
			if got.Type != tt.redirect {
				t.Errorf("Type = %q, want %q", got.Type, tt.redirect)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	link := videoLink()
	device := parser.ClassifyDevice(uaAndroidWithApp)

	first := Resolve(link, device)
	second := Resolve(link, device)
	if first != second {
		t.Errorf("two resolutions differ: %+v vs %+v", first, second)
	}
}

func TestResolveMapsAlwaysInstalled(t *testing.T) {
	link := &links.Link{
		ID:             "link2",
		DestinationURL: "https://maps.google.com/?q=eiffel+tower",
		AndroidURI:     strPtr("geo:0,0?q=eiffel+tower"),
		Platform:       platforms.Maps,
	}

	got := Resolve(link, parser.ClassifyDevice(uaAndroidPlain))
	if got.Type != RedirectAndroidDeepLink {
		t.Errorf("maps on android should deep link without an app signature, got %q", got.Type)
	}
}
