package platforms

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Platform
		ok       bool
	}{
		{"YouTube Watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTube, true},
		{"YouTube Short Domain", "https://youtu.be/dQw4w9WgXcQ", YouTube, true},
		{"YouTube No Scheme", "youtube.com/watch?v=abc", YouTube, true},
		{"YouTube Uppercase Host", "https://WWW.YOUTUBE.COM/watch?v=abc", YouTube, true},
		{"Instagram Post", "https://www.instagram.com/p/Cxyz123/", Instagram, true},
		{"Instagram Legacy Domain", "https://instagr.am/p/Cxyz123/", Instagram, true},
		{"Facebook Page", "https://www.facebook.com/zuck", Facebook, true},
		{"Facebook Watch", "https://fb.watch/abc123/", Facebook, true},
		{"TikTok Video", "https://www.tiktok.com/@user/video/7123456789012345678", TikTok, true},
		{"TikTok Regional Short Link", "https://vm.tiktok.com/ZM8abc/", TikTok, true},
		{"Maps Subdomain", "https://maps.google.com/?q=eiffel+tower", Maps, true},
		{"Maps Share Link", "https://maps.app.goo.gl/Xyz123", Maps, true},
		{"Maps Path On Google", "https://www.google.com/maps/place/Eiffel+Tower", Maps, true},
		{"Amazon Product", "https://www.amazon.com/dp/B08N5WRWNW", Amazon, true},
		{"Amazon Regional", "https://www.amazon.co.uk/gp/product/B08N5WRWNW", Amazon, true},
		{"Amazon Short Link", "https://amzn.to/3abcDEF", Amazon, true},
		{"Google Search Is Not Maps", "https://www.google.com/search?q=maps", "", false},
		{"Unsupported Host", "https://example.com/watch?v=abc", "", false},
		{"Lookalike Host Suffix", "https://notyoutube.com/watch?v=abc", "", false},
		{"Empty", "", "", false},
		{"Garbage", "ht!tp://%%%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.url)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.url, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, tag := range All() {
		if p, ok := Parse(string(tag)); !ok || p != tag {
			t.Errorf("Parse(%q) = %q, %v", tag, p, ok)
		}
	}

	if _, ok := Parse("myspace"); ok {
		t.Error("Parse accepted unsupported tag myspace")
	}
	if _, ok := Parse(""); ok {
		t.Error("Parse accepted empty tag")
	}
}

func TestLookupCoversAllPlatforms(t *testing.T) {
	for _, tag := range All() {
		def, ok := Lookup(tag)
		if !ok {
			t.Fatalf("no definition for %q", tag)
		}
		if def.AndroidTemplate == "" || def.IOSTemplate == "" {
			t.Errorf("%q missing URI templates", tag)
		}
		if len(def.AppSignatures) == 0 && !def.AlwaysInstalled {
			t.Errorf("%q has no app signatures and is not always-installed", tag)
		}
	}
}
