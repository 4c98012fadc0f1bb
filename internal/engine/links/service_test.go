package links

import (
	"testing"

	"smartlink/internal/engine/platforms"
)

func TestService_CreateLink(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))

	link, err := svc.CreateLink("acct1", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "")
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	if link.Platform != platforms.YouTube {
		t.Errorf("Expected youtube, got %s", link.Platform)
	}
	if link.AndroidURI == nil || *link.AndroidURI != "vnd.youtube:dQw4w9WgXcQ" {
		t.Errorf("Expected synthesized android uri, got %v", link.AndroidURI)
	}
	if link.IOSURI == nil || *link.IOSURI != "youtube://watch?v=dQw4w9WgXcQ" {
		t.Errorf("Expected synthesized ios uri, got %v", link.IOSURI)
	}
	if !link.IsActive {
		t.Error("Expected new link to be active")
	}
	if len(link.ShortCode) != shortCodeLength {
		t.Errorf("Expected generated code of length %d, got %q", shortCodeLength, link.ShortCode)
	}
}

func TestService_CreateLink_DegradedSynthesisStoresNulls(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))

	// No extractable video id: both URIs must persist as NULL.
	link, err := svc.CreateLink("acct1", "https://www.youtube.com/feed/subscriptions", "")
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	if link.AndroidURI != nil || link.IOSURI != nil {
		t.Errorf("Expected nil URIs on degraded synthesis, got %v / %v", link.AndroidURI, link.IOSURI)
	}
}

func TestService_CreateLink_UnsupportedDestination(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))

	if _, err := svc.CreateLink("acct1", "https://example.com/page", ""); err != ErrUnsupportedDestination {
		t.Errorf("Expected ErrUnsupportedDestination, got %v", err)
	}
}

func TestService_CreateLink_InvalidURL(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))

	for _, dest := range []string{"", "ftp://example.com/x", "notaurl"} {
		if _, err := svc.CreateLink("acct1", dest, ""); err == nil {
			t.Errorf("Expected validation error for %q", dest)
		}
	}
}

func TestService_DeleteLink(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))

	link, err := svc.CreateLink("acct1", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "mycode")
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	if err := svc.DeleteLink(link.ID); err != nil {
		t.Fatalf("DeleteLink failed: %v", err)
	}
	if _, err := svc.GetLink(link.ID); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteLink(link.ID); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}
