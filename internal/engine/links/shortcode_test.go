package links

import (
	"errors"
	"testing"

	"smartlink/internal/engine/platforms"
)

type MockChecker struct {
	codes map[string]bool
}

func (m *MockChecker) ExistsByCode(platform platforms.Platform, code string) (bool, error) {
	if code == "error" {
		return false, errors.New("db error")
	}
	return m.codes[string(platform)+":"+code], nil
}

func TestGenerateShortCode(t *testing.T) {
	checker := &MockChecker{
		codes: map[string]bool{
			"youtube:taken": true,
		},
	}

	// Test Case 1: Custom Code Success
	code, err := GenerateShortCode(platforms.YouTube, "custom", checker)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if code != "custom" {
		t.Errorf("Expected custom, got %s", code)
	}

	// Test Case 2: Custom Code Taken On This Platform
	_, err = GenerateShortCode(platforms.YouTube, "taken", checker)
	if err == nil {
		t.Error("Expected error for taken code, got nil")
	}

	// Test Case 3: Same Code Free On Another Platform
	code, err = GenerateShortCode(platforms.TikTok, "taken", checker)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if code != "taken" {
		t.Errorf("Expected taken, got %s", code)
	}

	// Test Case 4: Random Code Generation
	code, err = GenerateShortCode(platforms.YouTube, "", checker)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if len(code) != shortCodeLength {
		t.Errorf("Expected length %d, got %d", shortCodeLength, len(code))
	}
}

func TestGenerateShortCode_RejectsReserved(t *testing.T) {
	checker := &MockChecker{codes: map[string]bool{}}

	for _, reserved := range []string{"api", "health", "youtube", "amazon"} {
		if _, err := GenerateShortCode(platforms.YouTube, reserved, checker); err == nil {
			t.Errorf("Expected reserved code %q to be rejected", reserved)
		}
	}
}
