package version

import (
	"strings"
	"testing"
)

// TestGet verifies runtime fields are populated alongside the build defaults.
func TestGet(t *testing.T) {
	v := Get()

	if v.Version == "" {
		t.Error("Version is empty")
	}
	if v.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
	if !strings.Contains(v.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch format", v.Platform)
	}
}

// TestString verifies the single-line format names the tool and version.
func TestString(t *testing.T) {
	s := Get().String()

	if !strings.HasPrefix(s, "collectcode version ") {
		t.Errorf("String() = %q, want collectcode version prefix", s)
	}
	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, missing version %q", s, Version)
	}
}
