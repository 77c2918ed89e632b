package migrate

import (
	"testing"

	"github.com/google/uuid"
)

func TestEnsurePageCacheIsPerRunner(t *testing.T) {
	known := uuid.New()

	// A cached slug resolves without touching the database at all; a nil
	// db would panic on any query.
	r := NewRunner(nil)
	r.pageIDs["home"] = known

	got, err := r.ensurePage("home")
	if err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}
	if got != known {
		t.Fatalf("ensurePage returned %s, want %s", got, known)
	}

	// A fresh runner starts with an empty cache.
	if other := NewRunner(nil); len(other.pageIDs) != 0 {
		t.Fatalf("new runner carries %d cached pages", len(other.pageIDs))
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct{ slug, want string }{
		{"home", "Home"},
		{"whyChoose", "WhyChoose"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := pageTitle(tc.slug); got != tc.want {
			t.Errorf("pageTitle(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}
