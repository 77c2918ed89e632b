package helper

import (
	"testing"
	"time"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ganga Aarti (2024).JPG", "ganga-aarti-2024-.jpg"},
		{"../../etc/passwd", "passwd"},
		{"  photo.png ", "photo.png"},
		{"///", "file"},
		{"", "file"},
		{"already-safe_name.webp", "already-safe_name.webp"},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestObjectKey(t *testing.T) {
	ts := time.UnixMilli(1700000000000)

	got := ObjectKey("gallery", "Morning Puja.jpg", ts)
	want := "gallery/1700000000000-morning-puja.jpg"
	if got != want {
		t.Fatalf("ObjectKey = %q, want %q", got, want)
	}

	// empty category falls back
	got = ObjectKey("", "a.png", ts)
	want = "uncategorized/1700000000000-a.png"
	if got != want {
		t.Fatalf("ObjectKey = %q, want %q", got, want)
	}
}

func TestThumbKey(t *testing.T) {
	if got := thumbKey("gallery/123-puja.webp"); got != "gallery/thumb-123-puja.jpg" {
		t.Fatalf("thumbKey = %q", got)
	}
	if got := thumbKey("solo.webp"); got != "thumb-solo.jpg" {
		t.Fatalf("thumbKey = %q", got)
	}
}
