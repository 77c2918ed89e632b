package service

import (
	"strings"
	"testing"
	"time"
)

func TestResolvePublishedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("draft to published sets stamp", func(t *testing.T) {
		got := ResolvePublishedAt("draft", "published", nil, now)
		if got == nil || !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("published to published keeps original stamp", func(t *testing.T) {
		got := ResolvePublishedAt("published", "published", &earlier, now)
		if got == nil || !got.Equal(earlier) {
			t.Fatalf("got %v, want %v", got, earlier)
		}
	})

	t.Run("published to draft clears stamp", func(t *testing.T) {
		if got := ResolvePublishedAt("published", "draft", &earlier, now); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})

	t.Run("published to archived clears stamp", func(t *testing.T) {
		if got := ResolvePublishedAt("published", "archived", &earlier, now); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})

	t.Run("republish gets fresh stamp", func(t *testing.T) {
		got := ResolvePublishedAt("archived", "published", nil, now)
		if got == nil || !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("draft stays draft stays nil", func(t *testing.T) {
		if got := ResolvePublishedAt("draft", "draft", nil, now); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})
}

func TestSanitizeContent(t *testing.T) {
	t.Run("strips scripts", func(t *testing.T) {
		in := `<p>Om Namah Shivaya</p><script>alert("x")</script>`
		got := SanitizeContent(in)
		if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
			t.Fatalf("script survived sanitization: %q", got)
		}
		if !strings.Contains(got, "<p>Om Namah Shivaya</p>") {
			t.Fatalf("paragraph lost: %q", got)
		}
	})

	t.Run("strips event handlers", func(t *testing.T) {
		got := SanitizeContent(`<img src="/media/aarti.webp" onerror="steal()">`)
		if strings.Contains(got, "onerror") {
			t.Fatalf("onerror survived: %q", got)
		}
		if !strings.Contains(got, "src=") {
			t.Fatalf("image src lost: %q", got)
		}
	})

	t.Run("keeps relative image urls", func(t *testing.T) {
		got := SanitizeContent(`<img src="/media/gallery/havan.webp" alt="havan">`)
		if !strings.Contains(got, "/media/gallery/havan.webp") {
			t.Fatalf("relative URL lost: %q", got)
		}
	})

	t.Run("keeps class attributes on paragraphs", func(t *testing.T) {
		got := SanitizeContent(`<p class="lead">intro</p>`)
		if !strings.Contains(got, `class="lead"`) {
			t.Fatalf("class attribute lost: %q", got)
		}
	})
}
