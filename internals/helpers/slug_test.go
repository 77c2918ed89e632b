package helper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ganga Aarti at Haridwar", "ganga-aarti-at-haridwar"},
		{"  Puja   &   Havan  ", "puja-havan"},
		{"Śrī Rāma", "sri-rama"},
		{"UPPER case", "upper-case"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", "item"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in, 100); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyRespectsMaxLen(t *testing.T) {
	got := Slugify("a very long title that keeps going and going and going", 20)
	if len(got) > 20 {
		t.Fatalf("len = %d, want <= 20 (%q)", len(got), got)
	}
	if got[len(got)-1] == '-' {
		t.Fatalf("slug ends with a dash: %q", got)
	}
}
