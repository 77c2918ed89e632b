package controller

import "testing"

func TestReferrerHost(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.google.com/search?q=pandit", "google.com"},
		{"https://facebook.com/somepage", "facebook.com"},
		{"http://m.example.org", "m.example.org"},
		{"", ""},
		{"   ", ""},
		{"not a url", ""},
		{"/relative/path", ""},
	}
	for _, tc := range cases {
		if got := referrerHost(tc.in); got != tc.want {
			t.Errorf("referrerHost(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Fatalf("truncate = %q", got)
	}
}
