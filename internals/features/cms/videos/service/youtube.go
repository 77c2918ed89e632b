// internals/features/cms/videos/service/youtube.go
package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractYoutubeID pulls the 11-character video ID out of the URL shapes
// admins actually paste:
//
//	https://www.youtube.com/watch?v=ID
//	https://youtu.be/ID
//	https://www.youtube.com/embed/ID
//	https://www.youtube.com/shorts/ID
//	a bare ID
func ExtractYoutubeID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty video URL")
	}
	if youtubeIDPattern.MatchString(raw) {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid video URL: %w", err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		if id = firstSegment(id); youtubeIDPattern.MatchString(id) {
			return id, nil
		}
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		if id := u.Query().Get("v"); youtubeIDPattern.MatchString(id) {
			return id, nil
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/", "/v/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := firstSegment(strings.TrimPrefix(u.Path, prefix))
				if youtubeIDPattern.MatchString(id) {
					return id, nil
				}
			}
		}
	}
	return "", fmt.Errorf("could not find a YouTube video ID in %q", raw)
}

func firstSegment(p string) string {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

// WatchURL is the canonical watch link stored alongside the ID.
func WatchURL(youtubeID string) string {
	return "https://www.youtube.com/watch?v=" + youtubeID
}

// ThumbnailURL derives the hqdefault thumbnail, which exists for every
// video (maxresdefault does not).
func ThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", youtubeID)
}
