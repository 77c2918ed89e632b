// internals/features/cms/blog/service/blog_service.go
package service

import (
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var contentPolicy = newContentPolicy()

// newContentPolicy allows the rich-text tags the admin editor emits and
// strips everything else (scripts, event handlers, inline styles).
func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span", "div", "blockquote", "figure", "figcaption")
	p.AllowImages()
	p.RequireNoFollowOnLinks(false)
	p.AllowRelativeURLs(true)
	return p
}

// SanitizeContent cleans untrusted HTML before it is stored.
func SanitizeContent(html string) string {
	return contentPolicy.Sanitize(html)
}

// ResolvePublishedAt implements the publish timestamp rule: the stamp is
// set exactly when a post transitions into "published" and cleared when
// it leaves that status. Republishing gets a fresh stamp.
func ResolvePublishedAt(oldStatus, newStatus string, current *time.Time, now time.Time) *time.Time {
	switch {
	case newStatus == "published" && oldStatus != "published":
		t := now
		return &t
	case newStatus != "published":
		return nil
	default:
		return current
	}
}
