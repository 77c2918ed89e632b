// internals/features/cms/migrate/transforms.go
package migrate

import (
	"fmt"
	"sort"
	"strings"

	"panditku_backend/internals/features/cms/pages/schema"
)

// The legacy frontend kept one localStorage key per page plus header,
// footer and menu blobs. The export file is a single JSON object keyed
// by those names.

const (
	legacyHome      = "cms_home"
	legacyAbout     = "cms_about"
	legacyWhyChoose = "cms_whyChoose"
	legacyBooks     = "cms_books"
	legacyContact   = "cms_contact"
	legacyCharity   = "cms_charity"
	legacyDakshina  = "cms_dakshina"
	legacyHeader    = "cms_header"
	legacyFooter    = "cms_footer"
	legacyMenu      = "cms_menu"
)

var legacyPageKeys = map[string]string{
	legacyHome:      schema.PageHome,
	legacyAbout:     schema.PageAbout,
	legacyWhyChoose: schema.PageWhyChoose,
	legacyBooks:     schema.PageBooks,
	legacyContact:   schema.PageContact,
	legacyCharity:   schema.PageCharity,
	legacyDakshina:  schema.PageDakshina,
}

// SectionRecord is one row-to-be in page_sections.
type SectionRecord struct {
	PageSlug   string
	SectionKey string
	Type       string
	Content    map[string]any
}

// MenuItemRecord is one legacy menu entry carried over verbatim.
type MenuItemRecord struct {
	Label   string
	URL     string
	Order   int
	Visible bool
}

// LegacyMenuItems decodes the cms_menu blob. Items keep the order value
// they were exported with; missing orders fall back to list position.
func LegacyMenuItems(raw any) []MenuItemRecord {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]MenuItemRecord, 0, len(list))
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		rec := MenuItemRecord{
			Label:   asString(m["label"]),
			URL:     asString(m["url"]),
			Order:   asInt(m["order"], i),
			Visible: asBool(m["visible"], true),
		}
		if rec.Label == "" || rec.URL == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// TransformPage turns one legacy page blob into its section records.
// Section keys come from the legacy doc's top level; scalar and array
// values are wrapped into an object so every section row stays a JSON
// object. The contact page gets its dedicated field transform.
func TransformPage(legacyKey string, raw any) ([]SectionRecord, error) {
	slug, ok := legacyPageKeys[legacyKey]
	if !ok {
		return nil, fmt.Errorf("unknown legacy key %q", legacyKey)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("legacy key %q does not hold an object", legacyKey)
	}

	if slug == schema.PageContact {
		return transformContact(doc), nil
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SectionRecord, 0, len(keys))
	for _, key := range keys {
		sectionKey := sectionKeyFor(slug, key)
		out = append(out, SectionRecord{
			PageSlug:   slug,
			SectionKey: sectionKey,
			Type:       schema.SectionType(slug, sectionKey),
			Content:    wrapObject(sectionKey, doc[key]),
		})
	}
	return out, nil
}

// sectionKeyFor resolves a legacy key against the page's canonical
// section keys. A key the schema already knows is kept verbatim (the
// schema itself mixes styles, e.g. whyChoose's serviceAreas vs
// contact's contact_info); otherwise the snake_case form is used only
// when the schema knows that form. Unrecognized keys pass through
// unchanged so the merge treats them as the extra keys they are.
func sectionKeyFor(slug, key string) string {
	canonical := schema.SectionKeys(slug)
	for _, k := range canonical {
		if k == key {
			return key
		}
	}
	if snake := normalizeSectionKey(key); snake != key {
		for _, k := range canonical {
			if k == snake {
				return snake
			}
		}
	}
	return key
}

// transformContact remaps the flat legacy contact blob into the
// contact_info section, defaulting absent fields to empty strings, and
// carries any remaining keys over as their own sections.
func transformContact(doc map[string]any) []SectionRecord {
	contactInfo := map[string]any{
		"email":    asString(doc["email"]),
		"phone":    asString(doc["phone"]),
		"whatsapp": asString(doc["whatsapp"]),
		"address":  asString(doc["address"]),
	}

	out := []SectionRecord{{
		PageSlug:   schema.PageContact,
		SectionKey: "contact_info",
		Type:       schema.SectionType(schema.PageContact, "contact_info"),
		Content:    contactInfo,
	}}

	rest := make([]string, 0, len(doc))
	for k := range doc {
		switch k {
		case "email", "phone", "whatsapp", "address":
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, key := range rest {
		sectionKey := sectionKeyFor(schema.PageContact, key)
		out = append(out, SectionRecord{
			PageSlug:   schema.PageContact,
			SectionKey: sectionKey,
			Type:       schema.SectionType(schema.PageContact, sectionKey),
			Content:    wrapObject(sectionKey, doc[key]),
		})
	}
	return out
}

// wrapObject keeps maps as-is and wraps everything else under a field
// named after the section, so "stats": [...] becomes {"stats": [...]}.
func wrapObject(sectionKey string, v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{sectionKey: v}
}

// normalizeSectionKey converts the legacy camelCase keys to the
// snake_case section keys the schema uses (contactInfo -> contact_info).
func normalizeSectionKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return def
}

func asBool(v any, def bool) bool {
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
