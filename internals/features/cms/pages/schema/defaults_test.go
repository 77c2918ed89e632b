package schema

import (
	"testing"
)

func TestDefaultsCompleteForEveryPage(t *testing.T) {
	for _, key := range PageKeys {
		doc, ok := Defaults(key)
		if !ok {
			t.Fatalf("Defaults(%q) not found", key)
		}
		if len(doc) == 0 {
			t.Fatalf("Defaults(%q) is empty", key)
		}
		for _, section := range SectionKeys(key) {
			v, present := doc[section]
			if !present {
				t.Errorf("page %q default is missing section %q", key, section)
				continue
			}
			if v == nil {
				t.Errorf("page %q section %q defaults to nil", key, section)
			}
		}
	}
}

func TestDefaultsUnknownPage(t *testing.T) {
	if _, ok := Defaults("nonsense"); ok {
		t.Fatal("unknown page key must report ok=false")
	}
}

func TestSectionTypeFallback(t *testing.T) {
	if got := SectionType(PageHome, "hero"); got != "hero" {
		t.Errorf("SectionType(home, hero) = %q", got)
	}
	if got := SectionType(PageContact, "contact_info"); got != "contact_info" {
		t.Errorf("SectionType(contact, contact_info) = %q", got)
	}
	if got := SectionType(PageHome, "made-up"); got != "object" {
		t.Errorf("unknown section should fall back to object, got %q", got)
	}
}

func TestContactInfoDefaultsAreEmptyStrings(t *testing.T) {
	doc, _ := Defaults(PageContact)
	info := doc["contact_info"].(map[string]any)
	for _, f := range []string{"email", "phone", "whatsapp", "address"} {
		v, ok := info[f]
		if !ok {
			t.Fatalf("contact_info default missing %q", f)
		}
		if v != "" {
			t.Errorf("contact_info.%s should default to empty string, got %v", f, v)
		}
	}
}
