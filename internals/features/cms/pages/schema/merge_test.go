package schema

import (
	"reflect"
	"testing"
)

func TestMergePersistedWinsRecursively(t *testing.T) {
	defaults := map[string]any{
		"hero": map[string]any{
			"title":    "Default Title",
			"subtitle": "Default Subtitle",
			"primaryCta": map[string]any{
				"label": "Book",
				"url":   "/contact",
				"style": "primary",
			},
		},
		"stats": map[string]any{
			"items": []any{
				map[string]any{"label": "Years", "value": float64(25)},
				map[string]any{"label": "Ceremonies", "value": float64(5000)},
			},
		},
	}

	persisted := map[string]any{
		"hero": map[string]any{
			"title": "Shastri Ji",
			// three levels deep: hero -> primaryCta -> label
			"primaryCta": map[string]any{
				"label": "Book Now",
			},
		},
	}

	got := Merge(persisted, defaults)

	hero := got["hero"].(map[string]any)
	if hero["title"] != "Shastri Ji" {
		t.Errorf("persisted title should win, got %v", hero["title"])
	}
	if hero["subtitle"] != "Default Subtitle" {
		t.Errorf("absent field should fall back to default, got %v", hero["subtitle"])
	}

	cta := hero["primaryCta"].(map[string]any)
	if cta["label"] != "Book Now" {
		t.Errorf("nested persisted field should win, got %v", cta["label"])
	}
	if cta["url"] != "/contact" || cta["style"] != "primary" {
		t.Errorf("nested siblings must not be dropped by the merge: %v", cta)
	}

	// untouched section comes straight from defaults
	if !reflect.DeepEqual(got["stats"], defaults["stats"]) {
		t.Errorf("untouched section must equal default")
	}
}

func TestMergeArraysReplacedWholesale(t *testing.T) {
	defaults := map[string]any{
		"hero": map[string]any{
			"backgroundImages": []any{"a.webp", "b.webp", "c.webp"},
		},
	}
	persisted := map[string]any{
		"hero": map[string]any{
			"backgroundImages": []any{"only.webp"},
		},
	}

	got := Merge(persisted, defaults)
	imgs := got["hero"].(map[string]any)["backgroundImages"].([]any)
	if len(imgs) != 1 || imgs[0] != "only.webp" {
		t.Fatalf("arrays must be replaced wholesale, got %v", imgs)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{
		"hero": map[string]any{"title": "Default", "subtitle": "Sub"},
	}
	persisted := map[string]any{
		"hero": map[string]any{"title": "Changed"},
	}

	_ = Merge(persisted, defaults)

	if defaults["hero"].(map[string]any)["title"] != "Default" {
		t.Error("defaults were mutated")
	}
	if _, ok := persisted["hero"].(map[string]any)["subtitle"]; ok {
		t.Error("persisted was mutated")
	}
}

func TestMergeEmptyPersistedReturnsDefaults(t *testing.T) {
	defaults, _ := Defaults(PageHome)
	got := Merge(map[string]any{}, defaults)
	if !reflect.DeepEqual(got, defaults) {
		t.Error("empty persisted document should yield the defaults")
	}
}
