package schema

import (
	"reflect"
	"testing"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"hero": map[string]any{
			"title": "Old",
		},
		"stats": map[string]any{
			"items": []any{
				map[string]any{"label": "Years", "value": float64(25)},
				map[string]any{"label": "Ceremonies", "value": float64(5000)},
				map[string]any{"label": "Families", "value": float64(1200)},
			},
		},
	}
}

func TestSetScalar(t *testing.T) {
	doc := sampleDoc()
	got := Set(doc, "hero.title", "New")

	if v, _ := Get(got, "hero.title"); v != "New" {
		t.Fatalf("Set did not apply, got %v", v)
	}
	if v, _ := Get(doc, "hero.title"); v != "Old" {
		t.Fatal("original document was mutated")
	}
}

func TestSetInsideArrayElement(t *testing.T) {
	doc := sampleDoc()
	got := Set(doc, "stats.items.1.label", "Kathas")

	if v, _ := Get(got, "stats.items.1.label"); v != "Kathas" {
		t.Fatalf("Set into array element failed, got %v", v)
	}
	if v, _ := Get(doc, "stats.items.1.label"); v != "Ceremonies" {
		t.Fatal("original array element was mutated")
	}
	// sibling element untouched and shared
	if v, _ := Get(got, "stats.items.0.label"); v != "Years" {
		t.Fatal("sibling element corrupted")
	}
}

func TestSetCreatesMissingObjects(t *testing.T) {
	doc := map[string]any{}
	got := Set(doc, "gallery.heading", "Photos")

	if v, _ := Get(got, "gallery.heading"); v != "Photos" {
		t.Fatalf("missing intermediate objects should be created, got %v", v)
	}
	if len(doc) != 0 {
		t.Fatal("original empty document was mutated")
	}
}

func TestSetOutOfRangeIndexIsNoOp(t *testing.T) {
	doc := sampleDoc()
	got := Set(doc, "stats.items.9.label", "Nope")
	if len(got) != len(doc) {
		t.Fatal("no-op should not change the document")
	}
	if v, _ := Get(got, "stats.items.0.label"); v != "Years" {
		t.Fatal("no-op corrupted the document")
	}
}

func TestStructuralSharing(t *testing.T) {
	doc := sampleDoc()
	got := Set(doc, "hero.title", "New")

	// the untouched subtree is the same map, not a copy
	origStats := reflect.ValueOf(doc["stats"]).Pointer()
	gotStats := reflect.ValueOf(got["stats"]).Pointer()
	if origStats != gotStats {
		t.Fatal("untouched subtree should be shared, not copied")
	}
	// the touched subtree is a new map
	origHero := reflect.ValueOf(doc["hero"]).Pointer()
	gotHero := reflect.ValueOf(got["hero"]).Pointer()
	if origHero == gotHero {
		t.Fatal("touched subtree must be replaced, not mutated")
	}
}

func TestAppend(t *testing.T) {
	doc := sampleDoc()
	got := Append(doc, "stats.items", map[string]any{"label": "Havans", "value": float64(300)})

	items, _ := Get(got, "stats.items")
	if len(items.([]any)) != 4 {
		t.Fatalf("append failed, len=%d", len(items.([]any)))
	}
	orig, _ := Get(doc, "stats.items")
	if len(orig.([]any)) != 3 {
		t.Fatal("original array was mutated")
	}
}

func TestAppendCreatesMissingArray(t *testing.T) {
	doc := map[string]any{}
	got := Append(doc, "gallery.images", map[string]any{"url": "a.webp"})

	items, ok := Get(got, "gallery.images")
	if !ok || len(items.([]any)) != 1 {
		t.Fatalf("append should create the array, got %v", items)
	}
}

func TestRemoveAtShiftsIndices(t *testing.T) {
	doc := sampleDoc()
	got := RemoveAt(doc, "stats.items", 0)

	items := mustArr(t, got, "stats.items")
	if len(items) != 2 {
		t.Fatalf("remove failed, len=%d", len(items))
	}
	if items[0].(map[string]any)["label"] != "Ceremonies" {
		t.Fatal("subsequent items should shift down")
	}

	// out of range → no-op
	same := RemoveAt(doc, "stats.items", 7)
	if len(mustArr(t, same, "stats.items")) != 3 {
		t.Fatal("out-of-range remove must be a no-op")
	}
}

func TestSwapAt(t *testing.T) {
	doc := sampleDoc()
	got := SwapAt(doc, "stats.items", 0, 2)

	items := mustArr(t, got, "stats.items")
	if items[0].(map[string]any)["label"] != "Families" || items[2].(map[string]any)["label"] != "Years" {
		t.Fatalf("swap failed: %v", items)
	}

	// invalid index → no-op
	same := SwapAt(doc, "stats.items", 0, 9)
	if mustArr(t, same, "stats.items")[0].(map[string]any)["label"] != "Years" {
		t.Fatal("invalid swap must be a no-op")
	}
}

func mustArr(t *testing.T, doc map[string]any, path string) []any {
	t.Helper()
	v, ok := Get(doc, path)
	if !ok {
		t.Fatalf("path %s missing", path)
	}
	arr, ok := v.([]any)
	if !ok {
		t.Fatalf("path %s is not an array", path)
	}
	return arr
}
