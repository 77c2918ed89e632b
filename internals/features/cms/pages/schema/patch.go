package schema

import (
	"strconv"
	"strings"
)

// Path-based immutable updates over content documents.
//
// A path is dot-separated: "hero.title", "stats.items.2.label". Numeric
// segments index into arrays. Every operation returns a new document that
// shares all untouched subtrees with the input; the input is never
// mutated. Missing intermediate OBJECTS are created on Set (the form
// binding this backs treats "hero.title" on an empty document as a valid
// first edit). Array indexes are never created: a numeric segment that
// does not resolve makes the operation a no-op returning the original
// document.

// Get resolves a path inside a document.
func Get(doc map[string]any, path string) (any, bool) {
	var cur any = doc
	for _, seg := range splitPath(path) {
		if idx, isNum := asIndex(seg); isNum {
			arr, ok := cur.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
			continue
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set replaces the value at path, creating missing intermediate objects.
func Set(doc map[string]any, path string, value any) map[string]any {
	segs := splitPath(path)
	if len(segs) == 0 {
		return doc
	}
	out, ok := setValue(doc, segs, value)
	if !ok {
		return doc
	}
	m, _ := out.(map[string]any)
	return m
}

// Append adds an item to the array at path, creating the array when the
// path is absent.
func Append(doc map[string]any, path string, item any) map[string]any {
	return updateArray(doc, path, true, func(arr []any) ([]any, bool) {
		out := make([]any, len(arr), len(arr)+1)
		copy(out, arr)
		return append(out, item), true
	})
}

// RemoveAt removes the array item at index; later indices shift down.
func RemoveAt(doc map[string]any, path string, index int) map[string]any {
	return updateArray(doc, path, false, func(arr []any) ([]any, bool) {
		if index < 0 || index >= len(arr) {
			return nil, false
		}
		out := make([]any, 0, len(arr)-1)
		out = append(out, arr[:index]...)
		out = append(out, arr[index+1:]...)
		return out, true
	})
}

// SwapAt exchanges two array items (list reordering).
func SwapAt(doc map[string]any, path string, i, j int) map[string]any {
	return updateArray(doc, path, false, func(arr []any) ([]any, bool) {
		if i < 0 || i >= len(arr) || j < 0 || j >= len(arr) {
			return nil, false
		}
		out := make([]any, len(arr))
		copy(out, arr)
		out[i], out[j] = out[j], out[i]
		return out, true
	})
}

// ============================================================

func setValue(node any, segs []string, value any) (any, bool) {
	if len(segs) == 0 {
		return value, true
	}
	seg := segs[0]

	if idx, isNum := asIndex(seg); isNum {
		arr, ok := node.([]any)
		if !ok || idx < 0 || idx >= len(arr) {
			return nil, false
		}
		child, ok := setValue(arr[idx], segs[1:], value)
		if !ok {
			return nil, false
		}
		out := make([]any, len(arr))
		copy(out, arr)
		out[idx] = child
		return out, true
	}

	m, isMap := node.(map[string]any)
	var childIn any
	if isMap {
		childIn = m[seg]
	}
	child, ok := setValue(childIn, segs[1:], value)
	if !ok {
		return nil, false
	}

	var out map[string]any
	if isMap {
		out = make(map[string]any, len(m)+1)
		for k, v := range m {
			out[k] = v
		}
	} else {
		// missing (or scalar) intermediate: a fresh object takes its place
		out = make(map[string]any, 1)
	}
	out[seg] = child
	return out, true
}

func updateArray(doc map[string]any, path string, createMissing bool, fn func([]any) ([]any, bool)) map[string]any {
	cur, found := Get(doc, path)

	var arr []any
	switch {
	case found && cur != nil:
		var ok bool
		arr, ok = cur.([]any)
		if !ok {
			return doc
		}
	case createMissing:
		arr = []any{}
	default:
		return doc
	}

	out, ok := fn(arr)
	if !ok {
		return doc
	}
	return Set(doc, path, out)
}

func splitPath(path string) []string {
	path = strings.Trim(path, ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func asIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}
