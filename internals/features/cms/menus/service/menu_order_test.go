package service

import (
	"testing"

	"panditku_backend/internals/features/cms/menus/model"
)

func items(orders ...int) []model.MenuItemModel {
	out := make([]model.MenuItemModel, 0, len(orders))
	for i, o := range orders {
		out = append(out, model.MenuItemModel{
			MenuItemLabel: string(rune('a' + i)),
			MenuItemOrder: o,
		})
	}
	return out
}

func TestSortedForDisplay(t *testing.T) {
	in := items(30, 10, 20)
	got := SortedForDisplay(in)

	wantLabels := []string{"b", "c", "a"}
	for i, w := range wantLabels {
		if got[i].MenuItemLabel != w {
			t.Fatalf("position %d = %q, want %q", i, got[i].MenuItemLabel, w)
		}
	}
	// Input untouched.
	if in[0].MenuItemLabel != "a" || in[0].MenuItemOrder != 30 {
		t.Fatalf("input mutated: %+v", in[0])
	}
}

func TestSortedForDisplayStableOnDuplicateOrders(t *testing.T) {
	got := SortedForDisplay(items(10, 10, 5))
	if got[0].MenuItemLabel != "c" || got[1].MenuItemLabel != "a" || got[2].MenuItemLabel != "b" {
		t.Fatalf("unexpected order: %q %q %q", got[0].MenuItemLabel, got[1].MenuItemLabel, got[2].MenuItemLabel)
	}
}

func TestSortedForDisplayKeepsGaps(t *testing.T) {
	got := SortedForDisplay(items(100, 1, 50))
	if got[0].MenuItemOrder != 1 || got[1].MenuItemOrder != 50 || got[2].MenuItemOrder != 100 {
		t.Fatalf("gaps should survive sorting: %v %v %v",
			got[0].MenuItemOrder, got[1].MenuItemOrder, got[2].MenuItemOrder)
	}
}

func TestSwapOrders(t *testing.T) {
	in := items(1, 2, 3)
	SwapOrders(in, 0, 2)
	if in[0].MenuItemOrder != 3 || in[2].MenuItemOrder != 1 {
		t.Fatalf("swap failed: %v / %v", in[0].MenuItemOrder, in[2].MenuItemOrder)
	}
	// Labels stay with their items.
	if in[0].MenuItemLabel != "a" || in[2].MenuItemLabel != "c" {
		t.Fatalf("labels moved: %q / %q", in[0].MenuItemLabel, in[2].MenuItemLabel)
	}
}

func TestSwapOrdersOutOfRangeIsNoOp(t *testing.T) {
	in := items(1, 2)
	SwapOrders(in, 0, 5)
	SwapOrders(in, -1, 1)
	if in[0].MenuItemOrder != 1 || in[1].MenuItemOrder != 2 {
		t.Fatalf("out-of-range swap mutated items: %+v", in)
	}
}
