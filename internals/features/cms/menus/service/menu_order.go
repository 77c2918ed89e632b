// internals/features/cms/menus/service/menu_order.go
package service

import (
	"sort"

	"panditku_backend/internals/features/cms/menus/model"
)

// SortedForDisplay returns a copy ordered by the stored order value.
// Ties keep their relative input position so duplicate orders stay stable.
func SortedForDisplay(items []model.MenuItemModel) []model.MenuItemModel {
	out := make([]model.MenuItemModel, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MenuItemOrder < out[j].MenuItemOrder
	})
	return out
}

// SwapOrders exchanges the order values of the items at positions i and j
// in place. Out-of-range positions leave the slice untouched.
func SwapOrders(items []model.MenuItemModel, i, j int) {
	if i < 0 || j < 0 || i >= len(items) || j >= len(items) {
		return
	}
	items[i].MenuItemOrder, items[j].MenuItemOrder = items[j].MenuItemOrder, items[i].MenuItemOrder
}
