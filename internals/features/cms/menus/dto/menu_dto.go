package dto

import (
	"github.com/google/uuid"

	"panditku_backend/internals/features/cms/menus/model"
)

type MenuItemInput struct {
	// Omitted ID means a new item; a present ID keeps the row's identity
	// across reorders and label edits.
	ID        *uuid.UUID `json:"id"`
	Label     string     `json:"label" validate:"required,min=1,max=100"`
	URL       string     `json:"url" validate:"required,max=500"`
	Order     int        `json:"order"`
	IsVisible *bool      `json:"is_visible"`
	NewTab    bool       `json:"new_tab"`
}

type ReplaceMenuItemsRequest struct {
	Title string          `json:"title" validate:"omitempty,max=100"`
	Items []MenuItemInput `json:"items" validate:"dive"`
}

type MenuItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	Order     int       `json:"order"`
	IsVisible bool      `json:"is_visible"`
	NewTab    bool      `json:"new_tab"`
}

type MenuDTO struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Items []MenuItemDTO `json:"items"`
}

func ToMenuItemDTO(m model.MenuItemModel) MenuItemDTO {
	return MenuItemDTO{
		ID:        m.MenuItemID,
		Label:     m.MenuItemLabel,
		URL:       m.MenuItemURL,
		Order:     m.MenuItemOrder,
		IsVisible: m.MenuItemIsVisible,
		NewTab:    m.MenuItemNewTab,
	}
}

func ToMenuDTO(menu model.MenuModel, items []model.MenuItemModel) MenuDTO {
	d := MenuDTO{Key: menu.MenuKey, Title: menu.MenuTitle, Items: make([]MenuItemDTO, 0, len(items))}
	for _, it := range items {
		d.Items = append(d.Items, ToMenuItemDTO(it))
	}
	return d
}
