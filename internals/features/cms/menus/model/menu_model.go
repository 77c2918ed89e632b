package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuModel is one named navigation menu (e.g. "header", "footer").
type MenuModel struct {
	MenuID uuid.UUID `gorm:"column:menu_id;type:uuid;default:gen_random_uuid();primaryKey" json:"menu_id"`

	MenuKey   string `gorm:"column:menu_key;type:varchar(50);not null;uniqueIndex" json:"menu_key"`
	MenuTitle string `gorm:"column:menu_title;type:varchar(100)" json:"menu_title"`

	MenuCreatedAt time.Time `gorm:"column:menu_created_at;autoCreateTime" json:"menu_created_at"`
	MenuUpdatedAt time.Time `gorm:"column:menu_updated_at;autoUpdateTime" json:"menu_updated_at"`

	MenuItems []MenuItemModel `gorm:"foreignKey:MenuItemMenuID;references:MenuID" json:"menu_items,omitempty"`
}

func (MenuModel) TableName() string {
	return "menus"
}

// MenuItemModel is one link in a menu. Order values are plain ints saved
// exactly as sent; gaps and duplicates are allowed, display sorting is
// done at read time.
type MenuItemModel struct {
	MenuItemID     uuid.UUID `gorm:"column:menu_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"menu_item_id"`
	MenuItemMenuID uuid.UUID `gorm:"column:menu_item_menu_id;type:uuid;not null;index" json:"menu_item_menu_id"`

	MenuItemLabel     string `gorm:"column:menu_item_label;type:varchar(100);not null" json:"menu_item_label"`
	MenuItemURL       string `gorm:"column:menu_item_url;type:varchar(500);not null" json:"menu_item_url"`
	MenuItemOrder     int    `gorm:"column:menu_item_order;not null;default:0" json:"menu_item_order"`
	MenuItemIsVisible bool   `gorm:"column:menu_item_is_visible;not null;default:true" json:"menu_item_is_visible"`
	MenuItemNewTab    bool   `gorm:"column:menu_item_new_tab;not null;default:false" json:"menu_item_new_tab"`

	MenuItemCreatedAt time.Time `gorm:"column:menu_item_created_at;autoCreateTime" json:"menu_item_created_at"`
	MenuItemUpdatedAt time.Time `gorm:"column:menu_item_updated_at;autoUpdateTime" json:"menu_item_updated_at"`
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}
