// internals/features/cms/menus/controller/menu_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/menus/dto"
	"panditku_backend/internals/features/cms/menus/model"
	"panditku_backend/internals/features/cms/menus/service"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// =============================
// 📚 GET /api/public/menus/:key
// =============================
// Public consumers receive visible items sorted for display.
func (ctrl *MenuController) GetPublicMenu(c *fiber.Ctx) error {
	key := normalizeMenuKey(c.Params("key"))

	menu, items, err := ctrl.loadMenu(c, key)
	if err != nil {
		return err
	}

	visible := items[:0:0]
	for _, it := range items {
		if it.MenuItemIsVisible {
			visible = append(visible, it)
		}
	}
	return helper.Success(c, "Menu fetched successfully", dto.ToMenuDTO(menu, service.SortedForDisplay(visible)))
}

// =============================
// 📚 GET /api/a/menus/:key
// =============================
// Admins see every item with raw order values, in display order.
func (ctrl *MenuController) GetMenu(c *fiber.Ctx) error {
	key := normalizeMenuKey(c.Params("key"))

	menu, items, err := ctrl.loadMenu(c, key)
	if err != nil {
		return err
	}
	return helper.Success(c, "Menu fetched successfully", dto.ToMenuDTO(menu, service.SortedForDisplay(items)))
}

// =============================
// ♻️ PUT /api/a/menus/:key/items
// =============================
// Full replace: the submitted list becomes the menu's item set. Items
// carrying a known ID keep that identity; the rest are inserted fresh;
// rows missing from the payload are deleted. Order values are written
// exactly as sent, gaps and all.
func (ctrl *MenuController) ReplaceMenuItems(c *fiber.Ctx) error {
	key := normalizeMenuKey(c.Params("key"))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Menu key is required")
	}

	var req dto.ReplaceMenuItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var menu model.MenuModel
	var saved []model.MenuItemModel

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(model.MenuModel{MenuKey: key}).
			Attrs(model.MenuModel{MenuTitle: req.Title}).
			FirstOrCreate(&menu).Error; err != nil {
			return err
		}
		if req.Title != "" && req.Title != menu.MenuTitle {
			menu.MenuTitle = req.Title
			if err := tx.Save(&menu).Error; err != nil {
				return err
			}
		}

		keep := make([]uuid.UUID, 0, len(req.Items))
		for _, in := range req.Items {
			visible := true
			if in.IsVisible != nil {
				visible = *in.IsVisible
			}

			item := model.MenuItemModel{
				MenuItemMenuID:    menu.MenuID,
				MenuItemLabel:     strings.TrimSpace(in.Label),
				MenuItemURL:       strings.TrimSpace(in.URL),
				MenuItemOrder:     in.Order,
				MenuItemIsVisible: visible,
				MenuItemNewTab:    in.NewTab,
			}

			if in.ID != nil {
				res := tx.Model(&model.MenuItemModel{}).
					Where("menu_item_id = ? AND menu_item_menu_id = ?", *in.ID, menu.MenuID).
					Updates(map[string]any{
						"menu_item_label":      item.MenuItemLabel,
						"menu_item_url":        item.MenuItemURL,
						"menu_item_order":      item.MenuItemOrder,
						"menu_item_is_visible": item.MenuItemIsVisible,
						"menu_item_new_tab":    item.MenuItemNewTab,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected > 0 {
					item.MenuItemID = *in.ID
					keep = append(keep, *in.ID)
					saved = append(saved, item)
					continue
				}
				// Unknown ID for this menu: treat as a new item.
			}

			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			keep = append(keep, item.MenuItemID)
			saved = append(saved, item)
		}

		prune := tx.Where("menu_item_menu_id = ?", menu.MenuID)
		if len(keep) > 0 {
			prune = prune.Where("menu_item_id NOT IN ?", keep)
		}
		return prune.Delete(&model.MenuItemModel{}).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save menu items")
	}

	return helper.Success(c, "Menu items saved successfully", dto.ToMenuDTO(menu, service.SortedForDisplay(saved)))
}

func (ctrl *MenuController) loadMenu(c *fiber.Ctx, key string) (model.MenuModel, []model.MenuItemModel, error) {
	var menu model.MenuModel
	if err := ctrl.DB.First(&menu, "menu_key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return menu, nil, helper.Error(c, fiber.StatusNotFound, "Menu not found")
		}
		return menu, nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch menu")
	}

	var items []model.MenuItemModel
	if err := ctrl.DB.Where("menu_item_menu_id = ?", menu.MenuID).Find(&items).Error; err != nil {
		return menu, nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch menu items")
	}
	return menu, items, nil
}

func normalizeMenuKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
