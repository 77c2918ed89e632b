// internals/features/cms/settings/controller/site_setting_controller.go
package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/settings/dto"
	"panditku_backend/internals/features/cms/settings/model"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type SiteSettingController struct {
	DB *gorm.DB
}

func NewSiteSettingController(db *gorm.DB) *SiteSettingController {
	return &SiteSettingController{DB: db}
}

// =============================
// 📚 GET /api/public/settings & GET /api/a/settings
// =============================
func (ctrl *SiteSettingController) GetSettings(c *fiber.Ctx) error {
	var row model.SiteSettingModel
	if err := ctrl.DB.First(&row, "site_setting_singleton = TRUE").Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// No row yet: serve zero-value settings rather than a 404.
			return helper.Success(c, "Site settings fetched successfully", dto.ToSiteSettingsDTO(model.SiteSettingModel{}))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch site settings")
	}
	return helper.Success(c, "Site settings fetched successfully", dto.ToSiteSettingsDTO(row))
}

// =============================
// ♻️ PUT /api/a/settings
// =============================
// Upsert onto the singleton row. Whole-field last write wins; omitted
// fields keep their stored value.
func (ctrl *SiteSettingController) UpsertSettings(c *fiber.Ctx) error {
	var req dto.UpsertSiteSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	for name, raw := range map[string]json.RawMessage{
		"contact": req.Contact, "social": req.Social, "header": req.Header, "footer": req.Footer,
	} {
		if len(raw) > 0 && !json.Valid(raw) {
			return helper.Error(c, fiber.StatusBadRequest, "Field '"+name+"' is not valid JSON")
		}
	}

	var row model.SiteSettingModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_setting_singleton = TRUE").
			Attrs(model.SiteSettingModel{SiteSettingSingleton: true}).
			FirstOrCreate(&row).Error; err != nil {
			// Concurrent first write: the guard index rejected our insert,
			// the winner's row is there to load.
			if helper.IsUniqueViolation(err) {
				return tx.First(&row, "site_setting_singleton = TRUE").Error
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load site settings")
	}

	if req.SiteName != nil {
		row.SiteSettingSiteName = strings.TrimSpace(*req.SiteName)
	}
	if req.Tagline != nil {
		row.SiteSettingTagline = strings.TrimSpace(*req.Tagline)
	}
	if req.LogoURL != nil {
		row.SiteSettingLogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if len(req.Contact) > 0 {
		row.SiteSettingContactJSON = datatypes.JSON(req.Contact)
	}
	if len(req.Social) > 0 {
		row.SiteSettingSocialJSON = datatypes.JSON(req.Social)
	}
	if len(req.Header) > 0 {
		row.SiteSettingHeaderJSON = datatypes.JSON(req.Header)
	}
	if len(req.Footer) > 0 {
		row.SiteSettingFooterJSON = datatypes.JSON(req.Footer)
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save site settings")
	}
	return helper.Success(c, "Site settings saved successfully", dto.ToSiteSettingsDTO(row))
}
