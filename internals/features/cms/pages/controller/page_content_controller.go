package controller

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"panditku_backend/internals/features/cms/pages/dto"
	"panditku_backend/internals/features/cms/pages/model"
	"panditku_backend/internals/features/cms/pages/schema"
	helper "panditku_backend/internals/helpers"
)

var validatePage = validator.New()

type PageContentController struct {
	DB *gorm.DB
}

func NewPageContentController(db *gorm.DB) *PageContentController {
	return &PageContentController{DB: db}
}

// =============================
// 📄 Get Page Content (public)
// =============================
// Returns the persisted document merged over the defaults, so the
// frontend always receives a structurally complete object.
func (ctrl *PageContentController) GetPageContent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !schema.IsKnownPage(slug) {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}

	defaults, _ := schema.Defaults(slug)

	var page model.PageModel
	err := ctrl.DB.First(&page, "page_slug = ?", slug).Error
	if err == gorm.ErrRecordNotFound {
		// never persisted: the defaults are the page
		return helper.Success(c, "OK", dto.PageContentDTO{
			PageSlug: slug,
			Content:  defaults,
		})
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	persisted, updatedAt, err := ctrl.loadSections(page.PageID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load page sections")
	}

	return helper.Success(c, "OK", dto.PageContentDTO{
		PageSlug:  slug,
		PageTitle: page.PageTitle,
		Content:   schema.Merge(persisted, defaults),
		UpdatedAt: updatedAt,
	})
}

// =============================
// 💾 Save Page Content (admin)
// =============================
// Upserts the full document in one transaction: partial section writes
// are never visible.
func (ctrl *PageContentController) SavePageContent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !schema.IsKnownPage(slug) {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}

	var body dto.SavePageContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePage.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.saveDocument(c, slug, body.Content); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Page content saved", fiber.Map{"page_slug": slug})
}

// =============================
// ✏️ Patch Page Content (admin)
// =============================
// Applies path-level edits on top of the current merged document, then
// persists the result. Invalid paths are safe no-ops.
func (ctrl *PageContentController) PatchPageContent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !schema.IsKnownPage(slug) {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}

	var body dto.PatchPageContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePage.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	defaults, _ := schema.Defaults(slug)
	docIn := defaults

	var page model.PageModel
	if err := ctrl.DB.First(&page, "page_slug = ?", slug).Error; err == nil {
		persisted, _, lerr := ctrl.loadSections(page.PageID.String())
		if lerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load page sections")
		}
		docIn = schema.Merge(persisted, defaults)
	} else if err != gorm.ErrRecordNotFound {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	doc := docIn
	for _, op := range body.Ops {
		switch op.Op {
		case "set":
			doc = schema.Set(doc, op.Path, op.Value)
		case "append":
			doc = schema.Append(doc, op.Path, op.Value)
		case "remove":
			doc = schema.RemoveAt(doc, op.Path, op.Index)
		case "swap":
			doc = schema.SwapAt(doc, op.Path, op.I, op.J)
		}
	}

	if err := ctrl.saveDocument(c, slug, doc); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Page content updated", dto.PageContentDTO{
		PageSlug: slug,
		Content:  doc,
	})
}

// ============================================================

func (ctrl *PageContentController) loadSections(pageID string) (map[string]any, time.Time, error) {
	var sections []model.PageSectionModel
	if err := ctrl.DB.Find(&sections, "page_section_page_id = ?", pageID).Error; err != nil {
		return nil, time.Time{}, err
	}

	doc := make(map[string]any, len(sections))
	var updatedAt time.Time
	for _, s := range sections {
		var content map[string]any
		if err := json.Unmarshal(s.PageSectionContent, &content); err != nil {
			// a corrupt section row falls back to defaults at merge time
			continue
		}
		doc[s.PageSectionKey] = content
		if s.PageSectionUpdatedAt.After(updatedAt) {
			updatedAt = s.PageSectionUpdatedAt
		}
	}
	return doc, updatedAt, nil
}

func (ctrl *PageContentController) saveDocument(c *fiber.Ctx, slug string, doc map[string]any) error {
	return ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// pages are created implicitly on first save
		page := model.PageModel{PageSlug: slug, PageTitle: slug}
		if err := tx.Where("page_slug = ?", slug).
			Attrs(model.PageModel{PageTitle: slug}).
			FirstOrCreate(&page).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve page")
		}

		keys := make([]string, 0, len(doc))
		for sectionKey, sectionVal := range doc {
			raw, err := json.Marshal(sectionVal)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Section "+sectionKey+" is not valid JSON")
			}
			row := model.PageSectionModel{
				PageSectionPageID:  page.PageID,
				PageSectionKey:     sectionKey,
				PageSectionType:    schema.SectionType(slug, sectionKey),
				PageSectionContent: datatypes.JSON(raw),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "page_section_page_id"},
					{Name: "page_section_key"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"page_section_content",
					"page_section_type",
					"page_section_updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to save section "+sectionKey)
			}
			keys = append(keys, sectionKey)
		}

		// sections dropped from the document are removed with it
		if len(keys) > 0 {
			if err := tx.Where("page_section_page_id = ? AND page_section_key NOT IN ?", page.PageID, keys).
				Delete(&model.PageSectionModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to prune stale sections")
			}
		}
		return nil
	})
}
