// internals/features/cms/blog/controller/blog_category_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/blog/dto"
	"panditku_backend/internals/features/cms/blog/model"
	helper "panditku_backend/internals/helpers"
)

type BlogCategoryController struct {
	DB *gorm.DB
}

func NewBlogCategoryController(db *gorm.DB) *BlogCategoryController {
	return &BlogCategoryController{DB: db}
}

func (ctrl *BlogCategoryController) ListCategories(c *fiber.Ctx) error {
	var rows []model.BlogCategoryModel
	if err := ctrl.DB.Order("blog_category_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	out := make([]dto.BlogCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToBlogCategoryDTO(r))
	}
	return helper.Success(c, "Categories fetched successfully", out)
}

func (ctrl *BlogCategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.UpsertBlogCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := req.Slug
	if base == "" {
		base = req.Name
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blog_categories", "blog_category_slug",
		helper.Slugify(base, 120), nil, 120)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	row := model.BlogCategoryModel{
		BlogCategoryName: strings.TrimSpace(req.Name),
		BlogCategorySlug: slug,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A category with this slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Category created successfully", dto.ToBlogCategoryDTO(row))
}

func (ctrl *BlogCategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.UpsertBlogCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.BlogCategoryModel
	if err := ctrl.DB.First(&row, "blog_category_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	row.BlogCategoryName = strings.TrimSpace(req.Name)
	if req.Slug != "" && req.Slug != row.BlogCategorySlug {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blog_categories", "blog_category_slug",
			helper.Slugify(req.Slug, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("blog_category_id <> ?", id) }, 120)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		row.BlogCategorySlug = slug
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.Success(c, "Category updated successfully", dto.ToBlogCategoryDTO(row))
}

// DeleteCategory detaches the category from its posts, then removes it.
func (ctrl *BlogCategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.BlogPostModel{}).
			Where("blog_post_category_id = ?", id).
			Update("blog_post_category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.BlogCategoryModel{}, "blog_category_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	return helper.Success(c, "Category deleted successfully", fiber.Map{"id": id})
}
