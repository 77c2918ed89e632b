// internals/features/cms/blog/controller/blog_post_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/blog/dto"
	"panditku_backend/internals/features/cms/blog/model"
	"panditku_backend/internals/features/cms/blog/service"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type BlogPostController struct {
	DB *gorm.DB
}

func NewBlogPostController(db *gorm.DB) *BlogPostController {
	return &BlogPostController{DB: db}
}

// =============================
// 📚 GET /api/public/blog & GET /api/a/blog
// =============================
func (ctrl *BlogPostController) ListPosts(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := helper.ParsePagination(c, "blog_post_created_at", "desc")

		q := ctrl.DB.Model(&model.BlogPostModel{}).Preload("BlogPostCategory")
		if publicOnly {
			q = q.Where("blog_post_status = ?", model.BlogStatusPublished)
			p.SortBy = "blog_post_published_at"
		} else if status := strings.TrimSpace(c.Query("status")); status != "" {
			if !model.BlogStatus(status).Valid() {
				return helper.Error(c, fiber.StatusBadRequest, "Unknown blog status")
			}
			q = q.Where("blog_post_status = ?", status)
		}
		if catSlug := strings.TrimSpace(c.Query("category")); catSlug != "" {
			q = q.Where("blog_post_category_id IN (?)",
				ctrl.DB.Model(&model.BlogCategoryModel{}).
					Select("blog_category_id").
					Where("blog_category_slug = ?", catSlug))
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			q = q.Where("blog_post_title ILIKE ? OR blog_post_excerpt ILIKE ?", like, like)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to count blog posts")
		}

		var rows []model.BlogPostModel
		if err := q.
			Order(fmt.Sprintf("%s %s", blogSortColumn(p.SortBy), p.SortOrder)).
			Limit(p.PerPage).
			Offset(p.Offset()).
			Find(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog posts")
		}

		return helper.Success(c, "Blog posts fetched successfully", fiber.Map{
			"items":      dto.ToBlogPostDTOs(rows, false),
			"pagination": helper.PaginationMeta(p, total),
		})
	}
}

func blogSortColumn(requested string) string {
	switch requested {
	case "blog_post_title", "blog_post_published_at", "blog_post_created_at", "blog_post_updated_at":
		return requested
	default:
		return "blog_post_created_at"
	}
}

// =============================
// 📖 GET /api/public/blog/:slug
// =============================
func (ctrl *BlogPostController) GetPublishedPost(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var row model.BlogPostModel
	err := ctrl.DB.Preload("BlogPostCategory").
		Where("blog_post_slug = ? AND blog_post_status = ?", slug, model.BlogStatusPublished).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}
	return helper.Success(c, "Blog post fetched successfully", dto.ToBlogPostDTO(row, true))
}

// =============================
// 📖 GET /api/a/blog/:id
// =============================
func (ctrl *BlogPostController) GetPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid blog post ID")
	}

	var row model.BlogPostModel
	if err := ctrl.DB.Preload("BlogPostCategory").First(&row, "blog_post_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}
	return helper.Success(c, "Blog post fetched successfully", dto.ToBlogPostDTO(row, true))
}

// =============================
// ➕ POST /api/a/blog
// =============================
func (ctrl *BlogPostController) CreatePost(c *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	content := service.SanitizeContent(req.Content)
	if len(content) > model.MaxBlogContentLength {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Content exceeds the %d character limit", model.MaxBlogContentLength))
	}

	base := req.Slug
	if base == "" {
		base = req.Title
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blog_posts", "blog_post_slug",
		helper.Slugify(base, 220), nil, 220)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	status := req.Status
	if status == "" {
		status = string(model.BlogStatusDraft)
	}

	if req.CategoryID != nil {
		if err := ctrl.ensureCategoryExists(c, *req.CategoryID); err != nil {
			return err
		}
	}

	row := model.BlogPostModel{
		BlogPostTitle:         strings.TrimSpace(req.Title),
		BlogPostSlug:          slug,
		BlogPostExcerpt:       strings.TrimSpace(req.Excerpt),
		BlogPostContent:       content,
		BlogPostCoverImageURL: req.CoverImageURL,
		BlogPostCategoryID:    req.CategoryID,
		BlogPostStatus:        status,
		BlogPostPublishedAt:   service.ResolvePublishedAt("", status, nil, time.Now()),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A post with this slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create blog post")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Blog post created successfully", dto.ToBlogPostDTO(row, true))
}

// =============================
// ✏️ PUT /api/a/blog/:id
// =============================
func (ctrl *BlogPostController) UpdatePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid blog post ID")
	}

	var req dto.UpdateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.BlogPostModel
	if err := ctrl.DB.First(&row, "blog_post_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}

	if req.Title != nil {
		row.BlogPostTitle = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil && *req.Slug != row.BlogPostSlug {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blog_posts", "blog_post_slug",
			helper.Slugify(*req.Slug, 220),
			func(q *gorm.DB) *gorm.DB { return q.Where("blog_post_id <> ?", id) }, 220)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		row.BlogPostSlug = slug
	}
	if req.Excerpt != nil {
		row.BlogPostExcerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Content != nil {
		content := service.SanitizeContent(*req.Content)
		if len(content) > model.MaxBlogContentLength {
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("Content exceeds the %d character limit", model.MaxBlogContentLength))
		}
		row.BlogPostContent = content
	}
	if req.CoverImageURL != nil {
		row.BlogPostCoverImageURL = *req.CoverImageURL
	}
	if req.CategoryID != nil {
		if err := ctrl.ensureCategoryExists(c, *req.CategoryID); err != nil {
			return err
		}
		row.BlogPostCategoryID = req.CategoryID
	}
	if req.Status != nil && *req.Status != row.BlogPostStatus {
		row.BlogPostPublishedAt = service.ResolvePublishedAt(row.BlogPostStatus, *req.Status, row.BlogPostPublishedAt, time.Now())
		row.BlogPostStatus = *req.Status
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A post with this slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update blog post")
	}
	return helper.Success(c, "Blog post updated successfully", dto.ToBlogPostDTO(row, true))
}

// =============================
// 🗑️ DELETE /api/a/blog/:id
// =============================
func (ctrl *BlogPostController) DeletePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid blog post ID")
	}

	res := ctrl.DB.Delete(&model.BlogPostModel{}, "blog_post_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete blog post")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
	}
	return helper.Success(c, "Blog post deleted successfully", fiber.Map{"id": id})
}

func (ctrl *BlogPostController) ensureCategoryExists(c *fiber.Ctx, id uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&model.BlogCategoryModel{}).
		Where("blog_category_id = ?", id).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify category")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Blog category not found")
	}
	return nil
}
