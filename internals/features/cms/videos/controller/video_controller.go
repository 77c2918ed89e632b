// internals/features/cms/videos/controller/video_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/videos/dto"
	"panditku_backend/internals/features/cms/videos/model"
	"panditku_backend/internals/features/cms/videos/service"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// =============================
// 📚 GET /api/public/videos & GET /api/a/videos
// =============================
// The public variant only lists visible rows; admins see everything.
func (ctrl *VideoController) ListVideos(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := ctrl.DB.Model(&model.VideoModel{})
		if publicOnly {
			q = q.Where("video_is_visible = TRUE")
		}
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			if !model.VideoCategory(category).Valid() {
				return helper.Error(c, fiber.StatusBadRequest, "Unknown video category")
			}
			q = q.Where("video_category = ?", category)
		}

		var rows []model.VideoModel
		if err := q.Order("video_sort_order ASC, video_created_at DESC").Find(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch videos")
		}
		return helper.Success(c, "Videos fetched successfully", dto.ToVideoDTOs(rows))
	}
}

// =============================
// ➕ POST /api/a/videos
// =============================
func (ctrl *VideoController) CreateVideo(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ytID, err := service.ExtractYoutubeID(req.URL)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	row := model.VideoModel{
		VideoTitle:        strings.TrimSpace(req.Title),
		VideoDescription:  strings.TrimSpace(req.Description),
		VideoCategory:     req.Category,
		VideoYoutubeID:    ytID,
		VideoURL:          service.WatchURL(ytID),
		VideoThumbnailURL: service.ThumbnailURL(ytID),
		VideoSortOrder:    req.SortOrder,
		VideoIsVisible:    visible,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create video")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Video created successfully", dto.ToVideoDTO(row))
}

// =============================
// ✏️ PUT /api/a/videos/:id
// =============================
func (ctrl *VideoController) UpdateVideo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.VideoModel
	if err := ctrl.DB.First(&row, "video_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}

	if req.Title != nil {
		row.VideoTitle = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		row.VideoDescription = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		row.VideoCategory = *req.Category
	}
	if req.URL != nil {
		ytID, err := service.ExtractYoutubeID(*req.URL)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		row.VideoYoutubeID = ytID
		row.VideoURL = service.WatchURL(ytID)
		row.VideoThumbnailURL = service.ThumbnailURL(ytID)
	}
	if req.SortOrder != nil {
		row.VideoSortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		row.VideoIsVisible = *req.IsVisible
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	return helper.Success(c, "Video updated successfully", dto.ToVideoDTO(row))
}

// =============================
// 🗑️ DELETE /api/a/videos/:id
// =============================
func (ctrl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	res := ctrl.DB.Delete(&model.VideoModel{}, "video_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Video not found")
	}
	return helper.Success(c, "Video deleted successfully", fiber.Map{"id": id})
}
