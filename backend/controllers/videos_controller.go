package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"eduflow/backend/config"
	"eduflow/backend/models"
	"eduflow/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideosController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewVideosController(db *gorm.DB, cfg *config.Config) *VideosController {
	return &VideosController{DB: db, Cfg: cfg}
}

var videoUpdatableFields = map[string]string{
	"title":       "title",
	"description": "description",
	"duration":    "duration",
	"thumbnail":   "thumbnail",
	"order":       "sequence_order",
	"module":      "module",
	"section":     "section",
	"isPublished": "is_published",
}

// UploadVideo accepts either a multipart upload (file field "video") or a
// JSON body carrying an external videoUrl.
func (vc *VideosController) UploadVideo(c *fiber.Ctx) error {
	type VideoInput struct {
		Title       string  `json:"title" form:"title"`
		Description string  `json:"description" form:"description"`
		CourseID    uint    `json:"courseId" form:"courseId"`
		VideoURL    string  `json:"videoUrl" form:"videoUrl"`
		Duration    float64 `json:"duration" form:"duration"`
		Thumbnail   string  `json:"thumbnail" form:"thumbnail"`
		Order       int     `json:"order" form:"order"`
		Module      string  `json:"module" form:"module"`
		Section     string  `json:"section" form:"section"`
		UploadedBy  string  `json:"uploadedBy" form:"uploadedBy"`
	}

	var input VideoInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	if input.Title == "" || input.CourseID == 0 || input.Duration == 0 || input.UploadedBy == "" {
		return utils.BadRequest(c, "Please provide title, courseId, duration, and uploadedBy")
	}

	var course models.Course
	if err := vc.DB.First(&course, input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	video := models.Video{
		Title:         input.Title,
		Description:   input.Description,
		CourseID:      input.CourseID,
		Duration:      input.Duration,
		Thumbnail:     input.Thumbnail,
		SequenceOrder: input.Order,
		Module:        input.Module,
		Section:       input.Section,
		UploadedBy:    input.UploadedBy,
	}

	if file, err := c.FormFile("video"); err == nil && file != nil {
		mimeType := file.Header.Get("Content-Type")
		if mimeType != "" && !strings.HasPrefix(mimeType, "video/") {
			return utils.BadRequest(c, "Only video files are allowed")
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(vc.Cfg.UploadDir, filename)); err != nil {
			return utils.InternalServerError(c, err)
		}

		video.VideoURL = fmt.Sprintf("/%s/%s", vc.Cfg.UploadDir, filename)
		video.FileSize = file.Size
		video.MimeType = mimeType
	} else {
		video.VideoURL = input.VideoURL
	}

	if video.VideoURL == "" {
		return utils.BadRequest(c, "Video URL or file is required")
	}

	if err := vc.DB.Create(&video).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusCreated, "Video uploaded successfully", video)
}

func (vc *VideosController) GetVideos(c *fiber.Ctx) error {
	query := vc.DB.Model(&models.Video{})

	if courseID := c.Query("courseId"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if isPublished := c.Query("isPublished"); isPublished != "" {
		query = query.Where("is_published = ?", isPublished == "true")
	}

	var videos []models.Video
	if err := query.Order("sequence_order ASC, created_at DESC").Find(&videos).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessList(c, videos, len(videos))
}

// GetVideoByID returns one video and counts the fetch as a view. The
// counter is bumped with a single UPDATE expression so concurrent fetches
// cannot lose increments.
func (vc *VideosController) GetVideoByID(c *fiber.Ctx) error {
	id := c.Params("id")

	result := vc.DB.Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return utils.InternalServerError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Video not found")
	}

	var video models.Video
	if err := vc.DB.Preload("Questions").First(&video, id).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, video)
}

func (vc *VideosController) GetVideosByCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := vc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	var videos []models.Video
	if err := vc.DB.Where("course_id = ?", course.ID).
		Order("sequence_order ASC").
		Find(&videos).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessList(c, videos, len(videos))
}

func (vc *VideosController) UpdateVideo(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	filtered, err := utils.FilterUpdates(updates, videoUpdatableFields)
	if err != nil {
		return utils.BadRequest(c, "Invalid update fields")
	}

	var video models.Video
	if err := vc.DB.First(&video, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, err)
	}

	if len(filtered) > 0 {
		if err := vc.DB.Model(&video).Updates(filtered).Error; err != nil {
			return utils.InternalServerError(c, err)
		}
	}

	if err := vc.DB.First(&video, video.ID).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusOK, "Video updated successfully", video)
}

func (vc *VideosController) DeleteVideo(c *fiber.Ctx) error {
	var video models.Video
	if err := vc.DB.First(&video, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, err)
	}

	if err := vc.DB.Delete(&video).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Video deleted successfully",
	})
}

// ReorderVideos sets every listed video's order to its position in the
// list. Updates are applied one at a time; videos missing from the list
// keep their previous order value.
func (vc *VideosController) ReorderVideos(c *fiber.Ctx) error {
	type ReorderInput struct {
		VideoOrder []uint `json:"videoOrder"`
	}

	var input ReorderInput
	if err := c.BodyParser(&input); err != nil || input.VideoOrder == nil {
		return utils.BadRequest(c, "videoOrder must be an array of video IDs")
	}

	for position, videoID := range input.VideoOrder {
		if err := vc.DB.Model(&models.Video{}).
			Where("id = ?", videoID).
			UpdateColumn("sequence_order", position).Error; err != nil {
			return utils.InternalServerError(c, err)
		}
	}

	var videos []models.Video
	if err := vc.DB.Where("course_id = ?", c.Params("courseId")).
		Order("sequence_order ASC").
		Find(&videos).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusOK, "Videos reordered successfully", videos)
}

func (vc *VideosController) GetVideoAnalytics(c *fiber.Ctx) error {
	var video models.Video
	if err := vc.DB.First(&video, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"videoTitle":  video.Title,
		"viewCount":   video.ViewCount,
		"duration":    video.Duration,
		"courseId":    video.CourseID,
		"uploadedBy":  video.UploadedBy,
		"createdAt":   video.CreatedAt,
		"isPublished": video.IsPublished,
		"fileSize":    video.FileSize,
	})
}
