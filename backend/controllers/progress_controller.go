package controllers

import (
	"errors"
	"math"

	"eduflow/backend/config"
	"eduflow/backend/models"
	"eduflow/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetProgress returns the raw progress record for one (student, course)
// pair, or JSON null when the pair has no record yet.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	var progress models.Progress
	err := pc.DB.
		Where("student_id = ? AND course_id = ?", c.Params("studentId"), c.Params("courseId")).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return utils.InternalServerError(c, err)
	}

	return c.JSON(progress)
}

// GetDashboard aggregates every progress record a student has into one
// summary. The overall percentage is the rounded mean of the stored
// percentages, defined as 0 when the student has no records.
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	var progresses []models.Progress
	if err := pc.DB.Where("student_id = ?", c.Params("studentId")).Find(&progresses).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	totalCourses := len(progresses)

	completedCourses := 0
	sum := 0.0
	for _, p := range progresses {
		if p.Status == models.ProgressCompleted {
			completedCourses++
		}
		sum += p.Percentage
	}

	overallPercentage := 0
	if totalCourses > 0 {
		overallPercentage = int(math.Round(sum / float64(totalCourses)))
	}

	return c.JSON(fiber.Map{
		"totalCourses":      totalCourses,
		"completedCourses":  completedCourses,
		"inProgressCourses": totalCourses - completedCourses,
		"overallPercentage": overallPercentage,
	})
}

// UpdateProgress advances a student's course progress by one lesson.
// The percentage is recomputed from the counter (unrounded) and clamped
// to 100, at which point the record flips to Completed.
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	type UpdateInput struct {
		StudentID uint `json:"studentId"`
		CourseID  uint `json:"courseId"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var progress models.Progress
	err := pc.DB.
		Where("student_id = ? AND course_id = ?", input.StudentID, input.CourseID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Progress not found",
			})
		}
		return utils.InternalServerError(c, err)
	}

	progress.CompletedLessons++
	progress.Percentage = float64(progress.CompletedLessons) / float64(progress.TotalLessons) * 100

	if progress.Percentage >= 100 {
		progress.Percentage = 100
		progress.Status = models.ProgressCompleted
	}

	if err := pc.DB.Save(&progress).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(progress)
}
