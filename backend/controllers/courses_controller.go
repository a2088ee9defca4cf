package controllers

import (
	"errors"

	"eduflow/backend/config"
	"eduflow/backend/models"
	"eduflow/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// courseUpdatableFields maps the JSON keys a course patch may carry to
// their columns. Any other key rejects the whole update.
var courseUpdatableFields = map[string]string{
	"title":           "title",
	"description":     "description",
	"category":        "category",
	"instructor":      "instructor",
	"instructorEmail": "instructor_email",
	"duration":        "duration",
	"level":           "level",
	"thumbnail":       "thumbnail",
	"isPublished":     "is_published",
	"rating":          "rating",
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	type CourseInput struct {
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		Category        string  `json:"category"`
		Instructor      string  `json:"instructor"`
		InstructorEmail string  `json:"instructorEmail"`
		Duration        float64 `json:"duration"`
		Level           string  `json:"level"`
		Thumbnail       string  `json:"thumbnail"`
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" || input.Description == "" || input.Category == "" ||
		input.Instructor == "" || input.InstructorEmail == "" || input.Duration == 0 {
		return utils.BadRequest(c, "Please provide all required fields")
	}

	if !models.IsValidCategory(input.Category) {
		return utils.BadRequest(c, "Invalid course category")
	}

	level := input.Level
	if level == "" {
		level = "Beginner"
	}
	if !models.IsValidLevel(level) {
		return utils.BadRequest(c, "Invalid course level")
	}

	course := models.Course{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Instructor:      input.Instructor,
		InstructorEmail: input.InstructorEmail,
		Duration:        input.Duration,
		Level:           level,
		Thumbnail:       input.Thumbnail,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusCreated, "Course created successfully", course)
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Course{}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Preload("EnrolledStudents")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}
	if isPublished := c.Query("isPublished"); isPublished != "" {
		query = query.Where("is_published = ?", isPublished == "true")
	}

	var courses []models.Course
	if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessList(c, courses, len(courses))
}

func (cc *CoursesController) GetCourseByID(c *fiber.Ctx) error {
	var course models.Course
	err := cc.DB.
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Preload("Modules.Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Preload("EnrolledStudents").
		First(&course, c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	filtered, err := utils.FilterUpdates(updates, courseUpdatableFields)
	if err != nil {
		return utils.BadRequest(c, "Invalid update fields")
	}

	var course models.Course
	if err := cc.DB.First(&course, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	if len(filtered) > 0 {
		if err := cc.DB.Model(&course).Updates(filtered).Error; err != nil {
			return utils.InternalServerError(c, err)
		}
	}

	if err := cc.DB.First(&course, course.ID).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusOK, "Course updated successfully", course)
}

// DeleteCourse removes the course, then every video that belongs to it.
// The two deletes are sequential and not wrapped in a transaction.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.First(&course, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	if err := cc.DB.Delete(&course).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	if err := cc.DB.Where("course_id = ?", course.ID).Delete(&models.Video{}).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Course and associated videos deleted successfully",
	})
}

func (cc *CoursesController) AddModule(c *fiber.Ctx) error {
	type ModuleInput struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	var input ModuleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" {
		return utils.BadRequest(c, "Module title is required")
	}

	var course models.Course
	if err := cc.DB.First(&course, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	var moduleCount int64
	cc.DB.Model(&models.CourseModule{}).Where("course_id = ?", course.ID).Count(&moduleCount)

	module := models.CourseModule{
		CourseID:      course.ID,
		Title:         input.Title,
		Description:   input.Description,
		SequenceOrder: int(moduleCount),
	}

	if err := cc.DB.Create(&module).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	if err := cc.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order ASC")
	}).First(&course, course.ID).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusOK, "Module added successfully", course)
}

func (cc *CoursesController) GetCourseStats(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.First(&course, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	var videoCount int64
	if err := cc.DB.Model(&models.Video{}).Where("course_id = ?", course.ID).Count(&videoCount).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	enrolled := cc.DB.Model(&course).Association("EnrolledStudents").Count()

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courseTitle":      course.Title,
		"totalVideos":      videoCount,
		"totalStudents":    course.TotalStudents,
		"rating":           course.Rating,
		"totalDuration":    course.Duration,
		"enrolledStudents": enrolled,
		"isPublished":      course.IsPublished,
	})
}

// EnrollStudent adds a student to the course and creates the initial
// progress record the tracker expects. Enrolling twice is a no-op for the
// progress record.
func (cc *CoursesController) EnrollStudent(c *fiber.Ctx) error {
	type EnrollInput struct {
		StudentID uint `json:"studentId"`
	}

	var input EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.StudentID == 0 {
		return utils.BadRequest(c, "Please provide studentId")
	}

	var course models.Course
	if err := cc.DB.First(&course, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, err)
	}

	var student models.User
	if err := cc.DB.First(&student, input.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Student not found")
		}
		return utils.InternalServerError(c, err)
	}

	var progress models.Progress
	err := cc.DB.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&progress).Error
	if err == nil {
		return utils.SuccessMessage(c, fiber.StatusOK, "Student already enrolled", progress)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, err)
	}

	if err := cc.DB.Model(&course).Association("EnrolledStudents").Append(&student); err != nil {
		return utils.InternalServerError(c, err)
	}
	if err := cc.DB.Model(&course).Update("total_students", gorm.Expr("total_students + 1")).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	var videoCount int64
	cc.DB.Model(&models.Video{}).Where("course_id = ?", course.ID).Count(&videoCount)
	totalLessons := int(videoCount)
	if totalLessons == 0 {
		totalLessons = 1
	}

	progress = models.Progress{
		StudentID:    student.ID,
		CourseID:     course.ID,
		TotalLessons: totalLessons,
		Status:       models.ProgressInProgress,
	}
	if err := cc.DB.Create(&progress).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return utils.SuccessMessage(c, fiber.StatusCreated, "Student enrolled successfully", progress)
}
