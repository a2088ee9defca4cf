package routes

import (
	"eduflow/backend/config"
	"eduflow/backend/controllers"
	"eduflow/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authMiddleware, authController.GetCurrentUser)
	app.Post("/api/auth/logout", authController.Logout)

	// Course routes
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := app.Group("/api/courses")
	courses.Post("/", coursesController.CreateCourse)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id/stats", coursesController.GetCourseStats)
	courses.Get("/:id", coursesController.GetCourseByID)
	courses.Put("/:id", coursesController.UpdateCourse)
	courses.Delete("/:id", coursesController.DeleteCourse)
	courses.Post("/:id/modules", coursesController.AddModule)
	courses.Post("/:id/enroll", coursesController.EnrollStudent)

	// Video routes
	videosController := controllers.NewVideosController(db, cfg)
	videos := app.Group("/api/videos")
	videos.Post("/", videosController.UploadVideo)
	videos.Get("/course/:courseId", videosController.GetVideosByCourse)
	videos.Put("/course/:courseId/reorder", videosController.ReorderVideos)
	videos.Get("/:id/analytics", videosController.GetVideoAnalytics)
	videos.Get("/:id", videosController.GetVideoByID)
	videos.Put("/:id", videosController.UpdateVideo)
	videos.Delete("/:id", videosController.DeleteVideo)
	videos.Get("/", videosController.GetVideos)

	// Question routes
	questionsController := controllers.NewQuestionsController(db, cfg)
	question := app.Group("/api/question")
	question.Post("/add", questionsController.AddQuestion)
	question.Post("/validate", questionsController.ValidateAnswers)
	question.Get("/:videoId", questionsController.GetQuestionsByVideo)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/api/progress")
	progress.Get("/dashboard/:studentId", progressController.GetDashboard)
	progress.Post("/update", progressController.UpdateProgress)
	progress.Get("/:studentId/:courseId", progressController.GetProgress)
}
