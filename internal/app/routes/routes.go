package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mertc/degreetrack/internal/app/controllers"
	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	progressController *controllers.ProgressController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		// Course catalog
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/categories", courseController.ListCategories)
			courses.GET("/:code", courseController.GetCourse)
		}

		// Views over the authenticated student's own record
		me := authenticated.Group("/me")
		{
			me.GET("/progress", progressController.Overview)
			me.GET("/degrees", progressController.DegreeProgress)
			me.GET("/completed-courses", courseController.ListCompletedCourses)
			me.GET("/recommended-courses", courseController.ListRecommendedCourses)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
