package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/app/services"
	"github.com/mertc/degreetrack/internal/middleware"
	"github.com/mertc/degreetrack/internal/pkg/helpers"
)

// Default page sizes per view, matching the client tables they feed
const (
	catalogPageSize          = 10
	completedCoursesPageSize = 4
)

// CourseController serves catalog and transcript views
type CourseController struct {
	courseService services.CourseService
	authService   services.AuthService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, authService services.AuthService) *CourseController {
	return &CourseController{
		courseService: courseService,
		authService:   authService,
	}
}

// ListCourses returns the paginated course catalog
// @Summary List catalog courses
// @Description Lists catalog courses with optional free-text search and category filter
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param q query string false "Free-text search term"
// @Param categories query string false "Comma-separated category names; empty means all"
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx, catalogPageSize)
	query := services.CourseListQuery{
		Search: ctx.Query("q"),
		Page:   page,
		Size:   size,
	}
	if raw := ctx.Query("categories"); raw != "" {
		query.Categories = strings.Split(raw, ",")
	}

	list, err := c.courseService.ListCourses(ctx.Request.Context(), query, user.CompletedCodeSet())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: list,
	})
}

// ListCategories returns the catalog's category filter options
// @Summary List course categories
// @Description Lists the distinct categories of the full catalog, in catalog order
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Categories retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /courses/categories [get]
func (c *CourseController) ListCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: c.courseService.ListCategories(ctx.Request.Context()),
	})
}

// GetCourse returns one catalog course
// @Summary Get course details
// @Description Resolves a course by code, case-insensitively, with prerequisite completion state
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param code path string true "Course code" example("CS201")
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	course, err := c.courseService.GetCourseByCode(ctx.Request.Context(), ctx.Param("code"), user.CompletedCodeSet())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: course,
	})
}

// ListCompletedCourses returns the student's transcript view
// @Summary List completed courses
// @Description Lists the student's completed courses with search, term-year sort and pagination
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param q query string false "Free-text search term"
// @Param sort query string false "Sort direction by term year" Enums(asc, desc) default(asc)
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(4)
// @Success 200 {object} dto.APIResponse{data=dto.CompletedCourseListResponse} "Completed courses retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/completed-courses [get]
func (c *CourseController) ListCompletedCourses(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx, completedCoursesPageSize)
	query := services.CompletedCoursesQuery{
		Search:        ctx.Query("q"),
		SortAscending: ctx.DefaultQuery("sort", "asc") != "desc",
		Page:          page,
		Size:          size,
	}

	list, err := c.courseService.ListCompletedCourses(ctx.Request.Context(), user, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: list,
	})
}

// ListRecommendedCourses returns the student's recommended courses
// @Summary List recommended courses
// @Description Resolves the student's recommended course codes with prerequisite completion state
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Recommended courses retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/recommended-courses [get]
func (c *CourseController) ListRecommendedCourses(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	courses := c.courseService.ResolveCourses(
		ctx.Request.Context(),
		user.Data.RecommendedCourses,
		user.CompletedCodeSet(),
		false,
	)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: courses,
	})
}
