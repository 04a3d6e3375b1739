package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/app/services"
	"github.com/mertc/degreetrack/internal/middleware"
)

// ProgressController serves the degree-progress views
type ProgressController struct {
	progressService services.ProgressService
	authService     services.AuthService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService, authService services.AuthService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
		authService:     authService,
	}
}

// currentUser resolves the authenticated user from the request context. It
// writes the error response itself and returns nil when resolution fails.
func currentUser(ctx *gin.Context, authService services.AuthService) *models.User {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return nil
	}

	user, err := authService.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil
	}
	return user
}

// Overview returns the dashboard aggregates
// @Summary Progress overview
// @Description Returns credit/class totals and recommended courses for the dashboard
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse} "Overview retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/progress [get]
func (c *ProgressController) Overview(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	overview, err := c.progressService.Overview(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: overview,
	})
}

// DegreeProgress returns the per-degree requirement breakdown
// @Summary Degree requirement breakdown
// @Description Returns required/elective sections with remaining courses for every declared degree and concentration
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DegreeProgressResponse} "Breakdown retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/degrees [get]
func (c *ProgressController) DegreeProgress(ctx *gin.Context) {
	user := currentUser(ctx, c.authService)
	if user == nil {
		return
	}

	progress, err := c.progressService.DegreeProgress(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: progress,
	})
}
