package services

import (
	"context"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/app/repositories"
)

// ProgressService computes degree-progress aggregates for a user
type ProgressService interface {
	Overview(ctx context.Context, user *models.User) (*dto.OverviewResponse, error)
	DegreeProgress(ctx context.Context, user *models.User) (*dto.DegreeProgressResponse, error)
}

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	requirementRepo *repositories.RequirementRepository
	courseService   CourseService
}

// NewProgressService creates a new progress service instance
func NewProgressService(requirementRepo *repositories.RequirementRepository, courseService CourseService) ProgressService {
	return &progressServiceImpl{
		requirementRepo: requirementRepo,
		courseService:   courseService,
	}
}

// TotalRequiredCredits sums creditsRequired across the user's declared
// degrees. A missing additional degree contributes zero.
func TotalRequiredCredits(user *models.User) int {
	total := user.Data.PrimaryDegree.CreditsRequired
	if user.Data.AdditionalDegree != nil {
		total += user.Data.AdditionalDegree.CreditsRequired
	}
	return total
}

// TotalCompletedCredits sums creditsCompleted across the user's declared
// degrees, analogously to TotalRequiredCredits.
func TotalCompletedCredits(user *models.User) int {
	total := user.Data.PrimaryDegree.CreditsCompleted
	if user.Data.AdditionalDegree != nil {
		total += user.Data.AdditionalDegree.CreditsCompleted
	}
	return total
}

// ClassesFromCredits converts a credit total to its class-count equivalent.
// One class is modelled as a fixed 3-credit unit; the division floors.
func ClassesFromCredits(credits int) int {
	return credits / CreditsPerClass
}

// FilterUncompleted returns the codes whose normalized form is not in the
// completed set. Pure; the input slice is never modified.
func FilterUncompleted(codes []string, completed map[string]struct{}) []string {
	remaining := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := completed[models.NormalizeCode(code)]; !ok {
			remaining = append(remaining, code)
		}
	}
	return remaining
}

// NewSectionProgress counts one requirement section. remaining must be the
// section's full code list minus the completed codes, which makes
// completed + remaining == total hold by construction. Completed codes that
// are not part of the section never affect the counts.
func NewSectionProgress(remaining, all []string, completed map[string]struct{}) dto.SectionProgress {
	completedClasses := 0
	for _, code := range all {
		if _, ok := completed[models.NormalizeCode(code)]; ok {
			completedClasses++
		}
	}

	return dto.SectionProgress{
		CompletedClasses: completedClasses,
		RemainingClasses: len(remaining),
		TotalClasses:     len(all),
		CompletedCredits: completedClasses * CreditsPerClass,
		RemainingCredits: len(remaining) * CreditsPerClass,
		TotalCredits:     len(all) * CreditsPerClass,
	}
}

// creditSummaries builds the credit and class aggregates for the user
func creditSummaries(user *models.User) (dto.CreditSummary, dto.ClassSummary) {
	required := TotalRequiredCredits(user)
	completed := TotalCompletedCredits(user)

	credits := dto.CreditSummary{
		Completed: completed,
		Required:  required,
		Remaining: required - completed,
	}
	classes := dto.ClassSummary{
		Completed: ClassesFromCredits(completed),
		Required:  ClassesFromCredits(required),
		Remaining: ClassesFromCredits(required) - ClassesFromCredits(completed),
	}
	return credits, classes
}

// newDegreeSummary converts a declared degree into its DTO form
func newDegreeSummary(degree models.Degree) dto.DegreeSummary {
	return dto.DegreeSummary{
		Name:             degree.Name,
		Type:             string(degree.Type),
		Concentration:    degree.Concentration,
		CreditsCompleted: degree.CreditsCompleted,
		CreditsRequired:  degree.CreditsRequired,
	}
}

// Overview computes the dashboard aggregates for the user
func (s *progressServiceImpl) Overview(ctx context.Context, user *models.User) (*dto.OverviewResponse, error) {
	credits, classes := creditSummaries(user)
	completed := user.CompletedCodeSet()

	resp := &dto.OverviewResponse{
		UserID:             user.ID,
		Name:               user.Name,
		CGPA:               user.CGPA,
		PrimaryDegree:      newDegreeSummary(user.Data.PrimaryDegree),
		Credits:            credits,
		Classes:            classes,
		RecommendedCourses: s.courseService.ResolveCourses(ctx, user.Data.RecommendedCourses, completed, false),
	}
	if user.Data.AdditionalDegree != nil {
		summary := newDegreeSummary(*user.Data.AdditionalDegree)
		resp.AdditionalDegree = &summary
	}
	return resp, nil
}

// DegreeProgress computes the per-degree requirement breakdown, including
// the nested concentration block when a degree declares one.
func (s *progressServiceImpl) DegreeProgress(ctx context.Context, user *models.User) (*dto.DegreeProgressResponse, error) {
	completed := user.CompletedCodeSet()
	credits, classes := creditSummaries(user)

	degrees := user.Degrees()
	blocks := make([]dto.DegreeProgressBlock, 0, len(degrees))
	for _, degree := range degrees {
		block := s.buildDegreeBlock(ctx, degree.Name, string(degree.Type), completed)

		if degree.Concentration != "" {
			conc := s.buildDegreeBlock(ctx, degree.Concentration, string(models.DegreeTypeConcentration), completed)
			block.Concentration = &conc
		}
		blocks = append(blocks, block)
	}

	return &dto.DegreeProgressResponse{
		Degrees: blocks,
		Credits: credits,
		Classes: classes,
	}, nil
}

// buildDegreeBlock assembles the required and elective sections for one
// requirement block. A degree name with no matching requirement yields empty
// sections rather than an error.
func (s *progressServiceImpl) buildDegreeBlock(ctx context.Context, name, degreeType string, completed map[string]struct{}) dto.DegreeProgressBlock {
	block := dto.DegreeProgressBlock{
		Name:      name,
		Type:      degreeType,
		Required:  dto.RequirementSection{Title: "Required Courses", RemainingCourses: []dto.CourseResponse{}},
		Electives: dto.RequirementSection{Title: "Elective Courses", RemainingCourses: []dto.CourseResponse{}},
	}

	// Unknown degree names degrade to empty sections, never an error.
	req, err := s.requirementRepo.GetRequirementByName(ctx, name)
	if err != nil {
		return block
	}

	if block.Type == "" {
		block.Type = string(req.Type)
	}
	block.Required = s.buildSection(ctx, "Required Courses", req.Required, completed)
	block.Electives = s.buildSection(ctx, "Elective Courses", req.Electives, completed)
	return block
}

func (s *progressServiceImpl) buildSection(ctx context.Context, title string, all []string, completed map[string]struct{}) dto.RequirementSection {
	remaining := FilterUncompleted(all, completed)
	return dto.RequirementSection{
		Title:            title,
		Progress:         NewSectionProgress(remaining, all, completed),
		RemainingCourses: s.courseService.ResolveCourses(ctx, remaining, completed, false),
	}
}
