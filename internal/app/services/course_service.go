package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/app/repositories"
	"github.com/mertc/degreetrack/internal/pkg/helpers"
)

// CourseListQuery carries the catalog view parameters
type CourseListQuery struct {
	Search     string
	Categories []string
	Page       int
	Size       int
}

// CompletedCoursesQuery carries the completed-courses table parameters
type CompletedCoursesQuery struct {
	Search        string
	SortAscending bool
	Page          int
	Size          int
}

// CourseService resolves course codes against the catalog and produces the
// searchable, paginated course list views.
type CourseService interface {
	GetCourseByCode(ctx context.Context, code string, completed map[string]struct{}) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, query CourseListQuery, completed map[string]struct{}) (*dto.CourseListResponse, error)
	ListCompletedCourses(ctx context.Context, user *models.User, query CompletedCoursesQuery) (*dto.CompletedCourseListResponse, error)
	ResolveCourses(ctx context.Context, codes []string, completed map[string]struct{}, excludeCompleted bool) []dto.CourseResponse
	ListCategories(ctx context.Context) []string
	CourseName(ctx context.Context, code string) string
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// IsPrerequisiteCompleted reports whether the prerequisite's normalized code
// is in the completed set. Display-only; nothing enforces it as a hard
// enrollment constraint.
func IsPrerequisiteCompleted(code string, completed map[string]struct{}) bool {
	_, ok := completed[models.NormalizeCode(code)]
	return ok
}

// TermYear extracts the year from a "<Season> <Year>" term string: the
// trailing whitespace-delimited token parsed as an integer, 0 when it does
// not parse.
func TermYear(term string) int {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return 0
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0
	}
	return year
}

// CourseName resolves a code to its display name, falling back to the raw
// code when the catalog has no matching entry.
func (s *courseServiceImpl) CourseName(ctx context.Context, code string) string {
	course, err := s.courseRepo.GetCourseByCode(ctx, code)
	if err != nil {
		return code
	}
	return course.Name
}

// toCourseResponse builds the DTO for a course, resolving each prerequisite
// to its display name and completion state.
func (s *courseServiceImpl) toCourseResponse(ctx context.Context, course *models.Course, completed map[string]struct{}) dto.CourseResponse {
	prereqs := make([]dto.PrerequisiteStatus, 0, len(course.Prerequisites))
	for _, code := range course.Prerequisites {
		prereqs = append(prereqs, dto.PrerequisiteStatus{
			Code:      code,
			Name:      s.CourseName(ctx, code),
			Completed: IsPrerequisiteCompleted(code, completed),
		})
	}

	return dto.CourseResponse{
		Code:          course.Code,
		Name:          course.Name,
		Description:   course.Description,
		Category:      course.Category(),
		Prerequisites: prereqs,
	}
}

// GetCourseByCode resolves a single course
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string, completed map[string]struct{}) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetCourseByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := s.toCourseResponse(ctx, course, completed)
	return &resp, nil
}

// ResolveCourses maps codes to resolved courses. Codes with no catalog entry
// are dropped; with excludeCompleted set, codes in the completed set are
// dropped as well.
func (s *courseServiceImpl) ResolveCourses(ctx context.Context, codes []string, completed map[string]struct{}, excludeCompleted bool) []dto.CourseResponse {
	resolved := make([]dto.CourseResponse, 0, len(codes))
	for _, code := range codes {
		if excludeCompleted && IsPrerequisiteCompleted(code, completed) {
			continue
		}
		course, err := s.courseRepo.GetCourseByCode(ctx, code)
		if err != nil {
			continue
		}
		resolved = append(resolved, s.toCourseResponse(ctx, course, completed))
	}
	return resolved
}

// ListCourses produces the catalog view: category filter, then search, then
// pagination. Filtering or searching always restarts at page 1 on the
// client, so the clamped page index is all the server needs to guarantee.
func (s *courseServiceImpl) ListCourses(ctx context.Context, query CourseListQuery, completed map[string]struct{}) (*dto.CourseListResponse, error) {
	all := s.courseRepo.GetAllCourses(ctx)
	categories := s.ListCategories(ctx)
	selected := categorySet(query.Categories)
	filtered := make([]dto.CourseResponse, 0, len(all))
	for _, course := range all {
		if selected != nil {
			if _, ok := selected[course.Category()]; !ok {
				continue
			}
		}
		if !matchesSearch(query.Search, course.Code, course.Name, course.Description, course.Category()) {
			continue
		}
		filtered = append(filtered, s.toCourseResponse(ctx, course, completed))
	}

	start, end := helpers.CalculateSliceIndices(query.Page, query.Size, len(filtered))
	return &dto.CourseListResponse{
		Courses:    filtered[start:end],
		Categories: categories,
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), query.Page, query.Size),
	}, nil
}

// ListCategories returns the distinct categories of the full catalog, in
// catalog order of first appearance.
func (s *courseServiceImpl) ListCategories(ctx context.Context) []string {
	categories := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, course := range s.courseRepo.GetAllCourses(ctx) {
		cat := course.Category()
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}
	return categories
}

// categorySet turns the selected category names into a membership set. An
// empty selection means "all categories": nil is returned so callers can
// skip the filter entirely.
func categorySet(names []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// ListCompletedCourses produces the completed-courses table: search over the
// concatenated displayed fields, stable sort by term year, then pagination.
func (s *courseServiceImpl) ListCompletedCourses(ctx context.Context, user *models.User, query CompletedCoursesQuery) (*dto.CompletedCourseListResponse, error) {
	rows := make([]dto.CompletedCourseResponse, 0, len(user.Data.CompletedCourses))
	for _, cc := range user.Data.CompletedCourses {
		row := dto.CompletedCourseResponse{
			Code:       cc.Code,
			Name:       s.CourseName(ctx, cc.Code),
			Grade:      cc.Grade,
			Instructor: cc.Instructor,
			Term:       cc.Term,
		}
		if !matchesSearch(query.Search, row.Code, row.Name, row.Grade, row.Instructor, row.Term) {
			continue
		}
		rows = append(rows, row)
	}

	// Stable: entries from the same year keep their transcript order
	sort.SliceStable(rows, func(i, j int) bool {
		if query.SortAscending {
			return TermYear(rows[i].Term) < TermYear(rows[j].Term)
		}
		return TermYear(rows[i].Term) > TermYear(rows[j].Term)
	})

	start, end := helpers.CalculateSliceIndices(query.Page, query.Size, len(rows))
	return &dto.CompletedCourseListResponse{
		Courses:    rows[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(rows)), query.Page, query.Size),
	}, nil
}
