package repositories

import (
	"context"
	"fmt"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/pkg/apperrors"
)

// CourseRepository is the read-only store of catalog courses. Lookups are
// keyed by normalized code; catalog order is preserved for listings.
type CourseRepository struct {
	byCode  map[string]*models.Course
	ordered []*models.Course
}

// NewCourseRepository creates a new empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		byCode: make(map[string]*models.Course),
	}
}

// CreateCourse adds a course to the catalog. Two catalog entries with the
// same normalized code are a data-integrity violation; the first entry wins
// and the duplicate is rejected so the loader can flag it.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	key := models.NormalizeCode(course.Code)
	if key == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, exists := r.byCode[key]; exists {
		return fmt.Errorf("%w: duplicate course code %q", apperrors.ErrValidationFailed, course.Code)
	}

	r.byCode[key] = course
	r.ordered = append(r.ordered, course)
	return nil
}

// GetCourseByCode retrieves a course by code. The lookup is case-insensitive
// and ignores surrounding whitespace.
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, ok := r.byCode[models.NormalizeCode(code)]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetAllCourses returns the full catalog in insertion order
func (r *CourseRepository) GetAllCourses(ctx context.Context) []*models.Course {
	courses := make([]*models.Course, len(r.ordered))
	copy(courses, r.ordered)
	return courses
}

// Count returns the number of catalog entries
func (r *CourseRepository) Count(ctx context.Context) int {
	return len(r.ordered)
}
