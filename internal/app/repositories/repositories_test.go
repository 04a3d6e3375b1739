package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/pkg/apperrors"
)

func TestCourseRepository_NormalizedLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository()

	require.NoError(t, repo.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Introduction to Programming"}))

	for _, code := range []string{"CS101", "cs101", " CS101 ", "cS101"} {
		course, err := repo.GetCourseByCode(ctx, code)
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, "CS101", course.Code)
	}

	_, err := repo.GetCourseByCode(ctx, "CS102")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseRepository_DuplicateCodeRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository()

	require.NoError(t, repo.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "First"}))

	// Same normalized code: the first entry wins
	err := repo.CreateCourse(ctx, &models.Course{Code: "cs101", Name: "Second"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	course, err := repo.GetCourseByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, "First", course.Name)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestCourseRepository_EmptyCodeRejected(t *testing.T) {
	repo := NewCourseRepository()
	err := repo.CreateCourse(context.Background(), &models.Course{Code: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseRepository_PreservesCatalogOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository()

	codes := []string{"CS101", "SE101", "MATH101", "CS102"}
	for _, code := range codes {
		require.NoError(t, repo.CreateCourse(ctx, &models.Course{Code: code}))
	}

	all := repo.GetAllCourses(ctx)
	require.Len(t, all, len(codes))
	for i, code := range codes {
		assert.Equal(t, code, all[i].Code)
	}
}

func TestRequirementRepository_ExactNameLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewRequirementRepository()

	require.NoError(t, repo.CreateRequirement(ctx, &models.DegreeRequirement{
		Name:     "Computer Science",
		Type:     models.DegreeTypeMajor,
		Required: []string{"CS101"},
	}))

	req, err := repo.GetRequirementByName(ctx, "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, models.DegreeTypeMajor, req.Type)

	// The join key is exact, not normalized
	_, err = repo.GetRequirementByName(ctx, "computer science")
	assert.ErrorIs(t, err, apperrors.ErrRequirementNotFound)
}

func TestRequirementRepository_DuplicateAndEmptyName(t *testing.T) {
	ctx := context.Background()
	repo := NewRequirementRepository()

	require.NoError(t, repo.CreateRequirement(ctx, &models.DegreeRequirement{Name: "Mathematics"}))
	assert.ErrorIs(t, repo.CreateRequirement(ctx, &models.DegreeRequirement{Name: "Mathematics"}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, repo.CreateRequirement(ctx, &models.DegreeRequirement{}), apperrors.ErrValidationFailed)
}

func TestUserRepository_LookupByIDAndEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.CreateUser(ctx, &models.User{ID: 1, Email: "a@cit.edu"}))
	require.NoError(t, repo.CreateUser(ctx, &models.User{ID: 2, Email: "b@cit.edu"}))

	byID, err := repo.GetUserByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b@cit.edu", byID.Email)

	byEmail, err := repo.GetUserByEmail(ctx, "a@cit.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byEmail.ID)

	// Email lookup is case-sensitive
	_, err = repo.GetUserByEmail(ctx, "A@cit.edu")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.GetUserByID(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_RejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.CreateUser(ctx, &models.User{ID: 1, Email: "a@cit.edu"}))

	assert.ErrorIs(t, repo.CreateUser(ctx, &models.User{ID: 0, Email: "x@cit.edu"}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, repo.CreateUser(ctx, &models.User{ID: 4}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, repo.CreateUser(ctx, &models.User{ID: 1, Email: "other@cit.edu"}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, repo.CreateUser(ctx, &models.User{ID: 5, Email: "a@cit.edu"}), apperrors.ErrValidationFailed)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestUserRepository_GetAllUsersSortedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, repo.CreateUser(ctx, &models.User{ID: id, Email: fmt.Sprintf("user%d@cit.edu", id)}))
	}

	users := repo.GetAllUsers(ctx)
	require.Len(t, users, 3)
	assert.Equal(t, int64(10), users[0].ID)
	assert.Equal(t, int64(20), users[1].ID)
	assert.Equal(t, int64(30), users[2].ID)
}
