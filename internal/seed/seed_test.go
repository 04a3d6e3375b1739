package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRepos "github.com/mertc/degreetrack/internal/app/repositories"
	"github.com/mertc/degreetrack/internal/pkg/auth"
)

func loadedRepos(t *testing.T) *appRepos.Repositories {
	t.Helper()
	repos := appRepos.NewRepositories()
	require.NoError(t, LoadDefaultData(context.Background(), repos, zerolog.Nop()))
	return repos
}

func TestLoadDefaultData_Counts(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	assert.Equal(t, 66, repos.CourseRepository.Count(ctx))
	assert.Equal(t, 3, repos.UserRepository.Count(ctx))
	assert.Len(t, repos.RequirementRepository.GetAllRequirements(ctx), 5)
}

func TestLoadDefaultData_PasswordsAreHashed(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	user, err := repos.UserRepository.GetUserByEmail(ctx, "markh@cit.edu")
	require.NoError(t, err)

	// The plaintext fixture credential never reaches the store
	assert.NotEqual(t, "markh123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "markh123"))
	assert.False(t, auth.CheckPassword(user.Password, "wrong"))
}

func TestLoadDefaultData_UserRecords(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	mark, err := repos.UserRepository.GetUserByID(ctx, 39429183)
	require.NoError(t, err)
	assert.Equal(t, "Mark Houston", mark.Name)
	assert.Nil(t, mark.CGPA)
	assert.Empty(t, mark.Data.CompletedCourses)
	assert.Equal(t, "Computer Science", mark.Data.PrimaryDegree.Name)
	assert.Nil(t, mark.Data.AdditionalDegree)
	assert.NotEmpty(t, mark.Data.RecommendedCourses)

	nolan, err := repos.UserRepository.GetUserByID(ctx, 13849131)
	require.NoError(t, err)
	require.NotNil(t, nolan.CGPA)
	assert.InDelta(t, 3.8, *nolan.CGPA, 0.001)
	assert.Len(t, nolan.Data.CompletedCourses, 25)
	require.NotNil(t, nolan.Data.AdditionalDegree)
	assert.Equal(t, "Data Science", nolan.Data.AdditionalDegree.Name)
	assert.Equal(t, "Machine Learning", nolan.Data.AdditionalDegree.Concentration)

	angela, err := repos.UserRepository.GetUserByID(ctx, 95281937)
	require.NoError(t, err)
	assert.Len(t, angela.Data.CompletedCourses, 31)
	require.NotNil(t, angela.Data.AdditionalDegree)
	assert.Equal(t, "Mathematics", angela.Data.AdditionalDegree.Name)
}

func TestLoadDefaultData_RequirementNamesFromKeys(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	req, err := repos.RequirementRepository.GetRequirementByName(ctx, "Machine Learning")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", req.Name)
	assert.Equal(t, "Concentration", string(req.Type))
	assert.Len(t, req.Required, 4)
	assert.Len(t, req.Electives, 2)
}

func TestLoadDefaultData_RequirementCodesResolve(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	// Every code a requirement block references must exist in the catalog
	for _, req := range repos.RequirementRepository.GetAllRequirements(ctx) {
		for _, code := range append(append([]string{}, req.Required...), req.Electives...) {
			_, err := repos.CourseRepository.GetCourseByCode(ctx, code)
			assert.NoError(t, err, "requirement %q references unknown course %q", req.Name, code)
		}
	}
}

func TestLoadDefaultData_CompletedCoursesResolve(t *testing.T) {
	ctx := context.Background()
	repos := loadedRepos(t)

	for _, user := range repos.UserRepository.GetAllUsers(ctx) {
		for _, cc := range user.Data.CompletedCourses {
			_, err := repos.CourseRepository.GetCourseByCode(ctx, cc.Code)
			assert.NoError(t, err, "user %d completed unknown course %q", user.ID, cc.Code)
		}
		for _, code := range user.Data.RecommendedCourses {
			_, err := repos.CourseRepository.GetCourseByCode(ctx, code)
			assert.NoError(t, err, "user %d recommends unknown course %q", user.ID, code)
		}
	}
}
