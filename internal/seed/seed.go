package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/mertc/degreetrack/internal/app/models"
	appRepos "github.com/mertc/degreetrack/internal/app/repositories"
	"github.com/mertc/degreetrack/internal/pkg/auth"
)

//go:embed data/*.json
var dataFS embed.FS

// datasetUser mirrors the user records of the dataset files. The wire shape
// is fixed: password arrives as the plaintext fixture credential and is
// hashed before the record is stored.
type datasetUser struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	CGPA     *float64           `json:"cgpa"`
	Data     appModels.UserData `json:"data"`
}

// LoadDefaultData parses the embedded dataset files and populates the
// in-memory stores. It is called once at startup; integrity problems in the
// fixture (duplicate codes, requirement codes missing from the catalog,
// completed credits exceeding required) are logged loudly but do not abort
// the load, matching the graceful-degradation policy of the rest of the app.
func LoadDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Loading course catalog and user dataset...")

	if err := loadCourses(ctx, repos, lgr); err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	if err := loadRequirements(ctx, repos, lgr); err != nil {
		return fmt.Errorf("loading degree requirements: %w", err)
	}
	if err := loadUsers(ctx, repos, lgr); err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	validateDataset(ctx, repos, lgr)

	lgr.Info().
		Int("courses", repos.CourseRepository.Count(ctx)).
		Int("users", repos.UserRepository.Count(ctx)).
		Msg("Dataset loaded")
	return nil
}

func loadCourses(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	raw, err := dataFS.ReadFile("data/courses.json")
	if err != nil {
		return err
	}

	var courses []appModels.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return err
	}

	for i := range courses {
		if err := repos.CourseRepository.CreateCourse(ctx, &courses[i]); err != nil {
			// First entry wins on a normalized-code collision
			lgr.Warn().Err(err).Str("code", courses[i].Code).Msg("Skipping catalog entry")
		}
	}
	return nil
}

func loadRequirements(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	raw, err := dataFS.ReadFile("data/requirements.json")
	if err != nil {
		return err
	}

	var blocks map[string]appModels.DegreeRequirement
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return err
	}

	for name, block := range blocks {
		req := block
		req.Name = name
		if err := repos.RequirementRepository.CreateRequirement(ctx, &req); err != nil {
			lgr.Warn().Err(err).Str("name", name).Msg("Skipping requirement block")
		}
	}
	return nil
}

func loadUsers(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	raw, err := dataFS.ReadFile("data/users.json")
	if err != nil {
		return err
	}

	var users []datasetUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return err
	}

	var finalErr error
	for _, du := range users {
		hashed, err := auth.HashPassword(du.Password)
		if err != nil {
			lgr.Error().Err(err).Str("email", du.Email).Msg("Failed to hash fixture password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			ID:       du.ID,
			Name:     du.Name,
			Email:    du.Email,
			Password: hashed,
			CGPA:     du.CGPA,
			Data:     du.Data,
		}
		if err := repos.UserRepository.CreateUser(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", du.Email).Msg("Failed to store user")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

// validateDataset flags fixture integrity violations instead of silently
// accepting them. Violations are expected to be fixture bugs, not runtime
// conditions, so they are logged and the data is kept as-is.
func validateDataset(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) {
	for _, req := range repos.RequirementRepository.GetAllRequirements(ctx) {
		for _, code := range append(append([]string{}, req.Required...), req.Electives...) {
			if _, err := repos.CourseRepository.GetCourseByCode(ctx, code); err != nil {
				lgr.Warn().
					Str("requirement", req.Name).
					Str("code", code).
					Msg("Requirement references a course code missing from the catalog")
			}
		}
	}

	// creditsCompleted ≤ creditsRequired is not guaranteed by construction;
	// a violation means the fixture is inconsistent.
	for _, user := range repos.UserRepository.GetAllUsers(ctx) {
		for _, degree := range user.Degrees() {
			if degree.CreditsCompleted > degree.CreditsRequired {
				lgr.Warn().
					Int64("userId", user.ID).
					Str("degree", degree.Name).
					Int("creditsCompleted", degree.CreditsCompleted).
					Int("creditsRequired", degree.CreditsRequired).
					Msg("Completed credits exceed required credits in fixture data")
			}
		}
	}
}
