package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/pkg/apperrors"
)

// RequirementRepository stores degree requirement blocks keyed by degree or
// concentration name.
type RequirementRepository struct {
	byName map[string]*models.DegreeRequirement
}

// NewRequirementRepository creates a new empty RequirementRepository
func NewRequirementRepository() *RequirementRepository {
	return &RequirementRepository{
		byName: make(map[string]*models.DegreeRequirement),
	}
}

// CreateRequirement adds a requirement block to the store
func (r *RequirementRepository) CreateRequirement(ctx context.Context, req *models.DegreeRequirement) error {
	if req.Name == "" {
		return fmt.Errorf("%w: requirement name cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, exists := r.byName[req.Name]; exists {
		return fmt.Errorf("%w: duplicate requirement %q", apperrors.ErrValidationFailed, req.Name)
	}

	r.byName[req.Name] = req
	return nil
}

// GetRequirementByName retrieves a requirement block by degree name. The
// name is the exact join key the user's Degree carries.
func (r *RequirementRepository) GetRequirementByName(ctx context.Context, name string) (*models.DegreeRequirement, error) {
	req, ok := r.byName[name]
	if !ok {
		return nil, apperrors.ErrRequirementNotFound
	}
	return req, nil
}

// GetAllRequirements returns every requirement block sorted by name
func (r *RequirementRepository) GetAllRequirements(ctx context.Context) []*models.DegreeRequirement {
	reqs := make([]*models.DegreeRequirement, 0, len(r.byName))
	for _, req := range r.byName {
		reqs = append(reqs, req)
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Name < reqs[j].Name })
	return reqs
}
