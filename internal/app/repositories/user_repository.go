package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/pkg/apperrors"
)

// UserRepository stores the user accounts from the static dataset.
type UserRepository struct {
	byID    map[int64]*models.User
	byEmail map[string]*models.User
}

// NewUserRepository creates a new empty UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

// CreateUser adds a user account. The caller is responsible for hashing the
// password before the record is stored.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("%w: duplicate user ID %d", apperrors.ErrValidationFailed, user.ID)
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return fmt.Errorf("%w: duplicate email %q", apperrors.ErrValidationFailed, user.Email)
	}

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

// GetUserByID retrieves a user by their unique ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail retrieves a user by exact, case-sensitive email match
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetAllUsers returns every stored user account
func (r *UserRepository) GetAllUsers(ctx context.Context) []*models.User {
	users := make([]*models.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Count returns the number of stored user accounts
func (r *UserRepository) Count(ctx context.Context) int {
	return len(r.byID)
}
