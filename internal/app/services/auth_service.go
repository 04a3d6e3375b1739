package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertc/degreetrack/internal/app/models"
	"github.com/mertc/degreetrack/internal/app/models/dto"
	"github.com/mertc/degreetrack/internal/app/repositories"
	"github.com/mertc/degreetrack/internal/pkg/apperrors"
	"github.com/mertc/degreetrack/internal/pkg/auth"
)

// AuthService handles login, session restore and logout
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// refreshTokenEntry tracks an issued refresh token until it is used, revoked
// by logout, or expires.
type refreshTokenEntry struct {
	userID    int64
	expiresAt time.Time
}

// authServiceImpl implements the AuthService interface. The refresh-token
// table is the only mutable state in the application; the mutex is its
// concurrency discipline.
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger

	mu            sync.Mutex
	refreshTokens map[string]refreshTokenEntry
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		logger:        logger,
		refreshTokens: make(map[string]refreshTokenEntry),
	}
}

// NewUserResponse converts a user record into its profile DTO
func NewUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		CGPA:          user.CGPA,
		PrimaryDegree: newDegreeSummary(user.Data.PrimaryDegree),
	}
	if user.Data.AdditionalDegree != nil {
		summary := newDegreeSummary(*user.Data.AdditionalDegree)
		resp.AdditionalDegree = &summary
	}
	return resp
}

// Login verifies the credentials and issues the session token pair. The
// caller is told only that the credentials were invalid, never which half.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a live refresh token for a fresh token pair. The
// old refresh token is consumed.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	s.mu.Lock()
	entry, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	if time.Now().After(entry.expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, entry.userID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	return s.issueTokens(user)
}

// Logout revokes the refresh token. The access token itself is stateless;
// the client discards it.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.mu.Lock()
	delete(s.refreshTokens, refreshToken)
	s.mu.Unlock()
	return nil
}

// GetUserByID restores the full user record from a session's user ID
func (s *authServiceImpl) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *authServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to generate token pair")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	s.mu.Lock()
	s.refreshTokens[refreshToken] = refreshTokenEntry{
		userID:    user.ID,
		expiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	s.mu.Unlock()

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: NewUserResponse(user),
	}, nil
}
