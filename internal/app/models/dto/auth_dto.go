package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// DegreeSummary represents a declared degree on a user profile
type DegreeSummary struct {
	Name             string `json:"name"`
	Type             string `json:"type,omitempty" example:"Major"`
	Concentration    string `json:"concentration,omitempty"`
	CreditsCompleted int    `json:"creditsCompleted"`
	CreditsRequired  int    `json:"creditsRequired"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	CGPA             *float64       `json:"cgpa"`
	PrimaryDegree    DegreeSummary  `json:"primaryDegree"`
	AdditionalDegree *DegreeSummary `json:"additionalDegree,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
