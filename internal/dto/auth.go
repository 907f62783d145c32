package dto

import (
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// LoginRequest carries the credentials typed on the login screen. Identifier is an
// email, a username or, for employees, a full name.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token         string           `json:"token"`
	ExpiresAt     time.Time        `json:"expiresAt"`
	Principal     domain.Principal `json:"principal"`
	LandingModule domain.ModuleTag `json:"landingModule"`
}

// ToLoginResponse converts a session to LoginResponse.
func ToLoginResponse(s *domain.Session) LoginResponse {
	return LoginResponse{
		Token:         s.Token,
		ExpiresAt:     s.ExpiresAt,
		Principal:     s.Principal,
		LandingModule: s.Principal.LandingModule(),
	}
}

// MeResponse describes the authenticated principal.
type MeResponse struct {
	Principal     domain.Principal `json:"principal"`
	LandingModule domain.ModuleTag `json:"landingModule"`
}
