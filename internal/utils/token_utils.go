package utils

import (
	"fmt"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PrincipalClaims carries the resolved principal inside a session token so that
// the route guard never needs to re-resolve the identity.
type PrincipalClaims struct {
	Name           string      `json:"name"`
	Role           domain.Role `json:"role"`
	Email          string      `json:"email,omitempty"`
	Avatar         string      `json:"avatar,omitempty"`
	ClientUsername string      `json:"cun,omitempty"`
	EmployeeID     string      `json:"emp,omitempty"`
	TrusteeID      string      `json:"trs,omitempty"`
	InvestorID     string      `json:"inv,omitempty"`
	jwt.RegisteredClaims
}

// Principal rebuilds the principal the token was issued for.
func (c *PrincipalClaims) Principal() *domain.Principal {
	return &domain.Principal{
		ID:             c.Subject,
		Name:           c.Name,
		Role:           c.Role,
		Email:          c.Email,
		Avatar:         c.Avatar,
		ClientUsername: c.ClientUsername,
		EmployeeID:     c.EmployeeID,
		TrusteeID:      c.TrusteeID,
		InvestorID:     c.InvestorID,
	}
}

// GenerateJWT generates a signed session token for p. The returned token id (jti)
// is what logout revokes.
func GenerateJWT(p domain.Principal, secret string, expiryDuration time.Duration, issuer string) (string, string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	tokenID := uuid.NewString()
	claims := PrincipalClaims{
		Name:           p.Name,
		Role:           p.Role,
		Email:          p.Email,
		Avatar:         p.Avatar,
		ClientUsername: p.ClientUsername,
		EmployeeID:     p.EmployeeID,
		TrusteeID:      p.TrusteeID,
		InvestorID:     p.InvestorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, tokenID, expiresAt, nil
}

// ParseAndValidateJWT parses a token string, validates its signature and standard claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*PrincipalClaims, error) {
	claims := &PrincipalClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" || !claims.Role.IsKnown() {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
