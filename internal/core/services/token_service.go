package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
)

// tokenService issues signed session tokens and tracks the ones revoked by logout.
type tokenService struct {
	BaseService
	cfg         *config.Config
	sessionRepo portsrepo.SessionRepository
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, sessionRepo portsrepo.SessionRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		sessionRepo: sessionRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueSession(ctx context.Context, p domain.Principal) (*domain.Session, error) {
	token, tokenID, expiresAt, err := utils.GenerateJWT(p, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session token", slog.String("principal_id", p.ID))
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return &domain.Session{Token: token, TokenID: tokenID, ExpiresAt: expiresAt, Principal: p}, nil
}

func (s *tokenService) ParseSession(ctx context.Context, token string) (*domain.Principal, string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		s.LogDebug(ctx, "Rejected session token", slog.String("error", err.Error()))
		return nil, "", apperrors.ErrUnauthorized
	}
	revoked, err := s.sessionRepo.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check session revocation", slog.String("token_id", claims.ID))
		return nil, "", fmt.Errorf("failed to check session: %w", err)
	}
	if revoked {
		s.LogDebug(ctx, "Session token was revoked", slog.String("token_id", claims.ID))
		return nil, "", apperrors.ErrUnauthorized
	}
	return claims.Principal(), claims.ID, nil
}

func (s *tokenService) RevokeSession(ctx context.Context, token string) error {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.sessionRepo.RevokeSession(ctx, claims.ID, expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to revoke session", slog.String("token_id", claims.ID))
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.LogInfo(ctx, "Session revoked",
		slog.String("principal_id", claims.Subject),
		slog.String("token_id", claims.ID))
	return nil
}
