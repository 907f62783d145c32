package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.RouteGuardSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeModule checks that the principal may view module.
func (s *BaseService) AuthorizeModule(ctx context.Context, p domain.Principal, module domain.ModuleTag) error {
	if s.Authorizer != nil {
		return s.Authorizer.RequireModule(ctx, p, module)
	}
	s.LogDebug(ctx, "No route guard provided, access granted by default",
		slog.String("principal_id", p.ID),
		slog.String("role", string(p.Role)),
		slog.String("module", string(module)))
	return nil
}

// AuthorizeOwnerOrModule lets a portal principal read its own records and staff
// read anyone's when they may view module.
func (s *BaseService) AuthorizeOwnerOrModule(ctx context.Context, p domain.Principal, owns bool, module domain.ModuleTag) error {
	if owns {
		return nil
	}
	if p.Role.IsPortal() {
		s.LogWarn(ctx, "Portal principal asked for a record it does not own",
			slog.String("principal_id", p.ID),
			slog.String("role", string(p.Role)),
			slog.String("module", string(module)))
		return apperrors.ErrForbidden
	}
	return s.AuthorizeModule(ctx, p, module)
}
