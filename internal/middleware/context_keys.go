package middleware

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
	tokenCtxKey     = contextKey("sessionToken")
)

// WithPrincipal stores the authenticated principal in ctx.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// GetPrincipalFromCtx retrieves the authenticated principal from a standard context.
func GetPrincipalFromCtx(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(*domain.Principal)
	return p, ok && p != nil
}

// GetPrincipalFromContext retrieves the authenticated principal from the Gin context.
func GetPrincipalFromContext(c *gin.Context) (*domain.Principal, bool) {
	return GetPrincipalFromCtx(c.Request.Context())
}

// GetSessionTokenFromContext returns the raw bearer token of the request.
func GetSessionTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(tokenCtxKey).(string)
	return token, ok && token != ""
}

func contextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}
