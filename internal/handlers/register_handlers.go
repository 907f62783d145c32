package handlers

import (
	"log/slog"
	"net/http"

	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes. health may be nil when no
// external store is configured.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	posthogClient *utils.PosthogClientWrapper,
) error {
	r.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromContext(c).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := registerAuthRoutes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	setupAPIV1Routes(r, services, posthogClient)
	return nil
}

// registerAuthRoutes mounts the public, rate limited login endpoint.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) error {
	h := NewAuthHandler(services.Identity, services.Token, posthogClient)

	loginLimiter, err := middleware.NewLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}
	r.POST("/auth/login", middleware.RateLimit(loginLimiter), h.Login)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token))

	auth := NewAuthHandler(services.Identity, services.Token, posthogClient)
	v1.POST("/auth/logout", auth.Logout)
	v1.GET("/me", auth.Me)

	registerPermissionRoutes(v1, services, posthogClient)
	registerProjectRoutes(v1, services.Project)
	registerTransactionRoutes(v1, services.Transaction)
	registerLedgerRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)
}
