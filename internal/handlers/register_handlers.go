package handlers

import (
	"fmt"

	"github.com/SscSPs/camp_ledger_app/cmd/docs"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/middleware"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth(health))

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	apiLimiter, err := middleware.NewMemoryLimiter(cfg.APIRateLimit)
	if err != nil {
		return fmt.Errorf("api rate limit: %w", err)
	}

	public := r.Group("/api/v1")
	registerAuthRoutes(public, services.Auth, middleware.LoginRateLimit(loginLimiter))

	setupAPIV1Routes(r, cfg, services, middleware.RateLimit(apiLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the protected /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", limit, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	v1.GET("/catalog", getCatalog)
	registerClientRoutes(v1, services.Client)
	registerExpenseRoutes(v1, services.Expense)
	registerReportingRoutes(v1, services.Summary)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
