package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/salilgupta4/absoms-backend/cmd/docs"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
	"github.com/salilgupta4/absoms-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// API key auth runs first; requests it authenticates skip the JWT check.
	// Role enforcement runs after authentication so the user ID is set.
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(services.APIToken),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RequireWriteAccess(services.User),
	)

	registerUserRoutes(v1, services.User)
	registerAPITokenRoutes(v1, services.APIToken)

	registerCustomerRoutes(v1, services.Customer)
	registerProductRoutes(v1, services.Product)

	registerQuoteRoutes(v1, services.Quote)
	registerSalesOrderRoutes(v1, services.SalesOrder, services.DeliveryOrder)
	registerDeliveryOrderRoutes(v1, services.DeliveryOrder)
	registerPurchaseOrderRoutes(v1, services.PurchaseOrder)

	registerEmployeeRoutes(v1, services.Employee)
	registerPayrollRoutes(v1, services.Payroll)
	registerAdvanceRoutes(v1, services.Advance)
	registerLeaveRoutes(v1, services.Leave)

	registerSettingsRoutes(v1, services.Settings)
	registerNumberingRoutes(v1, services.Numbering)
	registerExportRoutes(v1, services.Export)
	registerPDFRoutes(v1, services.PDF)
	registerReportingRoutes(v1, services.Reporting)
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
