package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tradesim/tradesim_backend/cmd/tradesim_backend/docs"
	"github.com/tradesim/tradesim_backend/internal/core/ports"
	portssvc "github.com/tradesim/tradesim_backend/internal/core/ports/services"
	"github.com/tradesim/tradesim_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces. The account service is constructed by the caller and passed in; no
// handler owns business state of its own.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	accountService portssvc.AccountSvcFacade,
	oracle ports.PriceOracle,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, accountService, oracle)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, accountService portssvc.AccountSvcFacade, oracle ports.PriceOracle) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, accountService)
	registerMarketRoutes(v1, oracle)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidations adds binding validations used by the DTOs.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
