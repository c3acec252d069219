package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"formmaker-api/internal/handler"
	"formmaker-api/internal/metrics"
	"formmaker-api/internal/middleware"
	"formmaker-api/internal/repository"
	"formmaker-api/internal/service"
)

// Config holds the dependencies needed to build the HTTP router
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	AdminSecret    string
	AllowedOrigins []string
	BasePath       string
}

// Setup builds the gin engine with all routes and middleware wired
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Initialize repositories
	formRepo := repository.NewFormRepository(cfg.DB)
	responseRepo := repository.NewResponseRepository(cfg.DB)

	// Initialize services
	formService := service.NewFormService(formRepo, cfg.Redis, cfg.Metrics, cfg.Logger)
	submissionService := service.NewSubmissionService(formRepo, responseRepo, cfg.Metrics, cfg.Logger)
	statsService := service.NewStatsService(formRepo, responseRepo)
	exportService := service.NewExportService(formRepo, responseRepo)

	// Initialize handlers
	formHandler := handler.NewFormHandler(formService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	responseHandler := handler.NewResponseHandler(submissionService, exportService)
	adminHandler := handler.NewAdminHandler(formService, statsService)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	// Operational endpoints at the root, outside the base path
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		// Same endpoints under the base path for ingress-routed probes
		root.GET("/health", healthHandler.Health)
		root.GET("/ready", healthHandler.Ready)
		root.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := root.Group("/api")
	{
		api.GET("/forms", formHandler.ListForms)
		api.POST("/forms", formHandler.CreateForm)
		api.POST("/forms/submit", submissionHandler.SubmitForm)
		api.GET("/forms/:formId", formHandler.GetForm)
		api.PUT("/forms/:formId", formHandler.UpdateForm)
		api.DELETE("/forms/:formId", formHandler.DeleteForm)

		api.GET("/responses", responseHandler.ListResponses)
		api.GET("/responses/export", responseHandler.ExportResponses)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminSecret))
		{
			admin.GET("/forms", adminHandler.ListAllForms)
			admin.GET("/stats", adminHandler.GetStats)
		}
	}

	return r
}
