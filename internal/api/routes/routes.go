package routes

import (
	"leadership-survey-backend/internal/api/handlers"
	"leadership-survey-backend/internal/api/middleware"
	"leadership-survey-backend/internal/config"
	"leadership-survey-backend/internal/repository"
	"leadership-survey-backend/internal/service"
	"leadership-survey-backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	surveyRepo := repository.NewSurveyRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	responseRepo := repository.NewResponseRepository(db)

	// Initialize services
	surveyService := service.NewSurveyService(surveyRepo, teamMemberRepo, questionRepo, token.NewRandomGenerator(), cfg.FrontendURL, validator)
	responseService := service.NewResponseService(responseRepo, teamMemberRepo, questionRepo, validator)
	analyticsService := service.NewAnalyticsService(surveyRepo, teamMemberRepo, responseRepo)

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(surveyService)
	responseHandler := handlers.NewResponseHandler(surveyService, responseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler()

	// Health check
	router.GET("/health", healthHandler.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		surveys := v1.Group("/surveys")
		{
			surveys.POST("/", surveyHandler.CreateSurvey)
			surveys.GET("/:survey_id/status", surveyHandler.GetSurveyStatus)
			surveys.GET("/:survey_id/analytics", analyticsHandler.GetSurveyAnalytics)
		}

		managers := v1.Group("/managers")
		{
			managers.GET("/:manager_id/analytics", analyticsHandler.GetManagerAnalytics)
		}

		survey := v1.Group("/survey")
		{
			survey.GET("/:token", responseHandler.GetSurveyByToken)
			survey.POST("/:token/response", responseHandler.SubmitResponse)
			survey.GET("/:token/responses", responseHandler.GetResponses)
		}
	}

	return router
}
