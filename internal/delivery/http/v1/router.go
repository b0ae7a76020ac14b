package v1

import (
	"net/http"
	"time"

	"jobpilot-backend/config"
	"jobpilot-backend/internal/delivery/http/middleware"
	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC     domain.ProfileUsecase
	PreferencesUC domain.PreferencesUsecase
	JobUC         domain.JobUsecase
	AnalysisUC    domain.AnalysisUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Usecases read typed context keys planted by the auth middleware;
	// without the fallback gin.Context.Value never reaches the request
	// context for non-string keys.
	r.ContextWithFallback = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: window,
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Analyze calls spend an upstream AI request each, so they get a
	// tighter per-user limit than the global IP one.
	analyzeLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitAnalyzeLimit,
		Window:    window,
		KeyPrefix: "rl:analyze:",
		KeyFunc: func(c *gin.Context) string {
			if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
				return userID
			}
			return c.ClientIP()
		},
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewPreferencesHandler(protected, deps.PreferencesUC)
		NewJobHandler(protected, deps.JobUC)
		NewAnalysisHandler(protected, deps.AnalysisUC, analyzeLimiter)
	}

	return r
}
