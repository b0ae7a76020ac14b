package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobpilot-backend/config"
	_ "jobpilot-backend/docs" // Important for Swagger
	v1 "jobpilot-backend/internal/delivery/http/v1"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/insight"
	"jobpilot-backend/internal/matching"
	"jobpilot-backend/internal/repository/postgres"
	"jobpilot-backend/internal/usecase"
	"jobpilot-backend/pkg/auth"
	"jobpilot-backend/pkg/database"
	"jobpilot-backend/pkg/logger"
	"jobpilot-backend/pkg/redis"
	"jobpilot-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           JobPilot API
// @version         1.0
// @description     Job matching and analysis backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobpilot backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	prefsRepo := postgres.NewPreferencesRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	analysisRepo := postgres.NewAnalysisRepository(dbPool)

	// 6. Setup Validation
	validate := validator.New()
	validation.RegisterValidators(validate)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(engine)
	}

	// 7. Setup AI Insight Generator (nil keeps analyses on the
	// deterministic fallback)
	var insightGen domain.InsightGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := insight.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Gemini client init failed, using fallback insights", "error", err)
		} else {
			insightGen = insight.NewGenerator(client)
			logger.Log.Info("AI insight generation enabled", "model", client.Model())
		}
	}

	// 8. Setup UseCases
	matchCfg := matching.Config{
		MinSkillFragmentLength:   cfg.MinSkillFragmentLength,
		MinExperienceMatchLength: cfg.MinExperienceMatchLength,
		UnknownSalaryScore:       cfg.UnknownSalaryScore,
	}
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	prefsUC := usecase.NewPreferencesUsecase(prefsRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	analysisUC := usecase.NewAnalysisUsecase(jobRepo, profileRepo, prefsRepo, analysisRepo, insightGen, matchCfg)

	// 9. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.JWKSUrl)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:     profileUC,
		PreferencesUC: prefsUC,
		JobUC:         jobUC,
		AnalysisUC:    analysisUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
