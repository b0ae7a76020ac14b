package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Auth configuration
	JWTSecret string
	JWKSUrl   string
	// Gemini configuration
	GeminiAPIKey string
	GeminiModel  string
	// Redis configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAnalyzeLimit    int
	// Matching engine thresholds
	MinSkillFragmentLength   int
	MinExperienceMatchLength int
	UnknownSalaryScore       int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Auth
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWKSUrl:   strings.TrimRight(getEnv("JWKS_URL", ""), "/"),
		// Gemini
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate limiting (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAnalyzeLimit:    getEnvInt("RATE_LIMIT_ANALYZE_THRESHOLD", 10),
		// Matching thresholds
		MinSkillFragmentLength:   getEnvInt("MATCH_MIN_SKILL_FRAGMENT_LENGTH", 3),
		MinExperienceMatchLength: getEnvInt("MATCH_MIN_EXPERIENCE_MATCH_LENGTH", 5),
		UnknownSalaryScore:       getEnvInt("MATCH_UNKNOWN_SALARY_SCORE", 50),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. Analyses will use deterministic fallback insights.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
