package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobpilot-backend/config"
	v1 "jobpilot-backend/internal/delivery/http/v1"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/usecase"
	"jobpilot-backend/pkg/auth"
	"jobpilot-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "router-test-secret"

type MockPreferencesRepo struct {
	mock.Mock
}

func (m *MockPreferencesRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPreferences), args.Error(1)
}

func (m *MockPreferencesRepo) Upsert(ctx context.Context, prefs *domain.JobPreferences) error {
	return m.Called(ctx, prefs).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func newTestRouter(prefsRepo domain.PreferencesRepository, profileRepo domain.ProfileRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	validate := validator.New()
	return v1.NewRouter(v1.RouterDeps{
		ProfileUC:     usecase.NewProfileUsecase(profileRepo, validate),
		PreferencesUC: usecase.NewPreferencesUsecase(prefsRepo, validate),
		JWKSProvider:  auth.NewProvider(""),
		Config: &config.Config{
			JWTSecret:                testJWTSecret,
			FrontendURL:              "http://localhost:3000",
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 1000,
			RateLimitAnalyzeLimit:    100,
		},
	})
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.com",
	}).SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return "Bearer " + token
}

// The ownership guards in the usecases read the user id through the
// context they are handed, which over HTTP is the gin context itself.
// These tests go through the full router so a request authenticated by
// the middleware must reach the repositories, not die on the guard.
func TestProtectedRoutesSeeAuthenticatedUser(t *testing.T) {
	t.Run("Should serve preferences to the token owner", func(t *testing.T) {
		prefsRepo := new(MockPreferencesRepo)
		prefsRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.JobPreferences{
			UserID:           "user1",
			RemotePreference: domain.RemotePrefAny,
		}, nil)
		router := newTestRouter(prefsRepo, new(MockProfileRepo))

		req := httptest.NewRequest(http.MethodGet, "/v1/preferences", nil)
		req.Header.Set("Authorization", bearerToken(t, "user1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"user_id":"user1"`)
		prefsRepo.AssertExpectations(t)
	})

	t.Run("Should serve the profile to the token owner", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.UserProfile{
			ID:     3,
			UserID: "user1",
		}, nil)
		router := newTestRouter(new(MockPreferencesRepo), profileRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("Authorization", bearerToken(t, "user1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":"user1"`)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should reject requests without a token", func(t *testing.T) {
		router := newTestRouter(new(MockPreferencesRepo), new(MockProfileRepo))

		req := httptest.NewRequest(http.MethodGet, "/v1/preferences", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
