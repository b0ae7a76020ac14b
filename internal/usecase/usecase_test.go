package usecase_test

import (
	"context"
	"os"
	"testing"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/usecase"
	"jobpilot-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

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

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobOffer) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOffer), args.Error(1)
}

func (m *MockJobRepo) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.JobOffer, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobOffer), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalysisRepo struct {
	mock.Mock
}

func (m *MockAnalysisRepo) Create(ctx context.Context, result *domain.JobAnalysisResult) error {
	return m.Called(ctx, result).Error(0)
}

func (m *MockAnalysisRepo) GetLatestByJob(ctx context.Context, userID string, jobID int64) (*domain.JobAnalysisResult, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobAnalysisResult), args.Error(1)
}

func (m *MockAnalysisRepo) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.JobAnalysisResult, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobAnalysisResult), args.Get(1).(int64), args.Error(2)
}

type MockInsightGenerator struct {
	mock.Mock
}

func (m *MockInsightGenerator) Generate(ctx context.Context, job *domain.JobOffer, profile *domain.UserProfile, match domain.MatchData) (*domain.AIInsights, error) {
	args := m.Called(ctx, job, profile, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AIInsights), args.Error(1)
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	validate := validator.New()
	uc := usecase.NewProfileUsecase(mockRepo, validate)

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestProfileUpdate(t *testing.T) {
	t.Run("Should force UserID from context", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.UserProfile{
			UserID:   "hacker_try",
			Headline: "Backend developer",
		}

		mockRepo.On("GetByUserID", ctx, "user1").Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.UserProfile)
			assert.Equal(t, "user1", p.UserID)
		})

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should update in place when a profile exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		existing := &domain.UserProfile{ID: 7, UserID: "user1"}

		mockRepo.On("GetByUserID", ctx, "user1").Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.UserProfile)
			assert.Equal(t, int64(7), p.ID)
		})

		err := uc.UpdateProfile(ctx, &domain.UserProfile{Headline: "New headline"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an invalid skill category", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.UserProfile{
			Skills: []domain.Skill{{Name: "Go", Category: "wizardry"}},
		}

		err := uc.UpdateProfile(ctx, profile)
		assert.Error(t, err)
	})
}

func TestPreferencesUpdate(t *testing.T) {
	t.Run("Should default the remote preference to any", func(t *testing.T) {
		mockRepo := new(MockPreferencesRepo)
		uc := usecase.NewPreferencesUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.JobPreferences")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.JobPreferences)
			assert.Equal(t, domain.RemotePrefAny, p.RemotePreference)
			assert.Equal(t, "user1", p.UserID)
		})

		err := uc.UpdatePreferences(ctx, &domain.JobPreferences{})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an inverted hours range", func(t *testing.T) {
		mockRepo := new(MockPreferencesRepo)
		uc := usecase.NewPreferencesUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		minH, maxH := 40, 20
		err := uc.UpdatePreferences(ctx, &domain.JobPreferences{
			MinHoursPerWeek: &minH,
			MaxHoursPerWeek: &maxH,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MinHoursPerWeek")
	})

	t.Run("Should reject perks outside the known vocabulary", func(t *testing.T) {
		mockRepo := new(MockPreferencesRepo)
		uc := usecase.NewPreferencesUsecase(mockRepo, validator.New())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		err := uc.UpdatePreferences(ctx, &domain.JobPreferences{
			PreferredPerks: []string{"free_unicorns"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "free_unicorns")
	})
}

func TestJobImport(t *testing.T) {
	t.Run("Should require a title", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.ImportJob(context.Background(), "user1", &domain.JobOffer{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("Should reject an inverted salary range", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		low, high := 30000.0, 60000.0
		err := uc.ImportJob(context.Background(), "user1", &domain.JobOffer{
			Title:     "Engineer",
			SalaryMin: &high,
			SalaryMax: &low,
		})
		assert.Error(t, err)
	})

	t.Run("Should stamp ownership and default status", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobOffer")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.JobOffer)
			assert.Equal(t, "user1", j.UserID)
			assert.Equal(t, domain.JobStatusImported, j.Status)
		})

		err := uc.ImportJob(context.Background(), "user1", &domain.JobOffer{Title: "Engineer"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestJobOwnership(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.JobOffer{ID: 1, UserID: "owner"}, nil)

	t.Run("Should forbid reading another user's job", func(t *testing.T) {
		_, err := uc.GetJobDetails(context.Background(), "intruder", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})

	t.Run("Should forbid deleting another user's job", func(t *testing.T) {
		err := uc.DeleteJob(context.Background(), "intruder", 1)
		assert.Error(t, err)
	})

	t.Run("Should forbid re-statusing another user's job", func(t *testing.T) {
		err := uc.UpdateJobStatus(context.Background(), "intruder", 1, domain.JobStatusSaved)
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown status before loading the job", func(t *testing.T) {
		err := uc.UpdateJobStatus(context.Background(), "owner", 1, "archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job status")
	})
}
