package usecase_test

import (
	"context"
	"errors"
	"testing"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/matching"
	"jobpilot-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnalysisFixture(gen domain.InsightGenerator) (domain.AnalysisUsecase, *MockJobRepo, *MockProfileRepo, *MockPreferencesRepo, *MockAnalysisRepo) {
	jobRepo := new(MockJobRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPreferencesRepo)
	analysisRepo := new(MockAnalysisRepo)

	uc := usecase.NewAnalysisUsecase(jobRepo, profileRepo, prefsRepo, analysisRepo, gen, matching.DefaultConfig())
	return uc, jobRepo, profileRepo, prefsRepo, analysisRepo
}

func analyzableJob() *domain.JobOffer {
	salary := 60000.0
	return &domain.JobOffer{
		ID:             1,
		UserID:         "user1",
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go", "PostgreSQL"},
		Perks:          []string{"health_insurance", "stock_options"},
		SalaryMax:      &salary,
	}
}

func analyzablePrefs() *domain.JobPreferences {
	minSalary := 50000.0
	return &domain.JobPreferences{
		UserID:         "user1",
		MinSalary:      &minSalary,
		PreferredPerks: []string{"health_insurance"},
		WeightSalary:   30,
		WeightSkills:   50,
		WeightPerks:    20,
	}
}

func analyzableProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID: "user1",
		Skills: []domain.Skill{
			{Name: "Go", Category: domain.SkillCategoryTechnical},
			{Name: "PostgreSQL", Category: domain.SkillCategoryTechnical},
		},
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("Should reject nil inputs", func(t *testing.T) {
		uc, _, _, _, _ := newAnalysisFixture(nil)

		_, err := uc.Analyze(context.Background(), nil, analyzablePrefs(), analyzableProfile())
		assert.Error(t, err)

		_, err = uc.Analyze(context.Background(), analyzableJob(), nil, analyzableProfile())
		assert.Error(t, err)

		_, err = uc.Analyze(context.Background(), analyzableJob(), analyzablePrefs(), nil)
		assert.Error(t, err)
	})

	t.Run("Should compute a full result for matching inputs", func(t *testing.T) {
		uc, _, _, _, _ := newAnalysisFixture(nil)

		result, err := uc.Analyze(context.Background(), analyzableJob(), analyzablePrefs(), analyzableProfile())
		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "user1", result.UserID)
		assert.Equal(t, int64(1), result.JobID)
		assert.False(t, result.IsBlocked)
		assert.Equal(t, 100, result.SkillsMatchPercent)
		assert.Equal(t, 1, result.PerksMatchCount)
		// salary 100, skills 100, perks 100 -> overall 100
		assert.Equal(t, 100, result.OverallScore)
	})

	t.Run("Should use the fallback generator when none is configured", func(t *testing.T) {
		uc, _, _, _, _ := newAnalysisFixture(nil)

		result, err := uc.Analyze(context.Background(), analyzableJob(), analyzablePrefs(), analyzableProfile())
		assert.NoError(t, err)
		assert.Equal(t, domain.InsightSourceFallback, result.InsightSource)
		assert.NotEmpty(t, result.Insights.MatchSummary)
		assert.Nil(t, result.Insights.CultureFit)
		assert.Nil(t, result.Insights.GrowthPotential)
	})

	t.Run("Should still return a result when the AI call fails", func(t *testing.T) {
		gen := new(MockInsightGenerator)
		gen.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("upstream down"))
		uc, _, _, _, _ := newAnalysisFixture(gen)

		result, err := uc.Analyze(context.Background(), analyzableJob(), analyzablePrefs(), analyzableProfile())
		assert.NoError(t, err)
		assert.Equal(t, domain.InsightSourceFallback, result.InsightSource)
		assert.NotEmpty(t, result.Insights.MatchSummary)
		assert.Nil(t, result.Insights.CultureFit)
	})

	t.Run("Should record AI insights when the call succeeds", func(t *testing.T) {
		cultureFit := "Team-oriented environment"
		gen := new(MockInsightGenerator)
		gen.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.AIInsights{
				MatchSummary: "Great fit",
				CultureFit:   &cultureFit,
			}, nil)
		uc, _, _, _, _ := newAnalysisFixture(gen)

		result, err := uc.Analyze(context.Background(), analyzableJob(), analyzablePrefs(), analyzableProfile())
		assert.NoError(t, err)
		assert.Equal(t, domain.InsightSourceAI, result.InsightSource)
		assert.Equal(t, "Great fit", result.Insights.MatchSummary)
	})

	t.Run("Should mark blockers without suppressing the score", func(t *testing.T) {
		uc, _, _, _, _ := newAnalysisFixture(nil)

		job := analyzableJob()
		lowSalary := 40000.0
		job.SalaryMax = &lowSalary

		result, err := uc.Analyze(context.Background(), job, analyzablePrefs(), analyzableProfile())
		assert.NoError(t, err)
		assert.True(t, result.IsBlocked)
		assert.Len(t, result.BlockReasons, 1)
		// skills and perks still scored, only the salary sub-score drops
		assert.Equal(t, 100, result.SkillsMatchPercent)
		assert.Equal(t, 70, result.OverallScore)
	})
}

func TestAnalyzeJob(t *testing.T) {
	t.Run("Should load inputs, analyze and persist", func(t *testing.T) {
		uc, jobRepo, profileRepo, prefsRepo, analysisRepo := newAnalysisFixture(nil)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(analyzableJob(), nil)
		prefsRepo.On("GetByUserID", mock.Anything, "user1").Return(analyzablePrefs(), nil)
		profileRepo.On("GetByUserID", mock.Anything, "user1").Return(analyzableProfile(), nil)
		analysisRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobAnalysisResult")).Return(nil)

		result, err := uc.AnalyzeJob(context.Background(), "user1", 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.JobID)
		analysisRepo.AssertExpectations(t)
	})

	t.Run("Should forbid analyzing another user's job", func(t *testing.T) {
		uc, jobRepo, _, _, _ := newAnalysisFixture(nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(analyzableJob(), nil)

		_, err := uc.AnalyzeJob(context.Background(), "intruder", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})

	t.Run("Should ask for preferences before analyzing", func(t *testing.T) {
		uc, jobRepo, _, prefsRepo, _ := newAnalysisFixture(nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(analyzableJob(), nil)
		prefsRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.AnalyzeJob(context.Background(), "user1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "preferences")
	})

	t.Run("Should ask for a profile before analyzing", func(t *testing.T) {
		uc, jobRepo, profileRepo, prefsRepo, _ := newAnalysisFixture(nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(analyzableJob(), nil)
		prefsRepo.On("GetByUserID", mock.Anything, "user1").Return(analyzablePrefs(), nil)
		profileRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)

		_, err := uc.AnalyzeJob(context.Background(), "user1", 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile")
	})

	t.Run("Should propagate persistence failures", func(t *testing.T) {
		uc, jobRepo, profileRepo, prefsRepo, analysisRepo := newAnalysisFixture(nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(analyzableJob(), nil)
		prefsRepo.On("GetByUserID", mock.Anything, "user1").Return(analyzablePrefs(), nil)
		profileRepo.On("GetByUserID", mock.Anything, "user1").Return(analyzableProfile(), nil)
		analysisRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := uc.AnalyzeJob(context.Background(), "user1", 1)
		assert.Error(t, err)
	})
}
