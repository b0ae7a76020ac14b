package usecase

import (
	"context"
	"time"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/insight"
	"jobpilot-backend/internal/matching"
	"jobpilot-backend/pkg/apperror"
	"jobpilot-backend/pkg/logger"

	"github.com/google/uuid"
)

type analysisUsecase struct {
	jobRepo      domain.JobRepository
	profileRepo  domain.ProfileRepository
	prefsRepo    domain.PreferencesRepository
	analysisRepo domain.AnalysisRepository
	insights     domain.InsightGenerator
	matcher      *matching.Matcher
	cfg          matching.Config
}

// NewAnalysisUsecase wires the scoring pipeline. insights may be nil when
// no AI backend is configured; every analysis then uses the deterministic
// fallback insights.
func NewAnalysisUsecase(
	jobRepo domain.JobRepository,
	profileRepo domain.ProfileRepository,
	prefsRepo domain.PreferencesRepository,
	analysisRepo domain.AnalysisRepository,
	insights domain.InsightGenerator,
	cfg matching.Config,
) domain.AnalysisUsecase {
	return &analysisUsecase{
		jobRepo:      jobRepo,
		profileRepo:  profileRepo,
		prefsRepo:    prefsRepo,
		analysisRepo: analysisRepo,
		insights:     insights,
		matcher:      matching.NewMatcher(cfg),
		cfg:          cfg,
	}
}

// Analyze runs the deterministic pipeline on already-loaded inputs:
// blockers, skills match, perks match, salary flags, overall score, then
// insights. The AI step is the only fallible one and degrades to the
// fallback generator; the numeric result always comes back once the
// three inputs are present.
func (u *analysisUsecase) Analyze(ctx context.Context, job *domain.JobOffer, prefs *domain.JobPreferences, profile *domain.UserProfile) (*domain.JobAnalysisResult, error) {
	if job == nil {
		return nil, apperror.BadRequest("Job offer is required")
	}
	if prefs == nil {
		return nil, apperror.BadRequest("Job preferences are required")
	}
	if profile == nil {
		return nil, apperror.BadRequest("User profile is required")
	}

	blockers := matching.EvaluateBlockers(job, prefs)

	texts := u.matcher.BuildProfileTexts(profile.Skills, profile.Experience)
	skills := u.matcher.ComputeSkillsMatch(job, texts)

	perksCount := matching.PerksMatchCount(job.Perks, prefs.PreferredPerks)

	hasSalary := job.SalaryMax != nil
	meetsMin := hasSalary && (prefs.MinSalary == nil || *job.SalaryMax >= *prefs.MinSalary)

	score := matching.OverallScore(matching.ScoreInput{
		SkillsMatchPercent:  skills.Percent,
		PerksMatchCount:     perksCount,
		TotalPreferredPerks: len(prefs.PreferredPerks),
		HasSalaryInfo:       hasSalary,
		MeetsMinSalary:      meetsMin,
		UnknownSalaryScore:  u.cfg.UnknownSalaryScore,
		WeightSalary:        prefs.WeightSalary,
		WeightSkills:        prefs.WeightSkills,
		WeightPerks:         prefs.WeightPerks,
	})

	match := domain.MatchData{
		SkillsMatchPercent: skills.Percent,
		MatchedSkills:      skills.Matched,
		MissingSkills:      skills.Missing,
		PerksMatchCount:    perksCount,
		OverallScore:       score,
		Blockers:           blockers,
	}

	insights, source := u.generateInsights(ctx, job, profile, match)

	return &domain.JobAnalysisResult{
		ID:                 uuid.NewString(),
		UserID:             profile.UserID,
		JobID:              job.ID,
		IsBlocked:          blockers.Blocked,
		BlockReasons:       blockers.Reasons,
		SkillsMatchPercent: skills.Percent,
		PerksMatchCount:    perksCount,
		OverallScore:       score,
		MatchedSkills:      skills.Matched,
		MissingSkills:      skills.Missing,
		Insights:           *insights,
		InsightSource:      source,
		CreatedAt:          time.Now(),
	}, nil
}

// generateInsights asks the AI collaborator once and falls back to the
// deterministic generator on any failure. Upstream errors are logged,
// never propagated: the numeric score is the primary decision surface
// and must not be lost to an insight outage.
func (u *analysisUsecase) generateInsights(ctx context.Context, job *domain.JobOffer, profile *domain.UserProfile, match domain.MatchData) (*domain.AIInsights, string) {
	if u.insights == nil {
		return insight.Fallback(match), domain.InsightSourceFallback
	}

	generated, err := u.insights.Generate(ctx, job, profile, match)
	if err != nil {
		logger.Log.Warn("AI insight generation failed, using fallback",
			"job_id", job.ID, "error", err)
		return insight.Fallback(match), domain.InsightSourceFallback
	}
	return generated, domain.InsightSourceAI
}

func (u *analysisUsecase) AnalyzeJob(ctx context.Context, userID string, jobID int64) (*domain.JobAnalysisResult, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, apperror.Forbidden("You can only analyze your own jobs")
	}

	prefs, err := u.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Job preferences not found. Please set your preferences first.")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found. Please complete your profile first.")
	}

	result, err := u.Analyze(ctx, job, prefs, profile)
	if err != nil {
		return nil, err
	}

	if err := u.analysisRepo.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (u *analysisUsecase) GetLatestAnalysis(ctx context.Context, userID string, jobID int64) (*domain.JobAnalysisResult, error) {
	return u.analysisRepo.GetLatestByJob(ctx, userID, jobID)
}

func (u *analysisUsecase) ListAnalyses(ctx context.Context, userID string, page, pageSize int) ([]domain.JobAnalysisResult, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.analysisRepo.FetchByUser(ctx, userID, pageSize, offset)
}
