package domain

import (
	"context"
	"time"
)

// BlockerResult reports every hard-disqualification rule a job triggered.
// Rules are always all evaluated, never short-circuited, so the user sees
// the full set of reasons at once.
type BlockerResult struct {
	Blocked bool     `json:"blocked"`
	Reasons []string `json:"reasons"`
}

// MatchData is the ephemeral result of one deterministic scoring pass.
// It exists only during a single analysis run: the insight generator
// consumes it and the orchestrator flattens it into a JobAnalysisResult.
type MatchData struct {
	SkillsMatchPercent int           `json:"skills_match_percent"`
	MatchedSkills      []string      `json:"matched_skills"`
	MissingSkills      []string      `json:"missing_skills"`
	PerksMatchCount    int           `json:"perks_match_count"`
	OverallScore       int           `json:"overall_score"`
	Blockers           BlockerResult `json:"blockers"`
}

// AIInsights is the structured summary produced by the insight generator.
// Array fields are never nil-vs-missing significant: a malformed upstream
// response coerces to empty slices and empty strings, it never errors.
// CultureFit and GrowthPotential stay nil when the deterministic fallback
// produced the insights, since those require qualitative judgment.
type AIInsights struct {
	Strengths       []string `json:"strengths"`
	SkillGaps       []string `json:"skill_gaps"`
	StrategicAdvice string   `json:"strategic_advice"`
	CultureFit      *string  `json:"culture_fit"`
	GrowthPotential *string  `json:"growth_potential"`
	RedFlags        []string `json:"red_flags"`
	MatchSummary    string   `json:"match_summary"`
}

// JobAnalysisResult is the persisted outcome of one analysis invocation.
// Immutable after creation: re-analyzing a job inserts a new row.
type JobAnalysisResult struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	JobID              int64      `json:"job_id"`
	IsBlocked          bool       `json:"is_blocked"`
	BlockReasons       []string   `json:"block_reasons"`
	SkillsMatchPercent int        `json:"skills_match_percent"`
	PerksMatchCount    int        `json:"perks_match_count"`
	OverallScore       int        `json:"overall_score"`
	MatchedSkills      []string   `json:"matched_skills"`
	MissingSkills      []string   `json:"missing_skills"`
	Insights           AIInsights `json:"ai_insights"`
	InsightSource      string     `json:"insight_source"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Insight sources recorded on persisted results.
const (
	InsightSourceAI       = "ai"
	InsightSourceFallback = "fallback"
)

type AnalysisRepository interface {
	Create(ctx context.Context, result *JobAnalysisResult) error
	GetLatestByJob(ctx context.Context, userID string, jobID int64) (*JobAnalysisResult, error)
	FetchByUser(ctx context.Context, userID string, limit, offset int) ([]JobAnalysisResult, int64, error)
}

// InsightGenerator is the external AI collaborator. Implementations do a
// single attempt; retry and timeout policy belong to their own client.
type InsightGenerator interface {
	Generate(ctx context.Context, job *JobOffer, profile *UserProfile, match MatchData) (*AIInsights, error)
}

type AnalysisUsecase interface {
	// Analyze runs the scoring pipeline on already-loaded inputs.
	Analyze(ctx context.Context, job *JobOffer, prefs *JobPreferences, profile *UserProfile) (*JobAnalysisResult, error)
	// AnalyzeJob loads the job, preferences and profile for the user, runs
	// Analyze and persists the result.
	AnalyzeJob(ctx context.Context, userID string, jobID int64) (*JobAnalysisResult, error)
	GetLatestAnalysis(ctx context.Context, userID string, jobID int64) (*JobAnalysisResult, error)
	ListAnalyses(ctx context.Context, userID string, page, pageSize int) ([]JobAnalysisResult, int64, error)
}
