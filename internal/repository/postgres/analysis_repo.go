package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"jobpilot-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type analysisRepo struct {
	db *pgxpool.Pool
}

func NewAnalysisRepository(db *pgxpool.Pool) domain.AnalysisRepository {
	return &analysisRepo{db: db}
}

// Create inserts a new result row. Results are immutable: re-analyzing a
// job inserts again and readers pick the latest row.
func (r *analysisRepo) Create(ctx context.Context, result *domain.JobAnalysisResult) error {
	insights, err := json.Marshal(result.Insights)
	if err != nil {
		return err
	}

	query := `INSERT INTO job_analysis_results (id, user_id, job_id, is_blocked, block_reasons,
	              skills_match_percent, perks_match_count, overall_score,
	              matched_skills, missing_skills, ai_insights, insight_source, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.Exec(ctx, query,
		result.ID, result.UserID, result.JobID, result.IsBlocked, pq.Array(result.BlockReasons),
		result.SkillsMatchPercent, result.PerksMatchCount, result.OverallScore,
		pq.Array(result.MatchedSkills), pq.Array(result.MissingSkills),
		insights, result.InsightSource, result.CreatedAt,
	)
	return err
}

const analysisColumns = `id, user_id, job_id, is_blocked, block_reasons, skills_match_percent,
	perks_match_count, overall_score, matched_skills, missing_skills, ai_insights, insight_source, created_at`

func (r *analysisRepo) GetLatestByJob(ctx context.Context, userID string, jobID int64) (*domain.JobAnalysisResult, error) {
	query := `SELECT ` + analysisColumns + ` FROM job_analysis_results
	          WHERE user_id = $1 AND job_id = $2 ORDER BY created_at DESC LIMIT 1`

	result, err := scanAnalysis(r.db.QueryRow(ctx, query, userID, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return result, nil
}

// FetchByUser returns the latest result per job, ranked by overall score.
func (r *analysisRepo) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.JobAnalysisResult, int64, error) {
	query := `SELECT ` + analysisColumns + ` FROM job_analysis_results r
	          WHERE user_id = $1
	            AND created_at = (SELECT MAX(created_at) FROM job_analysis_results
	                              WHERE user_id = r.user_id AND job_id = r.job_id)
	          ORDER BY overall_score DESC, created_at DESC
	          LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []domain.JobAnalysisResult
	for rows.Next() {
		result, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(DISTINCT job_id) FROM job_analysis_results WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func scanAnalysis(row pgx.Row) (*domain.JobAnalysisResult, error) {
	var result domain.JobAnalysisResult
	var blockReasons, matched, missing []string
	var insights []byte

	err := row.Scan(
		&result.ID, &result.UserID, &result.JobID, &result.IsBlocked, pq.Array(&blockReasons),
		&result.SkillsMatchPercent, &result.PerksMatchCount, &result.OverallScore,
		pq.Array(&matched), pq.Array(&missing), &insights, &result.InsightSource, &result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.BlockReasons = blockReasons
	result.MatchedSkills = matched
	result.MissingSkills = missing
	if err := json.Unmarshal(insights, &result.Insights); err != nil {
		return nil, err
	}
	return &result, nil
}
