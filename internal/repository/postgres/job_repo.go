package postgres

import (
	"context"
	"errors"

	"jobpilot-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, user_id, title, company, description, required_skills, nice_to_have_skills, perks,
	salary_min, salary_max, salary_currency, location_country, location_city, presence_type,
	hours_per_week, source_url, status, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.JobOffer) error {
	query := `INSERT INTO job_offers (user_id, title, company, description, required_skills, nice_to_have_skills,
	              perks, salary_min, salary_max, salary_currency, location_country, location_city,
	              presence_type, hours_per_week, source_url, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	          RETURNING id`

	var presence *string
	if job.PresenceType != nil {
		v := string(*job.PresenceType)
		presence = &v
	}

	return r.db.QueryRow(ctx, query,
		job.UserID, job.Title, job.Company, job.Description,
		pq.Array(job.RequiredSkills), pq.Array(job.NiceToHaveSkills), pq.Array(job.Perks),
		job.SalaryMin, job.SalaryMax, job.SalaryCurrency,
		job.LocationCountry, job.LocationCity, presence,
		job.HoursPerWeek, job.SourceURL, job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	query := `SELECT ` + jobColumns + ` FROM job_offers WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.JobOffer, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job_offers
	          WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobOffer
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_offers WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE job_offers SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*domain.JobOffer, error) {
	var job domain.JobOffer
	var required, niceToHave, perks []string
	var presence *string

	err := row.Scan(
		&job.ID, &job.UserID, &job.Title, &job.Company, &job.Description,
		pq.Array(&required), pq.Array(&niceToHave), pq.Array(&perks),
		&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency,
		&job.LocationCountry, &job.LocationCity, &presence,
		&job.HoursPerWeek, &job.SourceURL, &job.Status,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.RequiredSkills = required
	job.NiceToHaveSkills = niceToHave
	job.Perks = perks
	if presence != nil {
		p := domain.PresenceType(*presence)
		job.PresenceType = &p
	}
	return &job, nil
}
