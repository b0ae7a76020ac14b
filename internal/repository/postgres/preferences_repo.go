package postgres

import (
	"context"
	"errors"

	"jobpilot-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type preferencesRepo struct {
	db *pgxpool.Pool
}

func NewPreferencesRepository(db *pgxpool.Pool) domain.PreferencesRepository {
	return &preferencesRepo{db: db}
}

func (r *preferencesRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobPreferences, error) {
	query := `SELECT id, user_id, min_salary, allowed_countries, allowed_cities, remote_preference,
	              min_hours_per_week, max_hours_per_week, preferred_perks,
	              weight_salary, weight_skills, weight_perks, min_skills_match_percent,
	              created_at, updated_at
	          FROM job_preferences WHERE user_id = $1`

	var p domain.JobPreferences
	var countries, cities, perks []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.MinSalary,
		pq.Array(&countries), pq.Array(&cities), &p.RemotePreference,
		&p.MinHoursPerWeek, &p.MaxHoursPerWeek, pq.Array(&perks),
		&p.WeightSalary, &p.WeightSkills, &p.WeightPerks, &p.MinSkillsMatchPercent,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	p.AllowedCountries = countries
	p.AllowedCities = cities
	p.PreferredPerks = perks
	return &p, nil
}

func (r *preferencesRepo) Upsert(ctx context.Context, prefs *domain.JobPreferences) error {
	query := `INSERT INTO job_preferences (user_id, min_salary, allowed_countries, allowed_cities,
	              remote_preference, min_hours_per_week, max_hours_per_week, preferred_perks,
	              weight_salary, weight_skills, weight_perks, min_skills_match_percent,
	              created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	          ON CONFLICT (user_id) DO UPDATE SET
	              min_salary = EXCLUDED.min_salary,
	              allowed_countries = EXCLUDED.allowed_countries,
	              allowed_cities = EXCLUDED.allowed_cities,
	              remote_preference = EXCLUDED.remote_preference,
	              min_hours_per_week = EXCLUDED.min_hours_per_week,
	              max_hours_per_week = EXCLUDED.max_hours_per_week,
	              preferred_perks = EXCLUDED.preferred_perks,
	              weight_salary = EXCLUDED.weight_salary,
	              weight_skills = EXCLUDED.weight_skills,
	              weight_perks = EXCLUDED.weight_perks,
	              min_skills_match_percent = EXCLUDED.min_skills_match_percent,
	              updated_at = NOW()
	          RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		prefs.UserID, prefs.MinSalary,
		pq.Array(prefs.AllowedCountries), pq.Array(prefs.AllowedCities),
		prefs.RemotePreference, prefs.MinHoursPerWeek, prefs.MaxHoursPerWeek,
		pq.Array(prefs.PreferredPerks),
		prefs.WeightSalary, prefs.WeightSkills, prefs.WeightPerks, prefs.MinSkillsMatchPercent,
	).Scan(&prefs.ID, &prefs.CreatedAt, &prefs.UpdatedAt)
}
