package postgres

import (
	"context"
	"errors"

	"jobpilot-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT id, user_id, COALESCE(headline, ''), languages, created_at, updated_at
	          FROM user_profiles WHERE user_id = $1`

	var p domain.UserProfile
	var languages []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, pq.Array(&languages), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Languages = languages

	if p.Skills, err = r.fetchSkills(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Experience, err = r.fetchExperience(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) fetchSkills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	query := `SELECT id, profile_id, name, category, proficiency
	          FROM profile_skills WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		var proficiency *string
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &proficiency); err != nil {
			return nil, err
		}
		if proficiency != nil {
			p := domain.Proficiency(*proficiency)
			s.Proficiency = &p
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *profileRepo) fetchExperience(ctx context.Context, profileID int64) ([]domain.WorkExperience, error) {
	query := `SELECT id, profile_id, title, company, start_date, COALESCE(end_date, ''), current, achievements
	          FROM work_experience WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experience []domain.WorkExperience
	for rows.Next() {
		var exp domain.WorkExperience
		var achievements []string
		if err := rows.Scan(&exp.ID, &exp.ProfileID, &exp.Title, &exp.Company,
			&exp.StartDate, &exp.EndDate, &exp.Current, pq.Array(&achievements)); err != nil {
			return nil, err
		}
		exp.Achievements = achievements
		experience = append(experience, exp)
	}
	return experience, rows.Err()
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	return r.save(ctx, profile, true)
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	return r.save(ctx, profile, false)
}

// save writes the profile row and replaces its skills and experience in
// one transaction. Replace-on-write keeps ordering stable and avoids
// diffing child rows.
func (r *profileRepo) save(ctx context.Context, profile *domain.UserProfile, insert bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if insert {
		query := `INSERT INTO user_profiles (user_id, headline, languages, created_at, updated_at)
		          VALUES ($1, $2, $3, $4, $5) RETURNING id`
		if err := tx.QueryRow(ctx, query,
			profile.UserID, profile.Headline, pq.Array(profile.Languages),
			profile.CreatedAt, profile.UpdatedAt,
		).Scan(&profile.ID); err != nil {
			return err
		}
	} else {
		query := `UPDATE user_profiles SET headline = $2, languages = $3, updated_at = $4 WHERE id = $1`
		result, err := tx.Exec(ctx, query,
			profile.ID, profile.Headline, pq.Array(profile.Languages), profile.UpdatedAt)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM profile_skills WHERE profile_id = $1`, profile.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM work_experience WHERE profile_id = $1`, profile.ID); err != nil {
			return err
		}
	}

	for i := range profile.Skills {
		s := &profile.Skills[i]
		s.ProfileID = profile.ID
		query := `INSERT INTO profile_skills (profile_id, name, category, proficiency)
		          VALUES ($1, $2, $3, $4) RETURNING id`
		var proficiency *string
		if s.Proficiency != nil {
			v := string(*s.Proficiency)
			proficiency = &v
		}
		if err := tx.QueryRow(ctx, query, s.ProfileID, s.Name, s.Category, proficiency).Scan(&s.ID); err != nil {
			return err
		}
	}

	for i := range profile.Experience {
		exp := &profile.Experience[i]
		exp.ProfileID = profile.ID
		query := `INSERT INTO work_experience (profile_id, title, company, start_date, end_date, current, achievements)
		          VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7) RETURNING id`
		if err := tx.QueryRow(ctx, query, exp.ProfileID, exp.Title, exp.Company,
			exp.StartDate, exp.EndDate, exp.Current, pq.Array(exp.Achievements)).Scan(&exp.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
