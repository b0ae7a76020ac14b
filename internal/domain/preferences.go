package domain

import (
	"context"
	"time"
)

type RemotePreference string

const (
	RemotePrefFullRemote RemotePreference = "full_remote"
	RemotePrefHybrid     RemotePreference = "hybrid"
	RemotePrefOnSite     RemotePreference = "on_site"
	RemotePrefAny        RemotePreference = "any"
)

// JobPreferences holds one user's matching preferences. Empty allow-lists
// mean "no restriction", never "blocks everything". The three weights are
// each 0-100 and are not required to sum to 100; the score calculator
// normalizes them by their sum.
type JobPreferences struct {
	ID                    int64            `json:"id"`
	UserID                string           `json:"user_id" validate:"required"`
	MinSalary             *float64         `json:"min_salary" validate:"omitempty,gte=0"`
	AllowedCountries      []string         `json:"allowed_countries"`
	AllowedCities         []string         `json:"allowed_cities"`
	RemotePreference      RemotePreference `json:"remote_preference" validate:"required,oneof=full_remote hybrid on_site any"`
	MinHoursPerWeek       *int             `json:"min_hours_per_week" validate:"omitempty,gte=0,lte=80"`
	MaxHoursPerWeek       *int             `json:"max_hours_per_week" validate:"omitempty,gte=0,lte=80"`
	PreferredPerks        []string         `json:"preferred_perks"`
	WeightSalary          int              `json:"weight_salary" validate:"gte=0,lte=100"`
	WeightSkills          int              `json:"weight_skills" validate:"gte=0,lte=100"`
	WeightPerks           int              `json:"weight_perks" validate:"gte=0,lte=100"`
	MinSkillsMatchPercent int              `json:"min_skills_match_percent" validate:"gte=0,lte=100"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*JobPreferences, error)
	Upsert(ctx context.Context, prefs *JobPreferences) error
}

type PreferencesUsecase interface {
	GetPreferences(ctx context.Context, userID string) (*JobPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *JobPreferences) error
}
