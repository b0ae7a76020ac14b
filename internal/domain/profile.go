package domain

import (
	"context"
	"time"
)

type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "technical"
	SkillCategorySoft      SkillCategory = "soft"
	SkillCategoryLanguage  SkillCategory = "language"
	SkillCategoryTool      SkillCategory = "tool"
)

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

type Skill struct {
	ID          int64         `json:"id"`
	ProfileID   int64         `json:"profile_id"`
	Name        string        `json:"name" validate:"required,min=1,max=100"`
	Category    SkillCategory `json:"category" validate:"required,oneof=technical soft language tool"`
	Proficiency *Proficiency  `json:"proficiency,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

// WorkExperience dates are textual day-month-year values; EndDate is empty
// when Current is true. Achievements are free-text bullets and are treated
// as implicit skill evidence by the matching engine.
type WorkExperience struct {
	ID           int64    `json:"id"`
	ProfileID    int64    `json:"profile_id"`
	Title        string   `json:"title" validate:"required,min=1,max=150"`
	Company      string   `json:"company" validate:"required,min=1,max=150"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements" validate:"dive,max=500"`
}

type UserProfile struct {
	ID         int64            `json:"id"`
	UserID     string           `json:"user_id" validate:"required"`
	Headline   string           `json:"headline" validate:"max=150"`
	Skills     []Skill          `json:"skills" validate:"dive"`
	Experience []WorkExperience `json:"experience" validate:"dive"`
	Languages  []string         `json:"languages"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	Create(ctx context.Context, profile *UserProfile) error
	Update(ctx context.Context, profile *UserProfile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	UpdateProfile(ctx context.Context, profile *UserProfile) error
}
