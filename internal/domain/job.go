package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type PresenceType string

const (
	PresenceFullRemote PresenceType = "full_remote"
	PresenceHybrid     PresenceType = "hybrid"
	PresenceOnSite     PresenceType = "on_site"
)

type JobStatus string

const (
	JobStatusImported  JobStatus = "imported"
	JobStatusSaved     JobStatus = "saved"
	JobStatusApplied   JobStatus = "applied"
	JobStatusDiscarded JobStatus = "discarded"
)

// KnownPerks is the closed perk vocabulary shared between job postings and
// user preferences. Perk matching is exact and case-sensitive; there is no
// synonym expansion, unlike skill matching.
var KnownPerks = []string{
	"remote_stipend",
	"health_insurance",
	"paid_leave",
	"flexible_hours",
	"stock_options",
	"training_budget",
	"gym_membership",
	"meal_vouchers",
	"pension_plan",
	"childcare_support",
	"relocation_package",
	"company_car",
}

// JobOffer is an imported job posting. RequiredSkills and NiceToHaveSkills
// are free-text strings exactly as the posting wrote them; they are never
// normalized against a taxonomy. Salary, location, presence type and hours
// are nullable: an unknown value must never be treated as a failing one.
type JobOffer struct {
	ID               int64         `json:"id"`
	UserID           string        `json:"user_id"`
	Title            string        `json:"title"`
	Company          string        `json:"company"`
	Description      string        `json:"description"`
	RequiredSkills   []string      `json:"required_skills"`
	NiceToHaveSkills []string      `json:"nice_to_have_skills"`
	Perks            []string      `json:"perks"`
	SalaryMin        *float64      `json:"salary_min"`
	SalaryMax        *float64      `json:"salary_max"`
	SalaryCurrency   *string       `json:"salary_currency"`
	LocationCountry  *string       `json:"location_country"`
	LocationCity     *string       `json:"location_city"`
	PresenceType     *PresenceType `json:"presence_type"`
	HoursPerWeek     *int          `json:"hours_per_week"`
	SourceURL        *string       `json:"source_url"`
	Status           JobStatus     `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobOffer) error
	GetByID(ctx context.Context, id int64) (*JobOffer, error)
	FetchByUser(ctx context.Context, userID string, limit, offset int) ([]JobOffer, int64, error)
	UpdateStatus(ctx context.Context, id int64, status JobStatus) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	ImportJob(ctx context.Context, userID string, job *JobOffer) error
	GetJobDetails(ctx context.Context, userID string, id int64) (*JobOffer, error)
	ListJobs(ctx context.Context, userID string, page, pageSize int) ([]JobOffer, int64, error)
	UpdateJobStatus(ctx context.Context, userID string, id int64, status JobStatus) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
