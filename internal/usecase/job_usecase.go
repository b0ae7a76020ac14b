package usecase

import (
	"context"
	"time"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) ImportJob(ctx context.Context, userID string, job *domain.JobOffer) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	if err := validatePerks(job.Perks); err != nil {
		return err
	}

	job.UserID = userID
	if job.Status == "" {
		job.Status = domain.JobStatusImported
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, userID string, id int64) (*domain.JobOffer, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, apperror.Forbidden("You can only view your own jobs")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, userID string, page, pageSize int) ([]domain.JobOffer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByUser(ctx, userID, pageSize, offset)
}

func (u *jobUsecase) UpdateJobStatus(ctx context.Context, userID string, id int64, status domain.JobStatus) error {
	switch status {
	case domain.JobStatusImported, domain.JobStatusSaved, domain.JobStatusApplied, domain.JobStatusDiscarded:
	default:
		return apperror.BadRequest("Invalid job status")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job.UserID != userID {
		return apperror.Forbidden("You can only update your own jobs")
	}

	return u.jobRepo.UpdateStatus(ctx, id, status)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job.UserID != userID {
		return apperror.Forbidden("You can only delete your own jobs")
	}

	return u.jobRepo.Delete(ctx, id)
}

// validatePerks rejects identifiers outside the closed perk vocabulary.
func validatePerks(perks []string) error {
	known := make(map[string]struct{}, len(domain.KnownPerks))
	for _, p := range domain.KnownPerks {
		known[p] = struct{}{}
	}
	for _, p := range perks {
		if _, ok := known[p]; !ok {
			return apperror.BadRequest("Unknown perk identifier: " + p)
		}
	}
	return nil
}
