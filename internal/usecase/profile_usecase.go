package usecase

import (
	"context"
	"time"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.UserProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force ownership from context, never from the payload.
	profile.UserID = ctxUserID
	profile.UpdatedAt = time.Now()

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	existing, err := u.profileRepo.GetByUserID(ctx, ctxUserID)
	if err != nil {
		return err
	}
	if existing == nil {
		profile.CreatedAt = time.Now()
		return u.profileRepo.Create(ctx, profile)
	}

	profile.ID = existing.ID
	return u.profileRepo.Update(ctx, profile)
}
