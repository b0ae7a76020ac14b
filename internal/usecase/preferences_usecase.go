package usecase

import (
	"context"
	"errors"
	"time"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type preferencesUsecase struct {
	prefsRepo domain.PreferencesRepository
	validate  *validator.Validate
}

func NewPreferencesUsecase(prefsRepo domain.PreferencesRepository, validate *validator.Validate) domain.PreferencesUsecase {
	return &preferencesUsecase{
		prefsRepo: prefsRepo,
		validate:  validate,
	}
}

func (u *preferencesUsecase) GetPreferences(ctx context.Context, userID string) (*domain.JobPreferences, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own preferences")
	}

	prefs, err := u.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Preferences not found")
		}
		return nil, err
	}
	return prefs, nil
}

func (u *preferencesUsecase) UpdatePreferences(ctx context.Context, prefs *domain.JobPreferences) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	prefs.UserID = ctxUserID
	if prefs.RemotePreference == "" {
		prefs.RemotePreference = domain.RemotePrefAny
	}

	if err := u.validate.Struct(prefs); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if prefs.MinHoursPerWeek != nil && prefs.MaxHoursPerWeek != nil &&
		*prefs.MinHoursPerWeek > *prefs.MaxHoursPerWeek {
		return apperror.BadRequest("MinHoursPerWeek cannot be greater than MaxHoursPerWeek")
	}
	if err := validatePerks(prefs.PreferredPerks); err != nil {
		return err
	}

	prefs.UpdatedAt = time.Now()
	return u.prefsRepo.Upsert(ctx, prefs)
}
