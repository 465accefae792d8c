package services

import (
	"context"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
)

// PreferencesService reads and writes the theme, language and
// notification settings of the current user.
type PreferencesService struct {
	store *repository.Store
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(store *repository.Store) *PreferencesService {
	return &PreferencesService{store: store}
}

func (s *PreferencesService) Get(ctx context.Context, userID uint64) (dto.PreferencesResponse, error) {
	var user *models.User
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Preferences.Get(userID)
		return notFound(err, "User not found")
	})
	if err != nil {
		return dto.PreferencesResponse{}, err
	}
	return dto.ToPreferencesResponse(*user), nil
}

// Update applies the supplied fields and returns the stored values.
// A failed commit is reported as a storage error.
func (s *PreferencesService) Update(ctx context.Context, userID uint64, req dto.PreferencesUpdateRequest) (dto.PreferencesResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.PreferencesResponse{}, err
	}
	return s.apply(ctx, userID, req.Changes())
}

func (s *PreferencesService) UpdateTheme(ctx context.Context, userID uint64, theme models.Theme) (dto.PreferencesResponse, error) {
	req := dto.PreferencesUpdateRequest{Theme: dto.Some(theme)}
	if err := req.Validate(); err != nil {
		return dto.PreferencesResponse{}, err
	}
	return s.apply(ctx, userID, req.Changes())
}

func (s *PreferencesService) apply(ctx context.Context, userID uint64, changes map[string]interface{}) (dto.PreferencesResponse, error) {
	var user *models.User
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.Preferences.Update(userID, changes); err != nil {
			return notFound(err, "User not found")
		}
		var err error
		user, err = repos.Preferences.Get(userID)
		return notFound(err, "User not found")
	})
	if err != nil {
		return dto.PreferencesResponse{}, err
	}
	return dto.ToPreferencesResponse(*user), nil
}
