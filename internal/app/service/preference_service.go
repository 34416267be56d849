package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
)

type PreferenceService struct {
	preferenceRepository ports.PreferenceRepository
}

func NewPreferenceService(preferenceRepository ports.PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferenceRepository: preferenceRepository}
}

// Get returns the stored preferences, falling back to defaults when the
// blob is missing or unreadable. A corrupt blob is logged and discarded,
// never surfaced as an error.
func (s *PreferenceService) Get(ctx context.Context, ownerID string) (domain.Preferences, error) {
	blob, err := s.preferenceRepository.Get(ctx, ownerID)
	if err != nil {
		return domain.Preferences{}, err
	}
	if blob == nil {
		return domain.DefaultPreferences(), nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(blob, &prefs); err != nil {
		zap.L().Warn("corrupt preference blob, using defaults", zap.String("owner_id", ownerID), zap.Error(err))
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (s *PreferenceService) Save(ctx context.Context, ownerID string, prefs domain.Preferences) error {
	blob, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.preferenceRepository.Put(ctx, ownerID, blob)
}

var _ ports.PreferenceService = (*PreferenceService)(nil)
