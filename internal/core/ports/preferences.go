package ports

import (
	"context"

	"progresstracker/internal/core/domain"
)

// PreferenceRepository stores one opaque blob per owner. Get returns
// (nil, nil) when no blob exists yet.
type PreferenceRepository interface {
	Get(ctx context.Context, ownerID string) ([]byte, error)
	Put(ctx context.Context, ownerID string, blob []byte) error
}

type PreferenceService interface {
	Get(ctx context.Context, ownerID string) (domain.Preferences, error)
	Save(ctx context.Context, ownerID string, prefs domain.Preferences) error
}
