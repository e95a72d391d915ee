package out

import (
	"context"

	"questlog/internal/modules/settings/domain"
)

type SettingsStore interface {
	LoadPersona(ctx context.Context) (domain.Persona, error)
	SavePersona(ctx context.Context, persona domain.Persona) error
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
	LoadAutoSpeech(ctx context.Context) (bool, error)
	SaveAutoSpeech(ctx context.Context, enabled bool) error
}
