package in

import (
	"context"

	"questlog/internal/modules/settings/domain"
	"questlog/internal/modules/settings/dto"
)

type Usecase interface {
	GetSettings(ctx context.Context) (dto.SettingsOutput, error)
	UpdatePersona(ctx context.Context, input dto.PersonaInput) (dto.PersonaOutput, error)
	SetTheme(ctx context.Context, theme string) (string, error)
	SetAutoSpeech(ctx context.Context, enabled bool) (bool, error)
	Persona(ctx context.Context) (domain.Persona, error)
}
