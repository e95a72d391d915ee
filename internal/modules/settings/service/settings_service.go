package service

import (
	"context"
	"fmt"

	"questlog/internal/modules/settings/domain"
	settingsout "questlog/internal/modules/settings/port/out"
	apperrors "questlog/internal/platform/errors"
)

type SettingsService struct {
	store settingsout.SettingsStore
}

func NewSettingsService(store settingsout.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	persona, err := s.store.LoadPersona(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	theme, err := s.store.LoadTheme(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	autoSpeech, err := s.store.LoadAutoSpeech(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{Persona: persona.Normalize(), Theme: theme, AutoSpeech: autoSpeech}, nil
}

func (s *SettingsService) Persona(ctx context.Context) (domain.Persona, error) {
	persona, err := s.store.LoadPersona(ctx)
	if err != nil {
		return domain.Persona{}, err
	}
	return persona.Normalize(), nil
}

func (s *SettingsService) UpdatePersona(ctx context.Context, mutate func(domain.Persona) domain.Persona) (domain.Persona, error) {
	persona, err := s.Persona(ctx)
	if err != nil {
		return domain.Persona{}, err
	}
	persona = mutate(persona).Normalize()
	if err := s.store.SavePersona(ctx, persona); err != nil {
		return persona, err
	}
	return persona, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, raw string) (domain.Theme, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.SaveTheme(ctx, theme); err != nil {
		return theme, err
	}
	return theme, nil
}

func (s *SettingsService) SetAutoSpeech(ctx context.Context, enabled bool) (bool, error) {
	return enabled, s.store.SaveAutoSpeech(ctx, enabled)
}
