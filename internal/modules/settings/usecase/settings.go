package usecase

import (
	"context"

	"questlog/internal/modules/settings/domain"
	"questlog/internal/modules/settings/dto"
	settingsin "questlog/internal/modules/settings/port/in"
	"questlog/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return dto.SettingsOutput{
		Persona:    toPersonaOutput(settings.Persona),
		Theme:      string(settings.Theme),
		AutoSpeech: settings.AutoSpeech,
	}, nil
}

func (i *Interactor) UpdatePersona(ctx context.Context, input dto.PersonaInput) (dto.PersonaOutput, error) {
	persona, err := i.svc.UpdatePersona(ctx, func(p domain.Persona) domain.Persona {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Tone != nil {
			p.Tone = *input.Tone
		}
		if input.Instructions != nil {
			p.Instructions = *input.Instructions
		}
		return p
	})
	if err != nil {
		return toPersonaOutput(persona), err
	}
	return toPersonaOutput(persona), nil
}

func (i *Interactor) SetTheme(ctx context.Context, theme string) (string, error) {
	parsed, err := i.svc.SetTheme(ctx, theme)
	return string(parsed), err
}

func (i *Interactor) SetAutoSpeech(ctx context.Context, enabled bool) (bool, error) {
	return i.svc.SetAutoSpeech(ctx, enabled)
}

func (i *Interactor) Persona(ctx context.Context) (domain.Persona, error) {
	return i.svc.Persona(ctx)
}

func toPersonaOutput(p domain.Persona) dto.PersonaOutput {
	return dto.PersonaOutput{Name: p.Name, Tone: p.Tone, Instructions: p.Instructions}
}
