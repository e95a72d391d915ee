package in

import (
	"context"

	"questlog/internal/modules/settings/dto"
	settingsin "questlog/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.GetSettings(ctx)
}

func (h CLIHandler) UpdatePersona(ctx context.Context, input dto.PersonaInput) (dto.PersonaOutput, error) {
	return h.usecase.UpdatePersona(ctx, input)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) (string, error) {
	return h.usecase.SetTheme(ctx, theme)
}

func (h CLIHandler) SetAutoSpeech(ctx context.Context, enabled bool) (bool, error) {
	return h.usecase.SetAutoSpeech(ctx, enabled)
}
