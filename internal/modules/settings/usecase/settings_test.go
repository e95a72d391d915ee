package usecase_test

import (
	"context"
	"errors"
	"testing"

	settingsout "questlog/internal/modules/settings/adapter/out"
	"questlog/internal/modules/settings/domain"
	"questlog/internal/modules/settings/dto"
	settingsin "questlog/internal/modules/settings/port/in"
	"questlog/internal/modules/settings/service"
	"questlog/internal/modules/settings/usecase"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/kv"
)

func newSettings(store kv.Store) settingsin.Usecase {
	return usecase.NewInteractor(service.NewSettingsService(settingsout.NewKVSettingsStore(store, nil)))
}

func TestDefaultsWhenNothingStored(t *testing.T) {
	t.Parallel()
	out, err := newSettings(kv.NewMemoryStore()).GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	def := domain.DefaultPersona()
	if out.Theme != "system" || out.AutoSpeech || out.Persona.Name != def.Name || out.Persona.Tone != def.Tone {
		t.Fatalf("unexpected defaults: %+v", out)
	}
}

func TestUpdatesPersist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newSettings(store)
	name := "Sage"
	if _, err := uc.UpdatePersona(ctx, dto.PersonaInput{Name: &name}); err != nil {
		t.Fatalf("update persona: %v", err)
	}
	if _, err := uc.SetTheme(ctx, "Dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if _, err := uc.SetAutoSpeech(ctx, true); err != nil {
		t.Fatalf("set auto speech: %v", err)
	}
	out, err := newSettings(store).GetSettings(ctx)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if out.Persona.Name != "Sage" || out.Persona.Tone != domain.DefaultPersona().Tone || out.Theme != "dark" || !out.AutoSpeech {
		t.Fatalf("unexpected settings: %+v", out)
	}
	if _, err := uc.SetTheme(ctx, "neon"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid theme, got %v", err)
	}
}

func TestMalformedValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	store.Put(kv.KeyPersona, []byte(`{"name": 5, "tone": "dry"}`))
	store.Put(kv.KeyTheme, []byte(`"neon"`))
	store.Put(kv.KeyAutoSpeech, []byte(`"yes"`))
	out, err := newSettings(store).GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if out.Persona != (dto.PersonaOutput{Name: domain.DefaultPersona().Name, Tone: domain.DefaultPersona().Tone, Instructions: domain.DefaultPersona().Instructions}) {
		t.Fatalf("expected default persona, got %+v", out.Persona)
	}
	if out.Theme != "system" || out.AutoSpeech {
		t.Fatalf("expected defaults, got %+v", out)
	}
}
