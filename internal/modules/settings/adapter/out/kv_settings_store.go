package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/settings/domain"
	settingsout "questlog/internal/modules/settings/port/out"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVSettingsStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVSettingsStore(store kv.Store, logger hclog.Logger) settingsout.SettingsStore {
	return &KVSettingsStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVSettingsStore) LoadPersona(ctx context.Context) (domain.Persona, error) {
	persona := domain.Persona{}
	ok, err := s.load(ctx, kv.KeyPersona, &persona)
	if err != nil || !ok {
		return domain.DefaultPersona(), err
	}
	return persona.Normalize(), nil
}

func (s *KVSettingsStore) SavePersona(ctx context.Context, persona domain.Persona) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyPersona, persona)
}

func (s *KVSettingsStore) LoadTheme(ctx context.Context) (domain.Theme, error) {
	var raw string
	ok, err := s.load(ctx, kv.KeyTheme, &raw)
	if err != nil || !ok || raw == "" {
		return domain.DefaultTheme, err
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		s.logger.Warn("stored theme is unsupported, using default", "theme", raw)
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (s *KVSettingsStore) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyTheme, string(theme))
}

func (s *KVSettingsStore) LoadAutoSpeech(ctx context.Context) (bool, error) {
	enabled := false
	ok, err := s.load(ctx, kv.KeyAutoSpeech, &enabled)
	if err != nil || !ok {
		return false, err
	}
	return enabled, nil
}

func (s *KVSettingsStore) SaveAutoSpeech(ctx context.Context, enabled bool) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyAutoSpeech, enabled)
}

// load reports ok=false for missing and malformed payloads; dst must then be
// ignored.
func (s *KVSettingsStore) load(ctx context.Context, key string, dst any) (bool, error) {
	found, err := kv.LoadJSON(ctx, s.store, key, dst)
	if err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("stored setting is malformed, using default", "key", key, "error", err)
			return false, nil
		}
		return false, err
	}
	return found, nil
}
