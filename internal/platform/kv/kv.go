package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Logical keys, one self-contained JSON document each.
const (
	KeyProfile        = "profile"
	KeyPersona        = "persona"
	KeyTheme          = "theme"
	KeyTasks          = "tasks"
	KeyHistory        = "history"
	KeyLastActiveDate = "last_active_date"
	KeyAutoSpeech     = "auto_speech"
	KeyActiveFocus    = "active_focus"
)

var ErrMalformed = errors.New("malformed stored value")

// Store is durable storage, atomic per key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, value []byte) error
}

// LoadJSON decodes key into dst. A missing key leaves dst untouched and
// reports found=false. Undecodable payloads wrap ErrMalformed.
func LoadJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	payload, ok, err := store.Read(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

func SaveJSON(ctx context.Context, store Store, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Write(ctx, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
