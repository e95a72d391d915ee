package out_test

import (
	"context"
	"testing"

	rolloverout "questlog/internal/modules/rollover/adapter/out"
	"questlog/internal/platform/kv"
)

func TestLoadIgnoresUnreadableDayKeys(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{`42`, `"yesterday"`, `{`} {
		store := kv.NewMemoryStore()
		store.Put(kv.KeyLastActiveDate, []byte(raw))
		day, found, err := rolloverout.NewKVLastActiveStore(store, nil).Load(context.Background())
		if err != nil || found || day != "" {
			t.Fatalf("payload %s: expected absent, got %q %v %v", raw, day, found, err)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	s := rolloverout.NewKVLastActiveStore(store, nil)
	if err := s.Save(context.Background(), "2026-03-01"); err != nil {
		t.Fatalf("save: %v", err)
	}
	day, found, err := s.Load(context.Background())
	if err != nil || !found || day != "2026-03-01" {
		t.Fatalf("unexpected load: %q %v %v", day, found, err)
	}
	if got := string(store.Raw(kv.KeyLastActiveDate)); got != `"2026-03-01"` {
		t.Fatalf("unexpected payload %s", got)
	}
}
