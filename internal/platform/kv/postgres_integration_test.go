package kv_test

import (
	"context"
	"os"
	"testing"
	"time"

	"questlog/internal/platform/kv"
)

func TestPgStoreIntegration(t *testing.T) {
	dsn := os.Getenv("QUESTLOG_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("QUESTLOG_TEST_POSTGRES_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := kv.NewPgStore(ctx, dsn)
	if err != nil {
		t.Fatalf("new pg store: %v", err)
	}
	defer func() { _ = store.Close() }()

	key := "test_" + time.Now().Format("150405.000000")
	if err := store.Within(ctx, func(txCtx context.Context) error {
		return store.Write(txCtx, key, []byte(`{"ok":true}`))
	}); err != nil {
		t.Fatalf("write in tx: %v", err)
	}
	value, ok, err := store.Read(ctx, key)
	if err != nil || !ok {
		t.Fatalf("read: ok=%t err=%v", ok, err)
	}
	if string(value) != `{"ok":true}` {
		t.Fatalf("unexpected value %s", value)
	}
}
