package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	profileout "questlog/internal/modules/profile/adapter/out"
	"questlog/internal/modules/profile/domain"
	"questlog/internal/modules/profile/dto"
	profilein "questlog/internal/modules/profile/port/in"
	"questlog/internal/modules/profile/service"
	"questlog/internal/modules/profile/usecase"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/kv"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

func newProfile(t *testing.T, store kv.Store, times ...time.Time) profilein.Usecase {
	t.Helper()
	if len(times) == 0 {
		times = []time.Time{time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	}
	return usecase.NewInteractor(service.NewProfileService(&fakeClock{values: times}, profileout.NewKVProfileStore(store, nil)))
}

func TestFreshProfileStartsAtLevelOne(t *testing.T) {
	t.Parallel()
	uc := newProfile(t, kv.NewMemoryStore())

	out, err := uc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if out.Onboarded || out.XP != 0 || out.Level != 1 || out.LevelProgress != 0 {
		t.Fatalf("unexpected fresh profile: %+v", out)
	}
	if out.XPForLevel != 100 {
		t.Fatalf("expected first band of 100 xp, got %d", out.XPForLevel)
	}
}

func TestOnboardRequiresName(t *testing.T) {
	t.Parallel()
	uc := newProfile(t, kv.NewMemoryStore())

	if _, err := uc.Onboard(context.Background(), dto.OnboardInput{Name: "   "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestOnboardKeepsCreatedAtAndXP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	first := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)
	uc := newProfile(t, store, first, first, later)

	if _, err := uc.AwardXP(ctx, dto.AwardXPInput{Amount: 30, Reason: "task"}); err != nil {
		t.Fatalf("award: %v", err)
	}
	if _, err := uc.Onboard(ctx, dto.OnboardInput{Name: " Ada ", Motto: " one step "}); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	out, err := uc.Onboard(ctx, dto.OnboardInput{Name: "Ada L."})
	if err != nil {
		t.Fatalf("re-onboard: %v", err)
	}
	if !out.Onboarded || out.Name != "Ada L." || out.Motto != "" || out.XP != 30 {
		t.Fatalf("unexpected profile: %+v", out)
	}
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !snap.CreatedAt.Equal(first) {
		t.Fatalf("created_at changed: %s", snap.CreatedAt)
	}
	if !snap.UpdatedAt.Equal(later) {
		t.Fatalf("expected updated_at %s, got %s", later, snap.UpdatedAt)
	}
}

func TestAwardXPIgnoresNonPositiveAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newProfile(t, kv.NewMemoryStore())

	if _, err := uc.AwardXP(ctx, dto.AwardXPInput{Amount: 120}); err != nil {
		t.Fatalf("award: %v", err)
	}
	for _, amount := range []int{0, -50} {
		out, err := uc.AwardXP(ctx, dto.AwardXPInput{Amount: amount})
		if err != nil {
			t.Fatalf("award %d: %v", amount, err)
		}
		if out.XP != 120 {
			t.Fatalf("xp changed on award %d: %d", amount, out.XP)
		}
	}
	out, err := uc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Level != 2 || out.XPIntoLevel != 20 || out.XPForLevel != 200 || out.LevelProgress != 10 {
		t.Fatalf("unexpected level at 120 xp: %+v", out)
	}
}

func TestMalformedProfileFallsBackToDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Write(ctx, kv.KeyProfile, []byte(`{"xp": "lots"`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newProfile(t, store)

	out, err := uc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.XP != 0 || out.Level != 1 {
		t.Fatalf("expected default profile, got %+v", out)
	}
	if _, err := uc.AwardXP(ctx, dto.AwardXPInput{Amount: 10}); err != nil {
		t.Fatalf("award after fallback: %v", err)
	}
}

func TestAbsurdStoredXPIsClampedAndStillLevels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	seed := fmt.Sprintf(`{"onboarded": true, "name": "Ada", "xp": %d}`, math.MaxInt64)
	if err := store.Write(ctx, kv.KeyProfile, []byte(seed)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newProfile(t, store)

	out, err := uc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.XP != domain.MaxXP || out.Level < 1 || out.LevelProgress < 0 || out.LevelProgress > 100 {
		t.Fatalf("expected xp clamped to the cap, got %+v", out)
	}
	awarded, err := uc.AwardXP(ctx, dto.AwardXPInput{Amount: 50})
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if awarded.XP != domain.MaxXP {
		t.Fatalf("award past the cap must saturate, got %d", awarded.XP)
	}
}
