package journal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore creates a Store over an unbounded MemSlot with a fixed
// clock starting at base.
func newTestStore(t *testing.T) (*Store, *MemSlot) {
	t.Helper()
	slot := NewMemSlot()
	store := NewStore(slot, DefaultConfig(), quietLogger())
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return base })
	return store, slot
}

func mustAppend(t *testing.T, store *Store, level int, ts string) Assessment {
	t.Helper()
	res, err := store.Append(AppendParams{
		Emotion:   "alegria",
		Level:     level,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	return res.Assessment
}

// ─── Append ──────────────────────────────────────────────────────────────────

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	store, _ := newTestStore(t)

	res, err := store.Append(AppendParams{Emotion: "alegria", Level: 5})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if res.Assessment.ID == 0 {
		t.Error("expected a non-zero id")
	}
	if res.Assessment.Timestamp != "2026-08-29T12:00:00Z" {
		t.Errorf("timestamp = %q, want the fixed clock instant", res.Assessment.Timestamp)
	}
	if res.Warning != "" {
		t.Errorf("unexpected warning: %q", res.Warning)
	}

	recs := store.List()
	if len(recs) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(recs))
	}
	if recs[0].ID != res.Assessment.ID {
		t.Error("listed record should carry the assigned id")
	}
}

func TestAppendKeepsCallerTimestamp(t *testing.T) {
	store, _ := newTestStore(t)

	rec := mustAppend(t, store, 3, "2026-01-02T08:30:00Z")
	if rec.Timestamp != "2026-01-02T08:30:00Z" {
		t.Errorf("timestamp = %q, want the caller's value", rec.Timestamp)
	}
}

func TestAppendIDsStrictlyIncrease(t *testing.T) {
	store, _ := newTestStore(t)

	// The clock is frozen, so every id after the first comes from the
	// monotonic guard.
	var last int64
	for i := 0; i < 5; i++ {
		rec := mustAppend(t, store, 2, "")
		if rec.ID <= last {
			t.Fatalf("id %d not greater than previous %d", rec.ID, last)
		}
		last = rec.ID
	}
}

// ─── List / corruption ───────────────────────────────────────────────────────

func TestListEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)
	if got := store.List(); len(got) != 0 {
		t.Errorf("len(List()) = %d, want 0", len(got))
	}
}

func TestListCorruptSlotDegradesToEmpty(t *testing.T) {
	store, slot := newTestStore(t)
	if err := slot.Set(DefaultAssessmentsKey, "{not json"); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	if got := store.List(); len(got) != 0 {
		t.Errorf("corrupt slot should read as empty, got %d records", len(got))
	}

	// The store must still accept writes afterwards.
	mustAppend(t, store, 4, "")
	if got := store.List(); len(got) != 1 {
		t.Errorf("len(List()) after recovery append = %d, want 1", len(got))
	}
}

// ─── Delete / Clear ──────────────────────────────────────────────────────────

func TestDeleteByID(t *testing.T) {
	store, _ := newTestStore(t)
	a := mustAppend(t, store, 2, "")
	b := mustAppend(t, store, 3, "")

	deleted, err := store.Delete(a.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected deleted = true for an existing id")
	}

	recs := store.List()
	if len(recs) != 1 || recs[0].ID != b.ID {
		t.Errorf("remaining records = %+v, want only id %d", recs, b.ID)
	}

	deleted, err = store.Delete(a.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("expected deleted = false for an already-removed id")
	}
}

func TestClear(t *testing.T) {
	store, slot := newTestStore(t)
	mustAppend(t, store, 2, "")
	mustAppend(t, store, 3, "")

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.List(); len(got) != 0 {
		t.Errorf("len(List()) after clear = %d, want 0", len(got))
	}
	if raw := slot.Raw(DefaultAssessmentsKey); raw != "" {
		t.Errorf("slot should be deleted, still holds %q", raw)
	}
}

// ─── Theme ───────────────────────────────────────────────────────────────────

func TestThemeDefaultsToDark(t *testing.T) {
	store, _ := newTestStore(t)
	if got := store.Theme(); got != ThemeDark {
		t.Errorf("Theme() = %q, want dark", got)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.SetTheme(ThemeLight); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if got := store.Theme(); got != ThemeLight {
		t.Errorf("Theme() = %q, want light", got)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.SetTheme(Theme("sepia")); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestThemeUnknownStoredValueDegradesToDefault(t *testing.T) {
	store, slot := newTestStore(t)
	if err := slot.Set(DefaultThemeKey, "sepia"); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	if got := store.Theme(); got != ThemeDark {
		t.Errorf("Theme() = %q, want the default for an unknown stored value", got)
	}
}

// ─── Eviction / quota ────────────────────────────────────────────────────────

// seedRecords loads n records directly through the store with distinct
// timestamps so eviction order is observable.
func seedRecords(t *testing.T, store *Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		mustAppend(t, store, 2, ts)
	}
}

func TestAppendEvictsOldestOnSoftCeiling(t *testing.T) {
	slot := NewMemSlot()
	cfg := DefaultConfig()
	cfg.SoftLimitBytes = 1 // every write overflows
	cfg.EvictionKeep = 10
	store := NewStore(slot, cfg, quietLogger())
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return base })

	// Seed 20 records past the policy by loosening the ceiling first.
	store.cfg.SoftLimitBytes = 0
	seedRecords(t, store, 20)
	store.cfg.SoftLimitBytes = 1

	res, err := store.Append(AppendParams{Emotion: "alegria", Level: 5})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if res.Warning == "" {
		t.Error("expected an eviction warning")
	}
	if !strings.Contains(res.Warning, "arquivados") {
		t.Errorf("warning = %q, want the archive notice", res.Warning)
	}

	recs := store.List()
	if len(recs) != 10 {
		t.Fatalf("len(List()) after eviction = %d, want EvictionKeep", len(recs))
	}
	// The newest record must have survived.
	if recs[len(recs)-1].ID != res.Assessment.ID {
		t.Error("the just-appended record should be the last survivor")
	}
}

func TestAppendStorageFullWhenNothingToEvict(t *testing.T) {
	slot := NewMemSlot()
	cfg := DefaultConfig()
	cfg.SoftLimitBytes = 1
	cfg.EvictionKeep = 100
	store := NewStore(slot, cfg, quietLogger())

	_, err := store.Append(AppendParams{Emotion: "alegria", Level: 5})
	if !errors.Is(err, ErrStorageFull) {
		t.Errorf("err = %v, want ErrStorageFull", err)
	}
	if got := store.List(); len(got) != 0 {
		t.Errorf("failed append must not persist anything, got %d records", len(got))
	}
}

func TestAppendSurfacesHardQuota(t *testing.T) {
	slot := NewMemSlot()
	slot.Capacity = 10 // far below one serialized record
	store := NewStore(slot, DefaultConfig(), quietLogger())

	_, err := store.Append(AppendParams{Emotion: "alegria", Level: 5})
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestAppendSurfacesSlotFailure(t *testing.T) {
	slot := NewMemSlot()
	slot.FailSet = fmt.Errorf("medium offline")
	store := NewStore(slot, DefaultConfig(), quietLogger())

	_, err := store.Append(AppendParams{Emotion: "alegria", Level: 5})
	if err == nil {
		t.Fatal("expected an error from a failing slot")
	}
	if errors.Is(err, ErrQuotaExceeded) {
		t.Error("a generic medium failure must not read as a quota fault")
	}
}
