package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestSlot(t *testing.T) *SQLiteSlot {
	t.Helper()
	slot, err := OpenSQLiteSlot(t.TempDir())
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestSQLiteSlotRoundTrip(t *testing.T) {
	slot := openTestSlot(t)

	if err := slot.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := slot.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "v1" {
		t.Errorf("Get = (%q, %v), want (v1, true)", got, ok)
	}

	// Set is a whole-value overwrite.
	if err := slot.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = slot.Get("k")
	if got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}
}

func TestSQLiteSlotMissingKey(t *testing.T) {
	slot := openTestSlot(t)

	_, ok, err := slot.Get("absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("absent key should report ok = false")
	}
}

func TestSQLiteSlotDelete(t *testing.T) {
	slot := openTestSlot(t)

	if err := slot.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := slot.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := slot.Get("k"); ok {
		t.Error("deleted key should be gone")
	}

	// Deleting an absent key is not an error.
	if err := slot.Delete("k"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestOpenSQLiteSlotCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	slot, err := OpenSQLiteSlot(dir)
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })

	if _, err := os.Stat(filepath.Join(dir, "journal.db")); err != nil {
		t.Errorf("expected journal.db under the data dir: %v", err)
	}
}

func TestSQLiteSlotPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	slot, err := OpenSQLiteSlot(dir)
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}
	if err := slot.Set("k", "durable"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLiteSlot(dir)
	if err != nil {
		t.Fatalf("reopen slot: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, ok, err := reopened.Get("k")
	if err != nil || !ok || got != "durable" {
		t.Errorf("Get after reopen = (%q, %v, %v), want (durable, true, nil)", got, ok, err)
	}
}
