package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Slot key constants, fixed by the backup schema.
const (
	// DefaultAssessmentsKey is the slot holding the serialized
	// assessment sequence.
	DefaultAssessmentsKey = "emotional_assessments"
	// DefaultThemeKey is the slot holding the theme preference.
	DefaultThemeKey = "theme_preference"
)

// Config holds store configuration. Key names and capacity thresholds
// are fixed at construction — nothing is read from ambient globals.
type Config struct {
	AssessmentsKey string
	ThemeKey       string
	// SoftLimitBytes is the serialized-size ceiling that triggers the
	// eviction policy before a write is committed.
	SoftLimitBytes int
	// EvictionKeep is how many most-recent records survive an eviction.
	EvictionKeep int
	DefaultTheme Theme
}

// DefaultConfig holds the stock limits: ~4.5 MB soft ceiling,
// keep the most recent 100 records on overflow, dark theme.
func DefaultConfig() Config {
	return Config{
		AssessmentsKey: DefaultAssessmentsKey,
		ThemeKey:       DefaultThemeKey,
		SoftLimitBytes: 4_500_000,
		EvictionKeep:   100,
		DefaultTheme:   ThemeDark,
	}
}

// Store is the durable, bounded assessment store. Every mutation is a
// full read-modify-overwrite of the slot under the mutex, so a List
// issued after a completed mutation always observes it.
type Store struct {
	mu     sync.Mutex
	slot   Slot
	cfg    Config
	logger *slog.Logger

	// now and lastID support deterministic tests and the
	// strictly-increasing id guarantee.
	now    func() time.Time
	lastID int64
}

// NewStore creates a Store over the given slot. A nil logger falls back
// to slog.Default.
func NewStore(slot Slot, cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AssessmentsKey == "" {
		cfg.AssessmentsKey = DefaultAssessmentsKey
	}
	if cfg.ThemeKey == "" {
		cfg.ThemeKey = DefaultThemeKey
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = ThemeDark
	}
	return &Store{slot: slot, cfg: cfg, logger: logger, now: time.Now}
}

// SetNow overrides the store clock. Test hook.
func (s *Store) SetNow(now func() time.Time) { s.now = now }

// List returns the full current contents in storage order. A missing or
// unparsable slot degrades to an empty sequence — corruption is logged,
// never surfaced as an error.
func (s *Store) List() []Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads and decodes the assessment slot. Callers hold s.mu.
func (s *Store) load() []Assessment {
	raw, ok, err := s.slot.Get(s.cfg.AssessmentsKey)
	if err != nil {
		s.logger.Warn("assessment slot unreadable, treating as empty", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var recs []Assessment
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		s.logger.Warn("assessment slot corrupt, treating as empty", "error", err)
		return nil
	}
	return recs
}

// Append constructs an Assessment from the caller's payload, assigns id
// and timestamp if absent, and persists the whole updated sequence.
// On soft-ceiling overflow with more than EvictionKeep records, the
// oldest records are evicted and the result carries a warning; with
// EvictionKeep or fewer records the write fails with ErrStorageFull.
func (s *Store) Append(p AppendParams) (*AppendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Assessment{
		ID:                s.nextID(),
		Timestamp:         p.Timestamp,
		Emotion:           p.Emotion,
		Level:             p.Level,
		AssessmentContext: p.Context,
	}
	if rec.Timestamp == "" {
		rec.Timestamp = s.now().UTC().Format(time.RFC3339)
	}

	recs := append(s.load(), rec)
	warning, err := s.persistBounded(recs)
	if err != nil {
		return nil, err
	}
	return &AppendResult{Assessment: rec, Warning: warning}, nil
}

// Delete removes exactly one record by id, reporting whether it existed.
func (s *Store) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.load()
	kept := recs[:0]
	found := false
	for _, r := range recs {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes all records.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.Delete(s.cfg.AssessmentsKey); err != nil {
		return fmt.Errorf("clear assessments: %w", err)
	}
	return nil
}

// Theme returns the stored theme preference, or the configured default
// when the slot is unset, unreadable, or holds an unknown value.
func (s *Store) Theme() Theme {
	raw, ok, err := s.slot.Get(s.cfg.ThemeKey)
	if err != nil || !ok {
		return s.cfg.DefaultTheme
	}
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw)
	}
	return s.cfg.DefaultTheme
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(t Theme) error {
	if t != ThemeLight && t != ThemeDark {
		return fmt.Errorf("unknown theme %q", t)
	}
	if err := s.slot.Set(s.cfg.ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// nextID assigns a creation-time id in milliseconds with a monotonic
// guard: two records created in the same millisecond never collide.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persistBounded serializes recs, applies the eviction policy against
// the soft ceiling, and writes the slot. Returns the user-visible
// warning when eviction ran. Callers hold s.mu.
func (s *Store) persistBounded(recs []Assessment) (string, error) {
	data, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("serialize assessments: %w", err)
	}

	if s.cfg.SoftLimitBytes > 0 && len(data) > s.cfg.SoftLimitBytes {
		if len(recs) > s.cfg.EvictionKeep {
			trimmed := recs[len(recs)-s.cfg.EvictionKeep:]
			if err := s.persist(trimmed); err != nil {
				return "", err
			}
			s.logger.Warn("soft ceiling exceeded, old records archived",
				"kept", len(trimmed), "dropped", len(recs)-len(trimmed))
			return "armazenamento cheio, registros antigos foram arquivados", nil
		}
		return "", fmt.Errorf("%d bytes serialized: %w", len(data), ErrStorageFull)
	}

	if err := s.writeRaw(data); err != nil {
		return "", err
	}
	return "", nil
}

// persist writes recs without the soft-ceiling check. Callers hold s.mu.
func (s *Store) persist(recs []Assessment) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("serialize assessments: %w", err)
	}
	return s.writeRaw(data)
}

func (s *Store) writeRaw(data []byte) error {
	err := s.slot.Set(s.cfg.AssessmentsKey, string(data))
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrQuotaExceeded) {
		return err
	}
	return fmt.Errorf("write assessments: %w", err)
}
