package journal

import (
	"fmt"
	"sync"
)

// Slot is the storage medium abstraction: a durable key→string map with
// whole-value overwrite and no partial-write state visible to readers.
// Implementations translate a hard capacity fault into ErrQuotaExceeded.
type Slot interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set overwrites the whole value for key.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemSlot is an in-memory Slot with an injectable hard capacity, used to
// exercise the quota/eviction policy without a real bounded medium.
type MemSlot struct {
	mu sync.Mutex
	// Capacity is the maximum byte length accepted per value; zero
	// means unlimited.
	Capacity int

	values map[string]string
	// FailSet, when set, makes every Set return this error.
	FailSet error
}

// NewMemSlot creates an unbounded in-memory slot.
func NewMemSlot() *MemSlot {
	return &MemSlot{values: make(map[string]string)}
}

func (m *MemSlot) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemSlot) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	if m.Capacity > 0 && len(value) > m.Capacity {
		return fmt.Errorf("%w: value is %d bytes, capacity %d", ErrQuotaExceeded, len(value), m.Capacity)
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *MemSlot) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Raw returns the stored value without going through the Assessment
// codec. Test helper.
func (m *MemSlot) Raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}
