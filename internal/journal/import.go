package journal

import (
	"encoding/json"
	"fmt"
	"sort"
)

// importDocument is the accepted backup shape. Only the assessments
// array matters for the merge; the surrounding metadata is ignored.
type importDocument struct {
	Assessments []json.RawMessage `json:"assessments"`
}

// importProbe checks structural validity before a candidate is decoded
// into a closed Assessment: timestamp and emotion non-empty, level
// numeric. ID stays raw because anonymized exports carry string
// pseudo-ids that must not collide with real ids.
type importProbe struct {
	ID        json.RawMessage `json:"id"`
	Timestamp string          `json:"timestamp"`
	Emotion   string          `json:"emotion"`
	Level     *float64        `json:"level"`
}

// Import parses a previously exported JSON document and folds its
// records into the store, deduplicating by id. Structurally invalid
// entries are dropped silently; candidates whose id is absent or not an
// integer (anonymized pseudo-ids) are adopted under a freshly assigned
// id. The merged set is sorted ascending by timestamp and persisted as
// one whole write.
func (s *Store) Import(document []byte) (*ImportResult, error) {
	var doc importDocument
	if err := json.Unmarshal(document, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Assessments == nil {
		return nil, fmt.Errorf("%w: documento sem o campo 'assessments'", ErrInvalidFormat)
	}

	valid := make([]Assessment, 0, len(doc.Assessments))
	fresh := 0
	for _, raw := range doc.Assessments {
		var probe importProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.Timestamp == "" || probe.Emotion == "" || probe.Level == nil {
			continue
		}
		var rec Assessment
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Non-integer id (e.g. "anon-..."): keep the content under
			// a fresh id so re-imported anonymized history survives.
			rec = Assessment{}
			if err := json.Unmarshal(stripID(raw), &rec); err != nil {
				continue
			}
			fresh++
		}
		valid = append(valid, rec)
	}
	if len(valid) == 0 {
		return nil, ErrNoValidRecords
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.load()
	seen := make(map[int64]struct{}, len(merged))
	for _, r := range merged {
		seen[r.ID] = struct{}{}
	}

	added := 0
	for _, rec := range valid {
		if rec.ID == 0 {
			rec.ID = s.nextID()
		}
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		merged = append(merged, rec)
		added++
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, _ := merged[i].Time()
		tj, _ := merged[j].Time()
		return ti.Before(tj)
	})

	warning, err := s.persistBounded(merged)
	if err != nil {
		return nil, err
	}
	if fresh > 0 {
		s.logger.Info("assigned fresh ids to imported records without integer ids", "count", fresh)
	}
	return &ImportResult{Added: added, Warning: warning}, nil
}

// stripID rewrites a candidate record without its id field so the rest
// of the fields can decode into the closed Assessment shape.
func stripID(raw json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw
	}
	delete(fields, "id")
	out, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return out
}
