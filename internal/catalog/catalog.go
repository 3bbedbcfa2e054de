// Package catalog holds the static emotion reference data: six emotion
// scales, each with an ordered run of intensity levels carrying valence
// and arousal metadata. The catalog is fixed at compile time — the engine
// only looks values up, it never edits them.
package catalog

import "sort"

// Key identifies one of the six emotion scales.
type Key string

// The fixed set of emotion scale keys.
const (
	Alegria  Key = "alegria"
	Tristeza Key = "tristeza"
	Raiva    Key = "raiva"
	Medo     Key = "medo"
	Surpresa Key = "surpresa"
	Nojo     Key = "nojo"
)

// Level is one intensity rung of an emotion scale. Valence runs 0–10
// (unpleasant → pleasant), arousal 0–10 (calm → intense).
type Level struct {
	Level      int     `json:"level"`
	Label      string  `json:"label"`
	Valence    float64 `json:"valence"`
	Arousal    float64 `json:"arousal"`
	Desc       string  `json:"desc"`
	Examples   string  `json:"examples"`
	Regulation string  `json:"regulation"`
}

// Scale is one emotion category with its ordered levels.
type Scale struct {
	Name        string  `json:"name"`
	ValenceBase float64 `json:"valenceBase"`
	Levels      []Level `json:"levels"`
}

// Affect carries the valence/arousal pair for an assessment. Resolved is
// false when the emotion or level was unknown and the midpoint fallback
// (5, 5) was used — callers can tell "defaulted to 5" apart from "data
// genuinely has value 5".
type Affect struct {
	Valence  float64
	Arousal  float64
	Resolved bool
}

// midpoint is the neutral fallback used when a lookup fails.
const midpoint = 5.0

// Lookup returns the scale for a key.
func Lookup(key Key) (Scale, bool) {
	s, ok := scales[key]
	return s, ok
}

// ResolveLevel returns the level definition for a (key, level) pair.
func ResolveLevel(key Key, level int) (Level, bool) {
	scale, ok := scales[key]
	if !ok {
		return Level{}, false
	}
	for _, l := range scale.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return Level{}, false
}

// Affects resolves the valence/arousal of a (key, level) pair, falling
// back to the neutral midpoint when the pair is unknown.
func Affects(key Key, level int) Affect {
	if l, ok := ResolveLevel(key, level); ok {
		return Affect{Valence: l.Valence, Arousal: l.Arousal, Resolved: true}
	}
	return Affect{Valence: midpoint, Arousal: midpoint}
}

// DisplayName returns the human-readable scale name, or the raw key when
// the key is not in the catalog.
func DisplayName(key Key) string {
	if s, ok := scales[key]; ok {
		return s.Name
	}
	return string(key)
}

// Known reports whether the key resolves to a catalog scale.
func Known(key Key) bool {
	_, ok := scales[key]
	return ok
}

// Keys returns all catalog keys in stable (alphabetical) order.
func Keys() []Key {
	out := make([]Key, 0, len(scales))
	for k := range scales {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
