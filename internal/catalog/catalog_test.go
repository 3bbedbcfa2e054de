package catalog

import "testing"

func TestLookupKnownScales(t *testing.T) {
	for _, key := range []Key{Alegria, Tristeza, Raiva, Medo, Surpresa, Nojo} {
		scale, ok := Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) not found", key)
			continue
		}
		if scale.Name == "" {
			t.Errorf("scale %q has no display name", key)
		}
		if len(scale.Levels) == 0 {
			t.Errorf("scale %q has no levels", key)
		}
	}
}

func TestScaleLevelsAreDenseFromOne(t *testing.T) {
	for _, key := range Keys() {
		scale, _ := Lookup(key)
		for i, l := range scale.Levels {
			if l.Level != i+1 {
				t.Errorf("%s level at index %d = %d, want %d", key, i, l.Level, i+1)
			}
		}
	}
}

func TestNojoHasFiveLevels(t *testing.T) {
	scale, _ := Lookup(Nojo)
	if len(scale.Levels) != 5 {
		t.Errorf("nojo has %d levels, want 5", len(scale.Levels))
	}
}

func TestResolveLevel(t *testing.T) {
	l, ok := ResolveLevel(Alegria, 7)
	if !ok {
		t.Fatal("ResolveLevel(alegria, 7) not found")
	}
	if l.Label != "Euforia" {
		t.Errorf("label = %q, want Euforia", l.Label)
	}
	if l.Valence != 9.5 || l.Arousal != 9.5 {
		t.Errorf("affect = (%v, %v), want (9.5, 9.5)", l.Valence, l.Arousal)
	}

	if _, ok := ResolveLevel(Nojo, 6); ok {
		t.Error("ResolveLevel(nojo, 6) should miss")
	}
	if _, ok := ResolveLevel("saudade", 1); ok {
		t.Error("ResolveLevel on an unknown key should miss")
	}
}

func TestAffectsFallsBackToMidpoint(t *testing.T) {
	a := Affects("saudade", 3)
	if a.Resolved {
		t.Error("unknown key should not resolve")
	}
	if a.Valence != 5 || a.Arousal != 5 {
		t.Errorf("fallback affect = (%v, %v), want (5, 5)", a.Valence, a.Arousal)
	}

	b := Affects(Tristeza, 1)
	if !b.Resolved {
		t.Error("known pair should resolve")
	}
}

func TestDisplayNameFallsBackToRawKey(t *testing.T) {
	if got := DisplayName(Alegria); got != "Alegria" {
		t.Errorf("DisplayName(alegria) = %q", got)
	}
	if got := DisplayName("saudade"); got != "saudade" {
		t.Errorf("DisplayName(unknown) = %q, want the raw key", got)
	}
}

func TestKeysSortedAndComplete(t *testing.T) {
	keys := Keys()
	if len(keys) != 6 {
		t.Fatalf("len(Keys()) = %d, want 6", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("Keys() not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
