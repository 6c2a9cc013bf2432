// internal/utils/prng_test.go
package utils

import (
	"testing"

	"go-sky-chase/internal/defs"
)

func TestSeededStreamsAreReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("Same seed diverged on Intn")
		}
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed diverged on Float64")
		}
	}
}

func TestFloatRange(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.FloatRange(50, 750)
		if v < 50 || v >= 750 {
			t.Fatalf("FloatRange out of range: %v", v)
		}
	}
}

func TestChance(t *testing.T) {
	s := NewPRNGService(1)
	if s.Chance(0) {
		t.Error("Chance(0) fired")
	}
	if !s.Chance(1) {
		t.Error("Chance(1) did not fire")
	}
}

func TestChooseWeighted(t *testing.T) {
	tests := []struct {
		name    string
		entries []defs.CoinDropEntry
		want    defs.CoinKind
		ok      bool
	}{
		{"Empty table", nil, "", false},
		{"Single entry", []defs.CoinDropEntry{{Kind: defs.CoinSpeed, Weight: 1}}, defs.CoinSpeed, true},
		{"Zero weights fall back to first", []defs.CoinDropEntry{
			{Kind: defs.CoinDamage, Weight: 0},
			{Kind: defs.CoinPoints, Weight: 0},
		}, defs.CoinDamage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPRNGService(3)
			entry, ok := s.ChooseWeighted(tt.entries)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && entry.Kind != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, entry.Kind)
			}
		})
	}
}

func TestChooseWeightedNeverPicksZeroWeight(t *testing.T) {
	entries := []defs.CoinDropEntry{
		{Kind: defs.CoinSpeed, Weight: 0},
		{Kind: defs.CoinPoints, Weight: 5},
	}
	s := NewPRNGService(11)
	for i := 0; i < 500; i++ {
		entry, ok := s.ChooseWeighted(entries)
		if !ok {
			t.Fatal("Expected a choice")
		}
		if entry.Kind == defs.CoinSpeed {
			t.Fatal("Zero-weight entry was chosen")
		}
	}
}
