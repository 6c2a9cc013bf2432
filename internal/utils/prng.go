// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-sky-chase/internal/defs"
)

// PRNGService wraps Go's random generator so the whole game can run on a
// seeded, reproducible stream.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a random float in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance reports true with probability p (clamped to [0, 1]).
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// ChooseWeighted picks a row of the coin drop table proportionally to its
// weight. It sums the weights, draws into that range and walks to the row
// the draw lands on.
func (s *PRNGService) ChooseWeighted(entries []defs.CoinDropEntry) (defs.CoinDropEntry, bool) {
	if len(entries) == 0 {
		return defs.CoinDropEntry{}, false
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0], true
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry, true
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1], true
}
