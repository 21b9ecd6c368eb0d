package distance

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/fahrwerk/pricing/internal/domain"
)

// Randomized estimate bounds in km: [50, 150).
const (
	randomFloorKm = 50
	randomSpanKm  = 100
)

// RandomSource yields random ints; *rand.Rand satisfies it. Injected so
// tests can pin the sequence.
type RandomSource interface {
	Intn(n int) int
}

// RandomEstimator is the last-resort estimator: a pseudo-random whole-km
// guess. It is non-deterministic on purpose (mock substitute for a real
// geocoding service) and never fails.
type RandomEstimator struct {
	mu  sync.Mutex
	src RandomSource
}

// NewRandomEstimator creates a randomized estimator. A nil source gets a
// time-seeded one.
func NewRandomEstimator(src RandomSource) *RandomEstimator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomEstimator{
		mu:  sync.Mutex{},
		src: src,
	}
}

// EstimateDistance returns a random integer distance in [50, 150).
func (e *RandomEstimator) EstimateDistance(_ context.Context, _, _ string) (domain.DistanceEstimate, error) {
	e.mu.Lock()
	km := randomFloorKm + e.src.Intn(randomSpanKm)
	e.mu.Unlock()

	return domain.DistanceEstimate{Km: float64(km), Source: domain.SourceRandom}, nil
}
