// Package randsrc provides the injectable random source used for noise and fallback prices.
package randsrc

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the prediction code depends on.
type Source interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// Locked wraps a *rand.Rand so it can be shared by concurrent HTTP handlers.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

var _ Source = (*Locked)(nil)

// New returns a goroutine-safe Source. A zero seed seeds from the wall clock.
func New(seed uint64) *Locked {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *Locked) NormFloat64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.NormFloat64()
}
