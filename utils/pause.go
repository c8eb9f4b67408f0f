package utils

import (
	"math/rand"
	"time"
)

// Pauser sleeps for a random duration within a bounded range between
// successive requests, to reduce the chance of being rate-limited or
// blocked. The random source is explicit so tests can seed it.
type Pauser struct {
	Min   time.Duration
	Max   time.Duration
	rng   *rand.Rand
	sleep func(time.Duration)
}

// NewPauser creates a Pauser with the given bounds. A zero seed picks a
// time-based one.
func NewPauser(min, max time.Duration, seed int64) *Pauser {
	if max < min {
		max = min
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Pauser{
		Min:   min,
		Max:   max,
		rng:   rand.New(rand.NewSource(seed)),
		sleep: time.Sleep,
	}
}

// Next returns the duration the following Pause call would sleep for.
func (p *Pauser) Next() time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + time.Duration(p.rng.Int63n(int64(p.Max-p.Min)))
}

// Pause blocks for a random duration in [Min, Max). A zero-valued range
// is a no-op, so a Pauser can be disabled through config.
func (p *Pauser) Pause() {
	d := p.Next()
	if d <= 0 {
		return
	}
	p.sleep(d)
}
