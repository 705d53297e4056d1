package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every shuffle in the CLI and the statistics runner goes through here so a
// logged seed is enough to replay a run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed derives a non-zero seed from the clock. Tests pass quartz.NewMock to
// pin it.
func Seed(clock quartz.Clock) int64 {
	seed := int64(mix(uint64(clock.Now().UnixNano())) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Split returns an independent generator for a worker, drawing its seed
// from parent. Calls made in the same order yield the same children.
func Split(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
