// Package randutil centralises how the engine derives its PRNGs so that every
// call site is either explicitly seeded (reproducible) or explicitly drawn
// from the OS entropy pool at the boundary. Nothing in this module touches
// the global math/rand state.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; both are derived from the single
// caller-supplied seed via a splitmix-style finalizer so that nearby seeds
// still produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnpredictable returns a *rand.Rand seeded from crypto/rand. Intended for
// production shuffles where no reproducibility contract applies.
func NewUnpredictable() *rand.Rand {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; there is no
		// reasonable fallback for a card shuffler.
		panic("randutil: crypto/rand unavailable: " + err.Error())
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(buf[0:8]),
		binary.LittleEndian.Uint64(buf[8:16]),
	))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
