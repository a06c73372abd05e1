// Package rand provides the random number generator used for key material.
// Every value it returns is drawn from crypto/rand through the math/rand
// API, so the generator is safe for secrets but slower than a seeded one.
//
//	import "github.com/prysmaticlabs/buildersig/crypto/rand"
//	var ikm [32]byte
//	_, err := rand.NewGenerator().Read(ikm[:])
package rand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

type source struct{}

var lock sync.RWMutex
var _ mrand.Source64 = (*source)(nil) /* #nosec G404 */

// Seed is a no-op: the source is never seeded.
func (_ *source) Seed(_ int64) {}

// Int63 returns a uniformly distributed value in [0, 1<<63).
func (s *source) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

// Uint64 returns a uniformly distributed value read from crypto/rand.
// It panics if crypto/rand cannot be read.
func (_ *source) Uint64() (val uint64) {
	lock.RLock()
	defer lock.RUnlock()
	if err := binary.Read(rand.Reader, binary.BigEndian, &val); err != nil {
		panic(err)
	}
	return
}

// Rand is alias for underlying random generator.
type Rand = mrand.Rand // #nosec G404

// NewGenerator returns a generator backed by crypto/rand. The returned
// generator is not safe for concurrent use; take a new one per goroutine.
func NewGenerator() *Rand {
	return mrand.New(&source{}) // #nosec G404 -- excluded
}
