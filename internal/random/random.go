// Package random provides the uniform integer sources that drive record
// generation. Callers choose between a seedable source for reproducible
// output and crypto/rand for everything else.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// Source returns uniformly distributed values. IntN draws from [0, n) and
// n must be positive. Uint64 lets a Source drive gofakeit directly.
type Source interface {
	IntN(n int) int
	Uint64() uint64
}

// Faker is a Source backed by gofakeit. The same seed yields the same sequence.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker creates a seeded source. A zero seed picks a random seed.
func NewFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

// IntN returns a value in [0, n).
func (s *Faker) IntN(n int) int {
	return s.f.Number(0, n-1)
}

// Uint64 returns a value over the full uint64 range.
func (s *Faker) Uint64() uint64 {
	return s.f.Uint64()
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

// IntN returns a cryptographically random int in [0, n).
func (Crypto) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// Uint64 returns a cryptographically random uint64.
func (Crypto) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// New returns a Faker for a non-zero seed and Crypto otherwise.
func New(seed uint64) Source {
	if seed == 0 {
		return Crypto{}
	}
	return NewFaker(seed)
}
