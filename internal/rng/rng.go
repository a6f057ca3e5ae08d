// Package rng provides a deterministic, reseedable pseudo-random
// source for the worked examples in examples/heuristics and
// examples/profile. It is adapted from tuneinsight/lattigo's
// dbfv.PRNG (a clocked blake2b-based generator originally used for
// sampling common reference strings): the same "hash, emit half,
// feed back the other half, advance a clock" construction, here
// driving reproducible lattice generation instead of CRS sampling.
package rng

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a deterministic byte stream keyed by a seed. Two PRNGs
// constructed with the same key and fed the same seed produce
// identical output, which is what makes the worked examples and their
// tests reproducible without needing crypto/rand.
type PRNG struct {
	clock uint64
	seed  []byte
	hash  blake2bHash
}

type blake2bHash interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// New creates a PRNG. key may be nil.
func New(key []byte) (*PRNG, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return nil, err
	}
	return &PRNG{hash: h}, nil
}

// Seed resets the PRNG's clock and re-seeds its internal hash state
// with seed, without changing the constructor key.
func (p *PRNG) Seed(seed []byte) {
	p.hash.Reset()
	p.seed = append([]byte(nil), seed...)
	if _, err := p.hash.Write(p.seed); err != nil {
		panic(err) // hash.Hash.Write never errors per its interface contract
	}
	p.clock = 0
}

// Clock returns the next 32 pseudo-random bytes and advances the
// generator: it hashes the current state, feeds the left half back
// in to reseed, and returns the right half.
func (p *PRNG) Clock() []byte {
	sum := p.hash.Sum(nil)
	if _, err := p.hash.Write(sum[:32]); err != nil {
		panic(err)
	}
	p.clock++
	return sum[32:]
}

// GetClock returns the number of Clock calls since the last Seed.
func (p *PRNG) GetClock() uint64 { return p.clock }

// ErrClockRewind is returned by SetClock when asked to rewind.
var ErrClockRewind = errors.New("rng: cannot set clock to a previous state")

// SetClock advances the PRNG to clock cycle n by calling Clock until
// it is reached.
func (p *PRNG) SetClock(n uint64) error {
	if p.clock > n {
		return ErrClockRewind
	}
	for p.clock != n {
		p.Clock()
	}
	return nil
}

// Int returns a uniform pseudo-random value in [0, max), max > 0.
func (p *PRNG) Int(max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		panic("rng: Int: max must be positive")
	}
	// Reduces the leading bytes of Clock()'s 32-byte blocks modulo max,
	// with no rejection step, so the result carries a small modulo bias
	// whenever max is not a power of 256. Mirrors the shape of
	// crypto/rand.Int without needing an io.Reader adapter around the
	// clocked hash state.
	byteLen := (max.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	for {
		buf := make([]byte, 0, byteLen)
		for len(buf) < byteLen {
			buf = append(buf, p.Clock()...)
		}
		n := new(big.Int).SetBytes(buf[:byteLen])
		n.Mod(n, max)
		// Uniform enough for deterministic example/test generation;
		// a full rejection-sampling bound is unnecessary here since
		// this PRNG never backs a cryptographic key.
		return n
	}
}

// SignedInt returns a uniform pseudo-random value in [-bound, bound].
func (p *PRNG) SignedInt(bound int64) *big.Int {
	span := big.NewInt(2*bound + 1)
	n := p.Int(span)
	return n.Sub(n, big.NewInt(bound))
}
