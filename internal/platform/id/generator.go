package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque random identifiers such as session tokens.
type Generator interface {
	NewID() (string, error)
}

const defaultTokenBytes = 24

type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns a generator producing hex strings of size random
// bytes. size < 16 falls back to the default.
func NewRandomGenerator(size int) *RandomGenerator {
	if size < 16 {
		size = defaultTokenBytes
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := defaultTokenBytes
	if g != nil && g.size > 0 {
		size = g.size
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
