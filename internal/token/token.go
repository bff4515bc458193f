// Package token provides the capability-token primitive behind anonymous
// survey links.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultLength is the number of characters in a generated token.
const DefaultLength = 32

// Letters and digits only, to keep tokens URL-safe.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces candidate tokens. The uniqueness retry loop lives in the
// caller, which checks candidates against the store; injecting the generator
// lets tests force collisions deterministically.
type Generator interface {
	Generate() (string, error)
}

// RandomGenerator generates cryptographically random alphanumeric tokens.
type RandomGenerator struct {
	Length int
}

// NewRandomGenerator creates a RandomGenerator with the default token length.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Length: DefaultLength}
}

// Generate returns a new random token candidate.
func (g *RandomGenerator) Generate() (string, error) {
	length := g.Length
	if length <= 0 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
