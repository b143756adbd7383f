package dice

import (
	"crypto/rand"
	"math/big"
)

// float53 is 2^53, the number of distinct evenly spaced float64 values in [0, 1).
var float53 = big.NewInt(1 << 53)

// cryptoSource implements Source and Generator using crypto/rand.
type cryptoSource struct{}

// CryptoSource is a randomness provider backed by crypto/rand.
type CryptoSource interface {
	Source
	Generator
}

// NewCryptoSource returns a non-deterministic source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n) and by Random in [0, 1).
func NewCryptoSource() CryptoSource {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return int(c.draw(big.NewInt(int64(n))))
}

// Random returns a cryptographically secure float in [0, 1).
func (c *cryptoSource) Random() float64 {
	return float64(c.draw(float53)) / float64(1<<53)
}

func (c *cryptoSource) draw(max *big.Int) int64 {
	val, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return val.Int64()
}
