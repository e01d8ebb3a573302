package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is the generator used for real deals. It reads from crypto/rand
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0 or the system entropy source fails, since no deal can continue without it
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
