package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomDigits returns a zero-padded string of n random decimal
// digits, used as the suffix of mirror record identifiers.
func RandomDigits(n int) string {
	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic("generate random digits failed")
	}
	return fmt.Sprintf("%0*d", n, v)
}
