package test

import (
	"math/rand"
	"sync"
	"time"
)

const digits = "0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomPhone returns a pseudo-random phone number with the given country
// prefix, e.g. RandomPhone("265") -> "2659XXXXXXXX".
func RandomPhone(prefix string) string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = digits[randomIntn(len(digits))]
	}
	return prefix + string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
