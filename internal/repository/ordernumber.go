package repository

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// orderNumberPrefix is the fixed prefix of every human-facing order number.
const orderNumberPrefix = "GC-"

// orderNumberAttempts bounds the uniqueness retry loop in the repositories.
// The time+random scheme is not collision-proof within one millisecond, so
// implementations re-roll against their own records a few times before
// accepting the candidate.
const orderNumberAttempts = 5

// GenerateOrderNumber builds an order number from the last six digits of the
// epoch-millisecond timestamp and a random 0-999 suffix, not zero-padded.
func GenerateOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 1000)
	}

	return fmt.Sprintf("%s%s%d", orderNumberPrefix, millis, n.Int64())
}
