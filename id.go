package powerbill

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns an identifier that is unique within the process lifetime
// with overwhelming probability. It is a random UUID (122 bits of entropy)
// when the system's entropy source is available.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// The entropy source is unavailable. Fall back to a weaker
		// time+PRNG composite: availability matters more than the
		// collision guarantee for a single-user book.
		return fallbackID()
	}
	return id.String()
}

var fallbackRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// fallbackID composes a UUID-shaped identifier from the clock and two PRNG
// draws. Not cryptographically random.
func fallbackID() string {
	now := time.Now().UnixNano()
	a, b := fallbackRand.Uint64(), fallbackRand.Uint64()
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uint32(now), uint16(now>>32), uint16(a), uint16(a>>16), b&0xffffffffffff)
}
