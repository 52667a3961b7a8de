package store

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewID returns an identifier unique with overwhelming probability: a
// crypto-random UUID, or a time+random fallback if the system's entropy source
// is unavailable.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d_%x", time.Now().UnixMilli(), rand.Uint64())
}
