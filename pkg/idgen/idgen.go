package idgen

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Prefix keeps delivery ids readable and safe as URL path segments
// (no '#' or other characters that need escaping).
const Prefix = "DEL-"

const maxAttempts = 5

var ErrExhausted = errors.New("could not mint a unique delivery id")

// Taken reports whether an id is already assigned to a live delivery.
type Taken func(id string) (bool, error)

// NewDeliveryID mints an opaque DEL-XXXXXXXX id. The suffix is drawn from a
// v4 UUID and explicitly checked against the store, with a bounded retry on
// collision. ErrExhausted after maxAttempts collisions in a row.
func NewDeliveryID(taken Taken) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id := Prefix + strings.ToUpper(uuid.NewString()[:8])
		exists, err := taken(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrExhausted
}
