package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns a random (v4) identifier as exactly 32 lowercase hex
// characters, no separators. Used for request ids.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
