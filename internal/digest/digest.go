// Package digest derives stable storage keys from canonical image bytes.
package digest

import (
	"crypto/sha256"
	"fmt"
)

// Key returns a deterministic content key: the prefix followed by the first
// 16 hex chars of the sha256 of b.
func Key(prefix string, b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}
