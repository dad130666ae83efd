package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText returns a hex sha256 digest of the given parts joined by "|".
// Used for cache keys so raw text never ends up in Redis key names.
func HashText(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
