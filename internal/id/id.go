package id

import (
	"crypto/sha1"
	"encoding/hex"
)

// FromText derives a stable draft-question id from the question text.
// The same text always hashes to the same id, so re-importing a source
// document does not mint new identities.
func FromText(text string) string {
	sum := sha1.Sum([]byte(text))
	return "FMQ-" + hex.EncodeToString(sum[:])[:12]
}
