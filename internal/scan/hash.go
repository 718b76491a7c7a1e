package scan

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the SHA-256 content hash of b, hex encoded (64
// characters). It is deterministic: identical bytes always yield the same
// fingerprint. Any byte sequence, including empty, produces a valid result.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:])
}

// IsFingerprint reports whether s has the shape of a content fingerprint:
// exactly 64 hex characters. Scan handles are disambiguated by format alone,
// so anything else is treated as a server-issued analysis ID.
func IsFingerprint(s string) bool {
	if len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}
