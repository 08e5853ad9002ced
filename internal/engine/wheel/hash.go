package wheel

import (
	"crypto/sha256"
	"encoding/base64"
)

// RecordDigest computes the content digest of a blob in the format the
// RECORD manifest expects: "sha256=" followed by the unpadded URL-safe
// base64 encoding of the SHA-256 digest.
func RecordDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256=" + base64.RawURLEncoding.EncodeToString(sum[:])
}
