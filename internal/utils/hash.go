package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLength is the number of hex characters kept by Fingerprint.
const fingerprintLength = 16

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Fingerprint returns a short keyed digest of content. Logs carry the
// fingerprint instead of document text so that sensitive values never reach
// log storage, while equal contents can still be correlated.
func Fingerprint(content string, hashKey string) string {
	return HashString(content, hashKey)[:fingerprintLength]
}
