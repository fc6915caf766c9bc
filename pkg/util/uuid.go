// Package util holds small hashing helpers used to identify compression
// results.
package util

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Md5ThenHex is a quick content hasher.
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashUUID derives a stable UUID from any JSON-serializable value.
func HashUUID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	hasher := md5.New()
	hasher.Write(raw)
	sum := hasher.Sum(nil)
	id, err := uuid.FromBytes(sum[:16])
	if err != nil {
		return ""
	}
	return id.String()
}
