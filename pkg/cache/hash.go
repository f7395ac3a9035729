package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// hashKey derives a namespaced key of the form prefix:<sha256 hex>. Each
// part is written length-delimited into the digest so adjacent parts cannot
// collide ("ab","c" hashes differently than "a","bc").
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		s := fmt.Sprintf("%v", p)
		fmt.Fprintf(h, "%d:%s;", len(s), s)
	}
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h.Sum(nil)))
}

// Hash fingerprints raw content, typically a canonical spec or floorplan
// encoding, as a 64-character hex SHA-256 string. Solves are deterministic,
// so equal hashes mean interchangeable cached results.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
