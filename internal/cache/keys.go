package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"
)

// KeyPrefix constants for different cache entry types
const (
	PrefixEntry = "entry"
)

// EntryKey generates a cache key for an archive's decoded library
// entry. The key covers path, size and mtime, so touching or rewriting
// an archive invalidates its cached entry automatically.
func EntryKey(path string, size int64, mtime time.Time) string {
	normalized := filepath.Clean(path)
	payload := fmt.Sprintf("%s|%d|%d", normalized, size, mtime.UnixNano())
	hash := sha256.Sum256([]byte(payload))
	return PrefixEntry + ":" + hex.EncodeToString(hash[:])
}
