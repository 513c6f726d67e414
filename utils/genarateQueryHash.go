package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// GenerateQueryHash builds a deterministic cache key for a filtered view.
// Filter keys are sorted so equivalent queries always hash to the same key.
func GenerateQueryHash(resourceType string, filters map[string]string) string {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	query := fmt.Sprintf("resource=%s", resourceType)
	for _, key := range keys {
		query += fmt.Sprintf("&%s=%s", key, filters[key])
	}

	hash := sha256.New()
	hash.Write([]byte(query))
	hashStr := hex.EncodeToString(hash.Sum(nil))

	return fmt.Sprintf("%s:%s", resourceType, hashStr)
}
