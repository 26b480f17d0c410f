package repository

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CacheKey derives a stable key for a request: the kind prefix plus the
// xxhash of its JSON encoding.
func CacheKey(kind string, request any) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encode %s request: %w", kind, err)
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(payload)), nil
}
