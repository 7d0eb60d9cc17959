package tools

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalParams serializes params deterministically: encoding/json sorts
// map keys at every nesting level, so equal param maps always produce the
// same bytes regardless of construction order.
func CanonicalParams(params map[string]any) ([]byte, error) {
	if params == nil {
		params = map[string]any{}
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize params: %w", err)
	}
	return data, nil
}

// HashParams returns the hex SHA-256 of the canonical param serialization,
// the params_hash component of the invocation cache key.
func HashParams(params map[string]any) (string, error) {
	data, err := CanonicalParams(params)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
