package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashParamsOrderIndependent(t *testing.T) {
	a := map[string]any{
		"query":  "golang hiring",
		"count":  10,
		"filter": map[string]any{"country": "US", "active": true},
	}
	b := map[string]any{
		"filter": map[string]any{"active": true, "country": "US"},
		"count":  10,
		"query":  "golang hiring",
	}

	hashA, err := HashParams(a)
	require.NoError(t, err)
	hashB, err := HashParams(b)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 64)
}

func TestHashParamsDistinguishesValues(t *testing.T) {
	hashA, err := HashParams(map[string]any{"query": "a"})
	require.NoError(t, err)
	hashB, err := HashParams(map[string]any{"query": "b"})
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
}

func TestHashParamsNilAndEmptyEqual(t *testing.T) {
	hashNil, err := HashParams(nil)
	require.NoError(t, err)
	hashEmpty, err := HashParams(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, hashNil, hashEmpty)
}
