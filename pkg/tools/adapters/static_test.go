package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/tools"
)

func TestStaticAdapterServesFixtures(t *testing.T) {
	adapter := NewStaticAdapter(map[string]*tools.Result{
		"web_search": {Items: []map[string]any{{"url": "https://a.example"}}},
	})

	result, err := adapter.Invoke(context.Background(), "web_search", map[string]any{"query": "x"})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.True(t, adapter.Idempotent())

	_, err = adapter.Invoke(context.Background(), "find_email", nil)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassPermanent, resilience.ClassOf(err))
}
