package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/resilience"
)

func TestFetchAdapterFetchesAndCaches(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("<html>acme careers</html>"))
	}))
	defer server.Close()

	adapter := NewFetchAdapter(FetchConfig{CacheTTL: time.Minute})
	params := map[string]any{"url": server.URL + "/careers"}

	result, err := adapter.Invoke(context.Background(), "fetch_url", params)
	require.NoError(t, err)
	assert.Equal(t, "<html>acme careers</html>", result.Data["content"])

	// Second fetch is served from cache.
	_, err = adapter.Invoke(context.Background(), "fetch_url", params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
	assert.True(t, adapter.Idempotent())
}

func TestFetchAdapterCacheExpiry(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	adapter := NewFetchAdapter(FetchConfig{CacheTTL: 10 * time.Millisecond})
	params := map[string]any{"url": server.URL}

	_, err := adapter.Invoke(context.Background(), "fetch_url", params)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = adapter.Invoke(context.Background(), "fetch_url", params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestFetchAdapterAllowlist(t *testing.T) {
	adapter := NewFetchAdapter(FetchConfig{AllowedDomains: []string{"example.com"}})

	_, err := adapter.Invoke(context.Background(), "fetch_url", map[string]any{"url": "https://evil.test/page"})
	require.Error(t, err)
	assert.Equal(t, resilience.ClassInput, resilience.ClassOf(err))

	_, err = adapter.Invoke(context.Background(), "fetch_url", map[string]any{"url": "ftp://example.com/file"})
	require.Error(t, err)
	assert.Equal(t, resilience.ClassInput, resilience.ClassOf(err))

	// Subdomains of an allowed domain pass validation.
	assert.NoError(t, adapter.validateURL("https://www.example.com/page"))
	assert.NoError(t, adapter.validateURL("https://jobs.example.com/page"))
}

func TestFetchAdapterRejectsOtherOps(t *testing.T) {
	adapter := NewFetchAdapter(FetchConfig{})

	_, err := adapter.Invoke(context.Background(), "web_search", map[string]any{"query": "x"})
	require.Error(t, err)
	assert.Equal(t, resilience.ClassPermanent, resilience.ClassOf(err))

	_, err = adapter.Invoke(context.Background(), "fetch_url", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, resilience.ClassInput, resilience.ClassOf(err))
}

func TestFetchAdapterStatusMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewFetchAdapter(FetchConfig{})
	_, err := adapter.Invoke(context.Background(), "fetch_url", map[string]any{"url": server.URL})
	require.Error(t, err)
	assert.Equal(t, resilience.ClassTransient, resilience.ClassOf(err))
}
