package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/resilience"
)

func TestHTTPJSONInvokeSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/search", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"items":    []map[string]any{{"url": "https://a.example", "title": "Acme"}},
			"cost_usd": 0.0012,
		})
	}))
	defer server.Close()

	adapter, err := NewHTTPJSONAdapter(HTTPJSONConfig{
		BaseURL:    server.URL,
		AuthHeader: "X-API-KEY",
		AuthValue:  "secret",
		OpPaths:    map[string]string{"web_search": "/search"},
		Idempotent: true,
	})
	require.NoError(t, err)

	result, err := adapter.Invoke(context.Background(), "web_search", map[string]any{"query": "acme"})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotAuth)
	assert.Equal(t, "acme", gotBody["query"])
	require.Len(t, result.Items, 1)
	assert.Equal(t, "https://a.example", result.Items[0]["url"])
	assert.InDelta(t, 0.0012, result.CostUSD, 1e-9)
	assert.True(t, adapter.Idempotent())
}

func TestHTTPJSONUnrecognizedShapeWrapsWhole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"organic": []any{}, "credits": 3})
	}))
	defer server.Close()

	adapter, err := NewHTTPJSONAdapter(HTTPJSONConfig{
		BaseURL: server.URL,
		OpPaths: map[string]string{"web_search": "search"},
	})
	require.NoError(t, err)

	result, err := adapter.Invoke(context.Background(), "web_search", nil)
	require.NoError(t, err)
	assert.Contains(t, result.Data, "organic")
	assert.Contains(t, result.Data, "credits")
}

func TestHTTPJSONStatusClassification(t *testing.T) {
	status := http.StatusTooManyRequests
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "7")
		}
		w.WriteHeader(status)
	}))
	defer server.Close()

	adapter, err := NewHTTPJSONAdapter(HTTPJSONConfig{
		BaseURL: server.URL,
		OpPaths: map[string]string{"web_search": "/search"},
	})
	require.NoError(t, err)

	_, err = adapter.Invoke(context.Background(), "web_search", nil)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassRateLimited, resilience.ClassOf(err))
	assert.Equal(t, 7*time.Second, resilience.RetryAfterOf(err))

	status = http.StatusServiceUnavailable
	_, err = adapter.Invoke(context.Background(), "web_search", nil)
	assert.Equal(t, resilience.ClassTransient, resilience.ClassOf(err))

	status = http.StatusUnauthorized
	_, err = adapter.Invoke(context.Background(), "web_search", nil)
	assert.Equal(t, resilience.ClassPermanent, resilience.ClassOf(err))
}

func TestHTTPJSONUnsupportedOp(t *testing.T) {
	adapter, err := NewHTTPJSONAdapter(HTTPJSONConfig{
		BaseURL: "https://api.example.com",
		OpPaths: map[string]string{"web_search": "/search"},
	})
	require.NoError(t, err)

	_, err = adapter.Invoke(context.Background(), "find_email", nil)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassPermanent, resilience.ClassOf(err))
}

func TestHTTPJSONConfigValidation(t *testing.T) {
	_, err := NewHTTPJSONAdapter(HTTPJSONConfig{OpPaths: map[string]string{"x": "/x"}})
	assert.Error(t, err)

	_, err = NewHTTPJSONAdapter(HTTPJSONConfig{BaseURL: "https://api.example.com"})
	assert.Error(t, err)
}
