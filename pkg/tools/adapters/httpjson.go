package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/tools"
)

// HTTPJSONConfig configures a generic JSON-over-HTTP provider binding.
type HTTPJSONConfig struct {
	// BaseURL is the provider's API root, without trailing slash.
	BaseURL string `yaml:"base_url"`

	// AuthHeader and AuthValue set one authentication header, e.g.
	// "X-API-KEY" / "{{.SERPER_API_KEY}}". Empty disables auth.
	AuthHeader string `yaml:"auth_header"`
	AuthValue  string `yaml:"auth_value"`

	// OpPaths maps abstract ops to provider paths, e.g.
	// web_search: /search.
	OpPaths map[string]string `yaml:"op_paths"`

	// Timeout bounds one HTTP round trip.
	Timeout time.Duration `yaml:"timeout"`

	// Idempotent marks whether failed calls may be retried in place.
	// Search and lookup providers are; send-style providers are not.
	Idempotent bool `yaml:"idempotent"`
}

// HTTPJSONAdapter posts params as JSON and expects a JSON object back.
// A response object may carry "items" (list results), "data" (document
// results), and "cost_usd"; any other shape is wrapped whole into Data.
type HTTPJSONAdapter struct {
	cfg        HTTPJSONConfig
	httpClient *http.Client
}

// NewHTTPJSONAdapter creates an adapter for one provider.
func NewHTTPJSONAdapter(cfg HTTPJSONConfig) (*HTTPJSONAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("httpjson adapter missing base_url")
	}
	if len(cfg.OpPaths) == 0 {
		return nil, fmt.Errorf("httpjson adapter for %s missing op_paths", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &HTTPJSONAdapter{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Invoke posts the op's params to its configured path.
func (a *HTTPJSONAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*tools.Result, error) {
	path, ok := a.cfg.OpPaths[op]
	if !ok {
		return nil, resilience.Permanent(fmt.Errorf("op %s not supported by %s", op, a.cfg.BaseURL))
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, resilience.NewError(resilience.ClassInput, fmt.Errorf("marshal params: %w", err))
	}

	url := a.cfg.BaseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, resilience.Internal(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if a.cfg.AuthHeader != "" {
		req.Header.Set(a.cfg.AuthHeader, a.cfg.AuthValue)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, resilience.Transient(fmt.Errorf("call %s: %w", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drained, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		cause := fmt.Errorf("provider returned HTTP %d for %s: %s",
			resp.StatusCode, op, strings.TrimSpace(string(drained)))
		return nil, resilience.FromStatus(resp.StatusCode, cause, parseRetryAfter(resp))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, resilience.Transient(fmt.Errorf("decode response from %s: %w", url, err))
	}

	return resultFromPayload(payload), nil
}

// Idempotent reports the configured retry safety.
func (a *HTTPJSONAdapter) Idempotent() bool {
	return a.cfg.Idempotent
}

// resultFromPayload maps a provider response object onto a Result.
func resultFromPayload(payload map[string]any) *tools.Result {
	result := &tools.Result{}
	recognized := false

	switch items := payload["items"].(type) {
	case []any:
		recognized = true
		for _, raw := range items {
			if item, ok := raw.(map[string]any); ok {
				result.Items = append(result.Items, item)
			}
		}
	}
	if data, ok := payload["data"].(map[string]any); ok {
		recognized = true
		result.Data = data
	}
	if cost, ok := payload["cost_usd"].(float64); ok {
		result.CostUSD = cost
	}

	if !recognized {
		result.Data = payload
	}
	return result
}

// parseRetryAfter reads a delay-seconds or HTTP-date Retry-After header.
func parseRetryAfter(resp *http.Response) time.Duration {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
