package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/tools"
)

// maxFetchBytes bounds one fetched document.
const maxFetchBytes = 2 << 20

// FetchConfig configures the free-tier public HTTP fetcher.
type FetchConfig struct {
	// AllowedDomains restricts fetchable hosts. Empty allows any host.
	AllowedDomains []string `yaml:"allowed_domains"`

	// CacheTTL bounds how long fetched content is reused.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// Timeout bounds one HTTP round trip.
	Timeout time.Duration `yaml:"timeout"`
}

// fetchEntry holds cached content with a timestamp for TTL expiration.
type fetchEntry struct {
	content   string
	fetchedAt time.Time
}

// FetchAdapter serves the "fetch_url" op: GET a public page, subject to a
// domain allowlist, with an in-memory TTL cache cleaned lazily on read.
type FetchAdapter struct {
	cfg        FetchConfig
	httpClient *http.Client

	mu      sync.RWMutex
	entries map[string]*fetchEntry
}

// NewFetchAdapter creates a fetcher with an empty cache.
func NewFetchAdapter(cfg FetchConfig) *FetchAdapter {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &FetchAdapter{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		entries:    make(map[string]*fetchEntry),
	}
}

// Invoke fetches params["url"] and returns its body as data.
func (a *FetchAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*tools.Result, error) {
	if op != "fetch_url" {
		return nil, resilience.Permanent(fmt.Errorf("op %s not supported by fetch adapter", op))
	}
	rawURL, ok := params["url"].(string)
	if !ok || rawURL == "" {
		return nil, resilience.NewError(resilience.ClassInput, fmt.Errorf("fetch_url requires a url param"))
	}
	if err := a.validateURL(rawURL); err != nil {
		return nil, resilience.NewError(resilience.ClassInput, err)
	}

	if content, ok := a.cachedContent(rawURL); ok {
		return fetchResult(rawURL, content), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, resilience.Internal(fmt.Errorf("create request: %w", err))
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, resilience.Transient(fmt.Errorf("fetch %s: %w", rawURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cause := fmt.Errorf("fetch %s returned HTTP %d", rawURL, resp.StatusCode)
		return nil, resilience.FromStatus(resp.StatusCode, cause, parseRetryAfter(resp))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, resilience.Transient(fmt.Errorf("read %s: %w", rawURL, err))
	}

	content := string(body)
	a.mu.Lock()
	a.entries[rawURL] = &fetchEntry{content: content, fetchedAt: time.Now()}
	a.mu.Unlock()

	return fetchResult(rawURL, content), nil
}

// Idempotent always holds for GET fetches.
func (a *FetchAdapter) Idempotent() bool {
	return true
}

// cachedContent returns unexpired cached content, deleting expired
// entries lazily under a re-check of the write lock.
func (a *FetchAdapter) cachedContent(rawURL string) (string, bool) {
	a.mu.RLock()
	entry, ok := a.entries[rawURL]
	a.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Since(entry.fetchedAt) > a.cfg.CacheTTL {
		a.mu.Lock()
		if current, ok := a.entries[rawURL]; ok && time.Since(current.fetchedAt) > a.cfg.CacheTTL {
			delete(a.entries, rawURL)
		}
		a.mu.Unlock()
		return "", false
	}
	return entry.content, true
}

// validateURL checks scheme and the domain allowlist.
func (a *FetchAdapter) validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}
	if len(a.cfg.AllowedDomains) == 0 {
		return nil
	}

	host := strings.ToLower(parsed.Hostname())
	for _, domain := range a.cfg.AllowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return nil
		}
	}
	return fmt.Errorf("domain %q not in allowed list", host)
}

func fetchResult(rawURL, content string) *tools.Result {
	return &tools.Result{
		Data: map[string]any{
			"url":     rawURL,
			"content": content,
		},
	}
}
