package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestCallerIdentity(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers falls back to api-client",
			headers:  map[string]string{},
			expected: "api-client",
		},
		{
			name: "X-Forwarded-User wins over email",
			headers: map[string]string{
				"X-Forwarded-User":  "reviewer-alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			expected: "reviewer-alice",
		},
		{
			name: "email identifies the reviewer when no user header",
			headers: map[string]string{
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "bob@example.com",
		},
		{
			name: "service accounts come through X-Remote-User",
			headers: map[string]string{
				"X-Remote-User": "system:serviceaccount:outreach:campaign-bot",
			},
			expected: "system:serviceaccount:outreach:campaign-bot",
		},
		{
			name: "human identity wins over service account",
			headers: map[string]string{
				"X-Forwarded-User": "reviewer-alice",
				"X-Remote-User":    "system:serviceaccount:ns:sa",
			},
			expected: "reviewer-alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, callerIdentity(c))
		})
	}
}
