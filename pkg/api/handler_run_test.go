package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/config"
	"github.com/outreachkit/prospector/pkg/models"
)

func TestApplyBudgetDefaults(t *testing.T) {
	s := &Server{cfg: &config.Config{
		Budget: &config.BudgetConfig{
			DefaultRunCapUSD: 100,
			PhaseCapsUSD:     map[int]float64{4: 40},
			ToolCapsUSD:      map[string]float64{"serper": 10},
		},
	}}

	t.Run("fills unset caps", func(t *testing.T) {
		req := models.CreateRunRequest{Campaign: "q3"}
		s.applyBudgetDefaults(&req)

		assert.InDelta(t, 100, req.BudgetCapUSD, 1e-9)
		assert.InDelta(t, 40, req.Config.PhaseCapsUSD["4"], 1e-9)
		assert.InDelta(t, 10, req.Config.ToolCapsUSD["serper"], 1e-9)
	})

	t.Run("request caps win", func(t *testing.T) {
		req := models.CreateRunRequest{
			Campaign:     "q3",
			BudgetCapUSD: 25,
			Config: models.RunConfig{
				PhaseCapsUSD: map[string]float64{"2": 5},
			},
		}
		s.applyBudgetDefaults(&req)

		assert.InDelta(t, 25, req.BudgetCapUSD, 1e-9)
		assert.Equal(t, map[string]float64{"2": 5}, req.Config.PhaseCapsUSD,
			"explicit phase caps are not merged with defaults")
	})

	t.Run("nil budget section is a no-op", func(t *testing.T) {
		bare := &Server{cfg: &config.Config{}}
		req := models.CreateRunRequest{Campaign: "q3"}
		bare.applyBudgetDefaults(&req)
		assert.Zero(t, req.BudgetCapUSD)
	})
}

func TestResolveBrief(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Q3 campaign brief: focus on practices with 3+ locations"))
	}))
	defer origin.Close()

	s := NewServer(&config.Config{}, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	t.Run("snapshots content", func(t *testing.T) {
		cfg := models.RunConfig{BriefURL: origin.URL}
		require.NoError(t, s.resolveBrief(context.Background(), &cfg))
		assert.Contains(t, cfg.Brief, "3+ locations")
	})

	t.Run("no brief url is a no-op", func(t *testing.T) {
		cfg := models.RunConfig{}
		require.NoError(t, s.resolveBrief(context.Background(), &cfg))
		assert.Empty(t, cfg.Brief)
	})

	t.Run("explicit brief is kept", func(t *testing.T) {
		cfg := models.RunConfig{BriefURL: origin.URL, Brief: "inline brief"}
		require.NoError(t, s.resolveBrief(context.Background(), &cfg))
		assert.Equal(t, "inline brief", cfg.Brief)
	})

	t.Run("unreachable brief rejects", func(t *testing.T) {
		cfg := models.RunConfig{BriefURL: "ftp://example.com/brief"}
		assert.Error(t, s.resolveBrief(context.Background(), &cfg))
	})
}

func TestServerRouting(t *testing.T) {
	s := NewServer(&config.Config{}, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	require.NotNil(t, s.Handler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/no-such-route", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"), "middleware applies to all routes")
}
