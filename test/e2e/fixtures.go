package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/tools/adapters"
)

// Tool ids used by the fixture registry. Tests assert against these.
const (
	ToolSearchFree       = "search_free"
	ToolCompaniesDB      = "companies_db"
	ToolSuppressionDB    = "suppression_db"
	ToolEmailVerifier    = "email_verifier"
	ToolFirmoEnricher    = "firmo_enricher"
	ToolContactFinder    = "contact_finder"
	ToolCopywriter       = "copywriter"
	ToolOutreachProvider = "outreach_provider"
	ToolOutreachAdmin    = "outreach_admin"
)

// Per-call cost estimates for the paid fixture tools.
const (
	costCompanySearch = 0.02
	costVerifyEmail   = 0.01
	costEnrich        = 0.05
	costPersonLookup  = 0.03
	costGenerateEmail = 0.10
	costOutreachCall  = 0.05
)

// suppressedDomain is the one candidate company the suppression service
// reports as already contacted.
const suppressedDomain = "lead3.example.com"

// fixtureCompanies returns the candidate companies the company_search
// fixture serves: enough distinct domains to satisfy the route's coverage
// threshold in one call.
func fixtureCompanies() []map[string]any {
	companies := make([]map[string]any, 0, 10)
	for i := 1; i <= 10; i++ {
		companies = append(companies, map[string]any{
			"company_name": fmt.Sprintf("Lead %d Inc", i),
			"domain":       fmt.Sprintf("lead%d.example.com", i),
			"industry":     "saas",
			"employees":    40 + i*10,
		})
	}
	return companies
}

func fixtureSearchHits() []map[string]any {
	return []map[string]any{
		{"url": "https://example.com/report", "title": "Industry report"},
		{"url": "https://example.com/survey", "title": "Buyer survey"},
		{"url": "https://example.com/blog", "title": "Practitioner blog"},
	}
}

// StaticRegistry builds the fixture tool registry the pipeline runs
// against. Routes mirror the production routing policies; overrides
// replace individual op fixtures (a nil Result entry leaves the op
// unserved, so its route fails permanently).
func StaticRegistry(t *testing.T, overrides map[string]*tools.Result) *tools.Registry {
	t.Helper()

	fixtures := map[string]*tools.Result{
		"web_search":     {Items: fixtureSearchHits()},
		"company_search": {Items: fixtureCompanies()},
		"suppression_lookup": {Items: []map[string]any{
			{"domain": suppressedDomain},
		}},
		"verify_email": {Data: map[string]any{
			"status": "valid",
			"email":  "owner@lead.example.com",
		}},
		"enrich_company": {Data: map[string]any{
			"confidence": 0.9,
			"employees":  120,
			"tech":       []any{"crm", "billing"},
		}},
		"person_lookup": {Data: map[string]any{
			"title":    "Founder",
			"linkedin": "https://linkedin.example.com/in/founder",
		}},
		"generate_email": {Data: map[string]any{
			"subject": "Quick question about your practice",
			"body":    "Saw your recent growth. Worth a chat?",
			"quality": 0.85,
		}},
		"create_campaign": {Data: map[string]any{
			"campaign_id": "cmp-fixture-1",
		}},
		"send_email": {Data: map[string]any{"status": "queued"}},
		"fetch_replies": {Items: []map[string]any{
			{"email": "owner@lead.example.com", "sentiment": "positive"},
		}},
		"fetch_campaign_stats": {Data: map[string]any{
			"delivered": 8,
			"opened":    5,
			"replied":   2,
			"bounced":   0,
		}},
		"archive_campaign": {Data: map[string]any{"status": "archived"}},
		"mark_unsent":      {Data: map[string]any{"status": "reverted"}},
	}
	for op, result := range overrides {
		if result == nil {
			delete(fixtures, op)
			continue
		}
		fixtures[op] = result
	}

	perOp := func(ops ...string) map[string]*tools.Result {
		sub := make(map[string]*tools.Result, len(ops))
		for _, op := range ops {
			if result, ok := fixtures[op]; ok {
				sub[op] = result
			}
		}
		return sub
	}

	registry := tools.NewRegistry()
	specs := []*tools.ToolSpec{
		{
			ID:      ToolSearchFree,
			Tier:    tools.TierFree,
			Ops:     []string{"web_search"},
			Adapter: adapters.NewStaticAdapter(perOp("web_search")),
		},
		{
			ID:             ToolCompaniesDB,
			Tier:           tools.TierCheap,
			CostPerCallUSD: costCompanySearch,
			Ops:            []string{"company_search"},
			Adapter:        adapters.NewStaticAdapter(perOp("company_search")),
		},
		{
			ID:      ToolSuppressionDB,
			Tier:    tools.TierFree,
			Ops:     []string{"suppression_lookup"},
			Adapter: adapters.NewStaticAdapter(perOp("suppression_lookup")),
		},
		{
			ID:             ToolEmailVerifier,
			Tier:           tools.TierCheap,
			CostPerCallUSD: costVerifyEmail,
			Ops:            []string{"verify_email"},
			Adapter:        adapters.NewStaticAdapter(perOp("verify_email")),
		},
		{
			ID:             ToolFirmoEnricher,
			Tier:           tools.TierModerate,
			CostPerCallUSD: costEnrich,
			Ops:            []string{"enrich_company"},
			Adapter:        adapters.NewStaticAdapter(perOp("enrich_company")),
		},
		{
			ID:             ToolContactFinder,
			Tier:           tools.TierCheap,
			CostPerCallUSD: costPersonLookup,
			Ops:            []string{"person_lookup"},
			Adapter:        adapters.NewStaticAdapter(perOp("person_lookup")),
		},
		{
			ID:             ToolCopywriter,
			Tier:           tools.TierExpensive,
			CostPerCallUSD: costGenerateEmail,
			Ops:            []string{"generate_email"},
			Adapter:        adapters.NewStaticAdapter(perOp("generate_email")),
		},
		{
			ID:             ToolOutreachProvider,
			Tier:           tools.TierModerate,
			CostPerCallUSD: costOutreachCall,
			Ops:            []string{"create_campaign", "send_email", "fetch_replies", "fetch_campaign_stats"},
			Adapter:        adapters.NewStaticAdapter(perOp("create_campaign", "send_email", "fetch_replies", "fetch_campaign_stats")),
		},
		{
			// Compensation ops live on a free admin tool so unwinding a
			// run never competes with the cap that sank it.
			ID:      ToolOutreachAdmin,
			Tier:    tools.TierFree,
			Ops:     []string{"archive_campaign", "mark_unsent"},
			Adapter: adapters.NewStaticAdapter(perOp("archive_campaign", "mark_unsent")),
		},
	}
	for _, spec := range specs {
		require.NoError(t, registry.RegisterTool(spec))
	}

	routes := []*tools.OpRoute{
		{Op: "web_search", Mode: tools.ModeWaterfall, MaxTier: tools.TierModerate, MinResults: 3, DedupeKey: "url"},
		{Op: "company_search", Mode: tools.ModeCheapestFirst, MaxTier: tools.TierExpensive, MinResults: 10, DedupeKey: "domain"},
		{Op: "person_lookup", Mode: tools.ModeFanout, MaxTier: tools.TierExpensive, TopK: 2, DedupeKey: "email"},
		{Op: "enrich_company", Mode: tools.ModeWaterfall, MaxTier: tools.TierExpensive, MinConfidence: 0.5},
		{Op: "verify_email", Mode: tools.ModeWaterfall, MaxTier: tools.TierModerate},
		{Op: "suppression_lookup", Mode: tools.ModeWaterfall, MaxTier: tools.TierCheap},
		{Op: "generate_email", Mode: tools.ModeWaterfall, MaxTier: tools.TierExpensive},
		{Op: "create_campaign", Mode: tools.ModeWaterfall},
		{Op: "archive_campaign", Mode: tools.ModeWaterfall},
		{Op: "send_email", Mode: tools.ModeWaterfall},
		{Op: "mark_unsent", Mode: tools.ModeWaterfall},
		{Op: "fetch_replies", Mode: tools.ModeWaterfall},
		{Op: "fetch_campaign_stats", Mode: tools.ModeWaterfall},
	}
	for _, route := range routes {
		require.NoError(t, registry.RegisterRoute(route))
	}
	return registry
}
