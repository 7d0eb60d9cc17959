package logics

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/tools"
)

func okResponse(req agent.ToolRequest, items []map[string]any, data map[string]any) agent.ToolResponse {
	return agent.ToolResponse{
		Request:  req,
		Resolved: true,
		Result:   &tools.RouteResult{Items: items, Data: data},
	}
}

func failedResponse(req agent.ToolRequest) agent.ToolResponse {
	return agent.ToolResponse{Request: req, Resolved: true, Err: fmt.Errorf("provider down")}
}

// roundTrip simulates the checkpoint save/resume JSON cycle a state map
// goes through between rounds.
func roundTrip(t *testing.T, state map[string]any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func leadInput(agentName string, leads []map[string]any) map[string]any {
	return map[string]any{
		"artifacts": map[string]any{
			agentName: map[string]any{"leads": leads},
		},
	}
}

func TestRegisterAll(t *testing.T) {
	reg := agent.NewRegistry()
	require.NoError(t, RegisterAll(reg))
	assert.Len(t, reg.Names(), 20)
	for _, name := range []string{"niche_research", "import_finalizer", "verification_finalizer", "sending", "analytics"} {
		_, err := reg.Get(name)
		assert.NoError(t, err, name)
	}
}

func TestNicheResearchFlow(t *testing.T) {
	logic := NicheResearch{}
	state := logic.InitialState(map[string]any{
		"config": map[string]any{"niche": "dental clinics"},
	})

	outcome := logic.Step(context.Background(), state, nil)
	needs, ok := outcome.(agent.NeedsTools)
	require.True(t, ok)
	assert.Len(t, needs.Requests, 3)
	for _, req := range needs.Requests {
		assert.Equal(t, "web_search", req.Op)
	}

	results := []agent.ToolResponse{
		okResponse(needs.Requests[0], []map[string]any{{"url": "https://a.example", "title": "market"}}, nil),
		okResponse(needs.Requests[1], []map[string]any{{"url": "https://b.example", "title": "pains"}}, nil),
		failedResponse(needs.Requests[2]),
	}
	outcome = logic.Step(context.Background(), roundTrip(t, needs.State), results)
	done, ok := outcome.(agent.Done)
	require.True(t, ok)
	assert.Equal(t, "dental clinics", done.Output["niche"])
	assert.Equal(t, 2, done.Output["source_count"])
}

func TestNicheResearchAbortsWithoutSources(t *testing.T) {
	logic := NicheResearch{}
	state := logic.InitialState(map[string]any{
		"config": map[string]any{"niche": "dental clinics"},
	})
	needs := logic.Step(context.Background(), state, nil).(agent.NeedsTools)

	results := []agent.ToolResponse{
		failedResponse(needs.Requests[0]),
		failedResponse(needs.Requests[1]),
		failedResponse(needs.Requests[2]),
	}
	outcome := logic.Step(context.Background(), needs.State, results)
	abort, ok := outcome.(agent.Abort)
	require.True(t, ok)
	assert.Contains(t, abort.Reason, "no market research sources")
}

func TestListBuilderPagesUntilTarget(t *testing.T) {
	logic := ListBuilder{}
	state := logic.InitialState(map[string]any{
		"config": map[string]any{"lead_target": 3, "icp": map[string]any{"industry": "saas"}},
	})

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	assert.Equal(t, "company_search", needs.Requests[0].Op)
	assert.Equal(t, 0, needs.Requests[0].Params["page"])

	page1 := []map[string]any{
		{"company_name": "Acme", "domain": "acme.io"},
		{"company_name": "Beta", "domain": "beta.io"},
	}
	needs2, ok := logic.Step(context.Background(), roundTrip(t, needs.State),
		[]agent.ToolResponse{okResponse(needs.Requests[0], page1, nil)}).(agent.NeedsTools)
	require.True(t, ok, "two of three leads should page again")
	assert.Equal(t, 1, needs2.Requests[0].Params["page"])

	page2 := []map[string]any{{"company_name": "Gamma", "domain": "gamma.io"}}
	done, ok := logic.Step(context.Background(), roundTrip(t, needs2.State),
		[]agent.ToolResponse{okResponse(needs2.Requests[0], page2, nil)}).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 3, done.Output["count"])
}

func TestListBuilderProvidersDry(t *testing.T) {
	logic := ListBuilder{}
	state := logic.InitialState(map[string]any{
		"config": map[string]any{"lead_target": 100},
	})
	needs := logic.Step(context.Background(), state, nil).(agent.NeedsTools)

	partial := []map[string]any{{"company_name": "Acme", "domain": "acme.io"}}
	needs2 := logic.Step(context.Background(), needs.State,
		[]agent.ToolResponse{okResponse(needs.Requests[0], partial, nil)}).(agent.NeedsTools)

	// Empty page: ship what we have instead of looping forever.
	done, ok := logic.Step(context.Background(), needs2.State,
		[]agent.ToolResponse{okResponse(needs2.Requests[0], nil, nil)}).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 1, done.Output["count"])
}

func TestValidationDropsMalformedLeads(t *testing.T) {
	logic := Validation{}
	state := logic.InitialState(leadInput("list_builder", []map[string]any{
		{"company_name": "Acme", "domain": " ACME.io "},
		{"company_name": "", "domain": "beta.io"},
		{"company_name": "NoDot", "domain": "localhost"},
	}))

	done, ok := logic.Step(context.Background(), roundTrip(t, state), nil).(agent.Done)
	require.True(t, ok)
	leads := itemsFrom(done.Output, "leads")
	require.Len(t, leads, 1)
	assert.Equal(t, "acme.io", leads[0]["domain"])
	assert.Equal(t, 2, done.Output["rejected_count"])
}

func TestValidationAbortsOnEmptyList(t *testing.T) {
	logic := Validation{}
	state := logic.InitialState(leadInput("list_builder", []map[string]any{
		{"company_name": "", "domain": ""},
	}))
	outcome := logic.Step(context.Background(), state, nil)
	abort, ok := outcome.(agent.Abort)
	require.True(t, ok)
	assert.Equal(t, "lead list empty after validation", abort.Reason)
}

func TestWithinDedupKeysByDomain(t *testing.T) {
	logic := WithinDedup{}
	state := logic.InitialState(leadInput("validation", []map[string]any{
		{"company_name": "Acme", "domain": "acme.io"},
		{"company_name": "Acme Inc", "domain": "acme.io"},
		{"company_name": "Beta", "domain": "beta.io"},
	}))
	done := logic.Step(context.Background(), state, nil).(agent.Done)
	assert.Len(t, itemsFrom(done.Output, "leads"), 2)
	assert.Equal(t, 1, done.Output["removed_count"])
}

func TestCrossCampaignDedupFiltersSuppressed(t *testing.T) {
	logic := CrossCampaignDedup{}
	state := logic.InitialState(leadInput("within_dedup", []map[string]any{
		{"company_name": "Acme", "domain": "acme.io"},
		{"company_name": "Beta", "domain": "beta.io"},
	}))

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	assert.Equal(t, "suppression_lookup", needs.Requests[0].Op)

	suppressed := []map[string]any{{"domain": "acme.io"}}
	done, ok := logic.Step(context.Background(), roundTrip(t, needs.State),
		[]agent.ToolResponse{okResponse(needs.Requests[0], suppressed, nil)}).(agent.Done)
	require.True(t, ok)
	leads := itemsFrom(done.Output, "leads")
	require.Len(t, leads, 1)
	assert.Equal(t, "beta.io", leads[0]["domain"])
	assert.Equal(t, 1, done.Output["suppressed_count"])
}

func TestScoringRanksICPFit(t *testing.T) {
	logic := Scoring{}
	input := leadInput("cross_campaign_dedup", []map[string]any{
		{"company_name": "Fit", "domain": "fit.io", "industry": "SaaS", "employees": 50},
		{"company_name": "Miss", "domain": "miss.io", "industry": "Retail", "employees": 5000},
	})
	input["config"] = map[string]any{
		"icp": map[string]any{"industry": "saas", "min_employees": 10, "max_employees": 200},
	}
	state := logic.InitialState(input)

	done := logic.Step(context.Background(), state, nil).(agent.Done)
	leads := itemsFrom(done.Output, "leads")
	assert.InDelta(t, 1.0, floatFrom(leads[0], "score"), 0.001)
	assert.InDelta(t, 0.5, floatFrom(leads[1], "score"), 0.001)
}

func TestImportFinalizerTrimsToTarget(t *testing.T) {
	logic := ImportFinalizer{}
	input := leadInput("scoring", []map[string]any{
		{"domain": "low.io", "score": 0.5},
		{"domain": "high.io", "score": 1.0},
		{"domain": "mid.io", "score": 0.7},
	})
	input["config"] = map[string]any{"lead_target": 2}
	state := logic.InitialState(input)

	done := logic.Step(context.Background(), roundTrip(t, state), nil).(agent.Done)
	leads := itemsFrom(done.Output, "leads")
	require.Len(t, leads, 2)
	assert.Equal(t, "high.io", leads[0]["domain"])
	assert.Equal(t, "mid.io", leads[1]["domain"])
}

func TestImportFinalizerCarriesGateNotes(t *testing.T) {
	logic := ImportFinalizer{}
	input := leadInput("scoring", []map[string]any{{"domain": "a.io", "score": 0.5}})
	input["gate_notes"] = "drop agencies"
	state := logic.InitialState(input)

	done := logic.Step(context.Background(), state, nil).(agent.Done)
	assert.Equal(t, "drop agencies", done.Output["revision_notes"])
	assert.Equal(t, true, done.Output["revised"])
}

func TestEmailVerificationBatches(t *testing.T) {
	logic := EmailVerification{}
	leads := make([]map[string]any, verifyBatchSize+5)
	for i := range leads {
		leads[i] = map[string]any{
			"company_name": fmt.Sprintf("Co %d", i),
			"domain":       fmt.Sprintf("co%d.io", i),
		}
	}
	state := logic.InitialState(leadInput("import_finalizer", leads))

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	assert.Len(t, needs.Requests, verifyBatchSize)

	results := make([]agent.ToolResponse, len(needs.Requests))
	for i, req := range needs.Requests {
		results[i] = okResponse(req, nil, map[string]any{
			"status": "valid",
			"email":  "hello@" + stringFrom(req.Params, "domain"),
		})
	}
	needs2, ok := logic.Step(context.Background(), roundTrip(t, needs.State), results).(agent.NeedsTools)
	require.True(t, ok, "remaining 5 leads need a second round")
	assert.Len(t, needs2.Requests, 5)

	tail := make([]agent.ToolResponse, len(needs2.Requests))
	for i, req := range needs2.Requests {
		tail[i] = okResponse(req, nil, map[string]any{"status": "invalid"})
	}
	done, ok := logic.Step(context.Background(), roundTrip(t, needs2.State), tail).(agent.Done)
	require.True(t, ok)
	assert.Len(t, itemsFrom(done.Output, "verified"), verifyBatchSize+5)
}

func TestVerificationFinalizerJoinsAndFilters(t *testing.T) {
	logic := VerificationFinalizer{}
	input := map[string]any{
		"artifacts": map[string]any{
			"import_finalizer": map[string]any{"leads": []map[string]any{
				{"company_name": "Acme", "domain": "acme.io"},
				{"company_name": "Beta", "domain": "beta.io"},
			}},
			"email_verification": map[string]any{"verified": []map[string]any{
				{"domain": "acme.io", "email": "hi@acme.io", "status": "valid"},
				{"domain": "beta.io", "email": "", "status": "invalid"},
			}},
			"enrichment": map[string]any{"enriched": []map[string]any{
				{"domain": "acme.io", "employees": 40},
			}},
		},
	}
	state := logic.InitialState(input)

	done, ok := logic.Step(context.Background(), roundTrip(t, state), nil).(agent.Done)
	require.True(t, ok)
	leads := itemsFrom(done.Output, "leads")
	require.Len(t, leads, 1)
	assert.Equal(t, "hi@acme.io", leads[0]["email"])
	assert.NotNil(t, leads[0]["enrichment"])
	assert.Equal(t, 1, done.Output["dropped_count"])
}

func TestVerificationFinalizerAbortsWhenNothingDeliverable(t *testing.T) {
	logic := VerificationFinalizer{}
	input := map[string]any{
		"artifacts": map[string]any{
			"import_finalizer": map[string]any{"leads": []map[string]any{
				{"company_name": "Acme", "domain": "acme.io"},
			}},
			"email_verification": map[string]any{"verified": []map[string]any{
				{"domain": "acme.io", "status": "invalid"},
			}},
		},
	}
	outcome := logic.Step(context.Background(), logic.InitialState(input), nil)
	abort, ok := outcome.(agent.Abort)
	require.True(t, ok)
	assert.Equal(t, "no deliverable leads after verification", abort.Reason)
}

func TestEmailGenerationDropsFailedDrafts(t *testing.T) {
	logic := EmailGeneration{}
	input := map[string]any{
		"artifacts": map[string]any{
			"verification_finalizer": map[string]any{"leads": []map[string]any{
				{"company_name": "Acme", "domain": "acme.io", "email": "hi@acme.io"},
				{"company_name": "Beta", "domain": "beta.io", "email": "hi@beta.io"},
			}},
			"company_research": map[string]any{"company_notes": []map[string]any{
				{"domain": "acme.io", "findings": []map[string]any{{"title": "funding"}}},
			}},
		},
	}
	state := logic.InitialState(input)

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	require.Len(t, needs.Requests, 2)

	results := []agent.ToolResponse{
		okResponse(needs.Requests[0], nil, map[string]any{
			"subject": "Quick question", "body": "Hi there", "quality": 0.9,
		}),
		failedResponse(needs.Requests[1]),
	}
	done, ok := logic.Step(context.Background(), roundTrip(t, needs.State), results).(agent.Done)
	require.True(t, ok)
	drafts := itemsFrom(done.Output, "drafts")
	require.Len(t, drafts, 1)
	assert.Equal(t, "hi@acme.io", drafts[0]["email"])
}

func TestPersonalizationFinalizerQualityScore(t *testing.T) {
	logic := PersonalizationFinalizer{}
	input := map[string]any{
		"artifacts": map[string]any{
			"email_generation": map[string]any{"drafts": []map[string]any{
				{"email": "a@a.io", "quality": 0.8},
				{"email": "b@b.io", "quality": 0.6},
			}},
		},
	}
	done, ok := logic.Step(context.Background(), logic.InitialState(input), nil).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 2, done.Output["count"])
	assert.InDelta(t, 0.7, floatFrom(done.Output, "quality_score"), 0.001)
}

func TestCampaignSetupFlowAndCompensation(t *testing.T) {
	logic := CampaignSetup{}
	input := map[string]any{
		"config": map[string]any{"niche": "dental clinics", "sending": map[string]any{"daily_limit": 10}},
		"artifacts": map[string]any{
			"personalization_finalizer": map[string]any{"drafts": []map[string]any{
				{"email": "a@a.io"}, {"email": "b@b.io"},
			}},
		},
	}
	state := logic.InitialState(input)

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	assert.Equal(t, "create_campaign", needs.Requests[0].Op)
	assert.Equal(t, 2, needs.Requests[0].Params["lead_count"])

	done, ok := logic.Step(context.Background(), roundTrip(t, needs.State),
		[]agent.ToolResponse{okResponse(needs.Requests[0], nil, map[string]any{"campaign_id": "cmp-1"})}).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, "cmp-1", done.Output["campaign_id"])

	router := &recordingRouter{}
	comp := agent.CompensationContext{RunID: "run-1", TaskID: "task-1", Phase: 5, Router: router}
	require.NoError(t, logic.Compensate(context.Background(), comp, done.Output))
	require.Len(t, router.calls, 1)
	assert.Equal(t, "archive_campaign", router.calls[0].Op)
	assert.Equal(t, "cmp-1", router.calls[0].Params["campaign_id"])

	// Nothing to unwind when setup never committed.
	require.NoError(t, logic.Compensate(context.Background(), comp, map[string]any{}))
	assert.Len(t, router.calls, 1)
}

func TestSendingBatchesByDailyLimit(t *testing.T) {
	logic := Sending{}
	drafts := []map[string]any{
		{"email": "a@a.io", "subject": "s", "body": "b"},
		{"email": "b@b.io", "subject": "s", "body": "b"},
		{"email": "c@c.io", "subject": "s", "body": "b"},
	}
	input := map[string]any{
		"config": map[string]any{"sending": map[string]any{"daily_limit": 2}},
		"artifacts": map[string]any{
			"campaign_setup":            map[string]any{"campaign_id": "cmp-1"},
			"personalization_finalizer": map[string]any{"drafts": drafts},
		},
	}
	state := logic.InitialState(input)

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	require.Len(t, needs.Requests, 2)
	assert.Equal(t, "send_email", needs.Requests[0].Op)
	assert.Equal(t, "cmp-1", needs.Requests[0].Params["campaign_id"])

	results := []agent.ToolResponse{
		okResponse(needs.Requests[0], nil, map[string]any{"status": "queued"}),
		okResponse(needs.Requests[1], nil, map[string]any{"status": "queued"}),
	}
	needs2, ok := logic.Step(context.Background(), roundTrip(t, needs.State), results).(agent.NeedsTools)
	require.True(t, ok)
	require.Len(t, needs2.Requests, 1)

	done, ok := logic.Step(context.Background(), roundTrip(t, needs2.State),
		[]agent.ToolResponse{okResponse(needs2.Requests[0], nil, nil)}).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 3, done.Output["sent_count"])
	assert.ElementsMatch(t, []string{"a@a.io", "b@b.io", "c@c.io"}, stringsFrom(done.Output, "sent"))
}

func TestSendingCompensationMarksUnsent(t *testing.T) {
	logic := Sending{}
	router := &recordingRouter{}
	comp := agent.CompensationContext{RunID: "run-1", TaskID: "task-2", Phase: 5, Router: router}

	output := map[string]any{
		"campaign_id": "cmp-1",
		"sent":        []any{"a@a.io", "b@b.io"},
	}
	require.NoError(t, logic.Compensate(context.Background(), comp, output))
	require.Len(t, router.calls, 1)
	assert.Equal(t, "mark_unsent", router.calls[0].Op)
	assert.Equal(t, []string{"a@a.io", "b@b.io"}, router.calls[0].Params["emails"])

	require.NoError(t, logic.Compensate(context.Background(), comp, map[string]any{"campaign_id": "cmp-1"}))
	assert.Len(t, router.calls, 1, "nothing sent means nothing to unwind")
}

func TestReplyMonitoringBoundedPolls(t *testing.T) {
	logic := ReplyMonitoring{}
	input := map[string]any{
		"artifacts": map[string]any{
			"sending": map[string]any{"campaign_id": "cmp-1"},
		},
	}
	state := logic.InitialState(input)

	var outcome agent.StepOutcome = logic.Step(context.Background(), state, nil)
	for i := 0; i < maxReplyPolls; i++ {
		needs, ok := outcome.(agent.NeedsTools)
		require.True(t, ok, "poll %d", i)
		assert.Equal(t, "fetch_replies", needs.Requests[0].Op)
		var items []map[string]any
		if i == 0 {
			items = []map[string]any{{"email": "a@a.io", "sentiment": "positive"}}
		}
		outcome = logic.Step(context.Background(), roundTrip(t, needs.State),
			[]agent.ToolResponse{okResponse(needs.Requests[0], items, nil)})
	}
	done, ok := outcome.(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 1, done.Output["reply_count"])
	assert.Equal(t, 1, done.Output["positive_count"])
}

func TestAnalyticsReport(t *testing.T) {
	logic := Analytics{}
	input := map[string]any{
		"artifacts": map[string]any{
			"sending": map[string]any{"campaign_id": "cmp-1", "sent_count": 100},
		},
	}
	state := logic.InitialState(input)

	needs, ok := logic.Step(context.Background(), state, nil).(agent.NeedsTools)
	require.True(t, ok)
	assert.Equal(t, "fetch_campaign_stats", needs.Requests[0].Op)

	stats := map[string]any{"delivered": 95, "opened": 38, "replied": 7, "bounced": 5}
	done, ok := logic.Step(context.Background(), roundTrip(t, needs.State),
		[]agent.ToolResponse{okResponse(needs.Requests[0], nil, stats)}).(agent.Done)
	require.True(t, ok)
	assert.Equal(t, 95, done.Output["delivered"])
	assert.InDelta(t, 0.4, floatFrom(done.Output, "open_rate"), 0.001)
}

// recordingRouter captures compensation tool calls.
type recordingRouter struct {
	calls []tools.InvokeRequest
}

func (r *recordingRouter) Execute(ctx context.Context, req tools.InvokeRequest) (*tools.RouteResult, error) {
	r.calls = append(r.calls, req)
	return &tools.RouteResult{}, nil
}
