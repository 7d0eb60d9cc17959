package logics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/outreachkit/prospector/pkg/agent"
)

// listBuilderPageSize is the company batch requested per search round.
const listBuilderPageSize = 50

// ListBuilder collects candidate companies matching the ICP until the
// lead target is reached or providers run dry.
type ListBuilder struct{}

func (ListBuilder) Name() string { return "list_builder" }

func (ListBuilder) InitialState(input map[string]any) map[string]any {
	cfg := mapFrom(input, "config")
	target := intFrom(cfg, "lead_target")
	if target <= 0 {
		target = 100
	}
	return map[string]any{
		"icp":       mapFrom(cfg, "icp"),
		"target":    target,
		"page":      0,
		"companies": []map[string]any{},
	}
}

func (ListBuilder) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	companies := itemsFrom(state, "companies")
	target := intFrom(state, "target")
	page := intFrom(state, "page")

	if results != nil {
		fresh := successItems(results)
		if len(fresh) == 0 {
			// Providers dry; ship what we have.
			if len(companies) == 0 {
				return agent.Abort{Reason: "no companies matched the ICP"}
			}
			return agent.Done{Output: map[string]any{"leads": companies, "count": len(companies)}}
		}
		companies = append(companies, fresh...)
		state["companies"] = companies
	}

	if len(companies) >= target {
		return agent.Done{Output: map[string]any{"leads": companies, "count": len(companies)}}
	}

	state["page"] = page + 1
	return agent.NeedsTools{
		State: state,
		Requests: []agent.ToolRequest{
			{Op: "company_search", Params: map[string]any{
				"icp":   mapFrom(state, "icp"),
				"page":  page,
				"limit": listBuilderPageSize,
			}},
		},
	}
}

// Validation drops leads with missing or malformed identity fields.
type Validation struct{}

func (Validation) Name() string { return "validation" }

func (Validation) ValidateInput(input map[string]any) error {
	if artifactFor(input, "list_builder") == nil {
		return fmt.Errorf("missing list_builder output")
	}
	return nil
}

func (Validation) InitialState(input map[string]any) map[string]any {
	return map[string]any{"leads": itemsFrom(artifactFor(input, "list_builder"), "leads")}
}

func (Validation) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")

	var valid []map[string]any
	rejected := 0
	for _, lead := range leads {
		name := stringFrom(lead, "company_name")
		domain := strings.ToLower(strings.TrimSpace(stringFrom(lead, "domain")))
		if name == "" || domain == "" || !strings.Contains(domain, ".") {
			rejected++
			continue
		}
		lead["domain"] = domain
		valid = append(valid, lead)
	}

	if len(valid) == 0 {
		return agent.Abort{Reason: "lead list empty after validation"}
	}
	return agent.Done{Output: map[string]any{
		"leads":          valid,
		"rejected_count": rejected,
	}}
}

// WithinDedup removes duplicate companies inside the run, keyed by domain.
type WithinDedup struct{}

func (WithinDedup) Name() string { return "within_dedup" }

func (WithinDedup) InitialState(input map[string]any) map[string]any {
	return map[string]any{"leads": itemsFrom(artifactFor(input, "validation"), "leads")}
}

func (WithinDedup) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")

	seen := make(map[string]bool, len(leads))
	var unique []map[string]any
	for _, lead := range leads {
		domain := stringFrom(lead, "domain")
		if seen[domain] {
			continue
		}
		seen[domain] = true
		unique = append(unique, lead)
	}
	return agent.Done{Output: map[string]any{
		"leads":         unique,
		"removed_count": len(leads) - len(unique),
	}}
}

// CrossCampaignDedup removes companies already contacted by earlier
// campaigns via the suppression service.
type CrossCampaignDedup struct{}

func (CrossCampaignDedup) Name() string { return "cross_campaign_dedup" }

func (CrossCampaignDedup) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"stage": "lookup",
		"leads": itemsFrom(artifactFor(input, "within_dedup"), "leads"),
	}
}

func (CrossCampaignDedup) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")

	switch stringFrom(state, "stage") {
	case "lookup":
		domains := make([]string, 0, len(leads))
		for _, lead := range leads {
			domains = append(domains, stringFrom(lead, "domain"))
		}
		state["stage"] = "filter"
		return agent.NeedsTools{
			State: state,
			Requests: []agent.ToolRequest{
				{Op: "suppression_lookup", Params: map[string]any{"domains": domains}},
			},
		}

	default:
		suppressed := make(map[string]bool)
		for _, item := range successItems(results) {
			if domain := stringFrom(item, "domain"); domain != "" {
				suppressed[domain] = true
			}
		}

		var fresh []map[string]any
		for _, lead := range leads {
			if suppressed[stringFrom(lead, "domain")] {
				continue
			}
			fresh = append(fresh, lead)
		}
		if len(fresh) == 0 {
			return agent.Abort{Reason: "every lead suppressed by earlier campaigns"}
		}
		return agent.Done{Output: map[string]any{
			"leads":            fresh,
			"suppressed_count": len(leads) - len(fresh),
		}}
	}
}

// Scoring ranks leads by ICP fit.
type Scoring struct{}

func (Scoring) Name() string { return "scoring" }

func (Scoring) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads": itemsFrom(artifactFor(input, "cross_campaign_dedup"), "leads"),
		"icp":   mapFrom(mapFrom(input, "config"), "icp"),
	}
}

func (Scoring) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	icp := mapFrom(state, "icp")

	targetIndustry := strings.ToLower(stringFrom(icp, "industry"))
	minEmployees := intFrom(icp, "min_employees")
	maxEmployees := intFrom(icp, "max_employees")

	for _, lead := range leads {
		score := 0.5
		if targetIndustry != "" && strings.ToLower(stringFrom(lead, "industry")) == targetIndustry {
			score += 0.3
		}
		employees := intFrom(lead, "employees")
		if employees > 0 && employees >= minEmployees && (maxEmployees == 0 || employees <= maxEmployees) {
			score += 0.2
		}
		lead["score"] = score
	}
	return agent.Done{Output: map[string]any{"leads": leads}}
}

// ImportFinalizer trims the scored list to the lead target and freezes
// the phase-2 lead list the human gate reviews.
type ImportFinalizer struct{}

func (ImportFinalizer) Name() string { return "import_finalizer" }

func (ImportFinalizer) ValidateInput(input map[string]any) error {
	if artifactFor(input, "scoring") == nil {
		return fmt.Errorf("missing scoring output")
	}
	return nil
}

func (ImportFinalizer) InitialState(input map[string]any) map[string]any {
	cfg := mapFrom(input, "config")
	target := intFrom(cfg, "lead_target")
	if target <= 0 {
		target = 100
	}
	return map[string]any{
		"leads":      itemsFrom(artifactFor(input, "scoring"), "leads"),
		"target":     target,
		"gate_notes": stringFrom(input, "gate_notes"),
	}
}

func (ImportFinalizer) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	target := intFrom(state, "target")

	sort.SliceStable(leads, func(i, j int) bool {
		return floatFrom(leads[i], "score") > floatFrom(leads[j], "score")
	})
	if len(leads) > target {
		leads = leads[:target]
	}

	output := map[string]any{"leads": leads, "count": len(leads)}
	if notes := stringFrom(state, "gate_notes"); notes != "" {
		output["revision_notes"] = notes
		output["revised"] = true
	}
	return agent.Done{Output: output}
}
