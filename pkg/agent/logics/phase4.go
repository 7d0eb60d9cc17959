package logics

import (
	"context"
	"fmt"

	"github.com/outreachkit/prospector/pkg/agent"
)

// CompanyResearch gathers recent context on each lead company for
// personalization.
type CompanyResearch struct{}

func (CompanyResearch) Name() string { return "company_research" }

func (CompanyResearch) ValidateInput(input map[string]any) error {
	if artifactFor(input, "verification_finalizer") == nil {
		return fmt.Errorf("missing verification_finalizer output")
	}
	return nil
}

func (CompanyResearch) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads":  itemsFrom(artifactFor(input, "verification_finalizer"), "leads"),
		"cursor": 0,
		"notes":  []map[string]any{},
	}
}

func (CompanyResearch) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	cursor := intFrom(state, "cursor")
	notes := itemsFrom(state, "notes")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Err != nil || res.Result == nil {
				continue
			}
			notes = append(notes, map[string]any{
				"domain":   stringFrom(res.Request.Params, "domain"),
				"findings": res.Result.Items,
			})
		}
		state["notes"] = notes
	}

	if cursor >= len(leads) {
		return agent.Done{Output: map[string]any{"company_notes": notes}}
	}

	end := cursor + verifyBatchSize
	if end > len(leads) {
		end = len(leads)
	}
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, lead := range leads[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op: "web_search",
			Params: map[string]any{
				"query":  stringFrom(lead, "company_name") + " news funding hiring",
				"domain": stringFrom(lead, "domain"),
			},
		})
	}
	state["cursor"] = end
	quorum := (end - cursor + 1) / 2
	return agent.NeedsTools{
		State:    state,
		Requests: requests,
		Policy:   agent.WaitPolicy{Mode: agent.WaitQuorum, Quorum: quorum},
	}
}

// LeadResearch gathers person-level context for each contact.
type LeadResearch struct{}

func (LeadResearch) Name() string { return "lead_research" }

func (LeadResearch) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads":    itemsFrom(artifactFor(input, "verification_finalizer"), "leads"),
		"cursor":   0,
		"profiles": []map[string]any{},
	}
}

func (LeadResearch) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	cursor := intFrom(state, "cursor")
	profiles := itemsFrom(state, "profiles")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Err != nil || res.Result == nil {
				continue
			}
			profile := map[string]any{"email": stringFrom(res.Request.Params, "email")}
			for k, v := range res.Result.Data {
				profile[k] = v
			}
			profiles = append(profiles, profile)
		}
		state["profiles"] = profiles
	}

	if cursor >= len(leads) {
		return agent.Done{Output: map[string]any{"profiles": profiles}}
	}

	end := cursor + verifyBatchSize
	if end > len(leads) {
		end = len(leads)
	}
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, lead := range leads[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op: "person_lookup",
			Params: map[string]any{
				"email":  stringFrom(lead, "email"),
				"domain": stringFrom(lead, "domain"),
			},
		})
	}
	state["cursor"] = end
	quorum := (end - cursor + 1) / 2
	return agent.NeedsTools{
		State:    state,
		Requests: requests,
		Policy:   agent.WaitPolicy{Mode: agent.WaitQuorum, Quorum: quorum},
	}
}

// EmailGeneration drafts a personalized email per lead from the research
// notes, via the generation provider.
type EmailGeneration struct{}

func (EmailGeneration) Name() string { return "email_generation" }

func (EmailGeneration) ValidateInput(input map[string]any) error {
	if artifactFor(input, "verification_finalizer") == nil {
		return fmt.Errorf("missing verification_finalizer output")
	}
	return nil
}

func (EmailGeneration) InitialState(input map[string]any) map[string]any {
	noteIndex := make(map[string]any)
	for _, note := range itemsFrom(artifactFor(input, "company_research"), "company_notes") {
		noteIndex[stringFrom(note, "domain")] = note
	}
	return map[string]any{
		"leads":  itemsFrom(artifactFor(input, "verification_finalizer"), "leads"),
		"notes":  noteIndex,
		"cursor": 0,
		"drafts": []map[string]any{},
	}
}

func (EmailGeneration) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	cursor := intFrom(state, "cursor")
	drafts := itemsFrom(state, "drafts")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Result == nil {
				continue
			}
			if res.Err != nil {
				// A failed draft drops the lead rather than the phase.
				continue
			}
			drafts = append(drafts, map[string]any{
				"email":   stringFrom(res.Request.Params, "email"),
				"subject": stringFrom(res.Result.Data, "subject"),
				"body":    stringFrom(res.Result.Data, "body"),
				"quality": floatFrom(res.Result.Data, "quality"),
			})
		}
		state["drafts"] = drafts
	}

	if cursor >= len(leads) {
		if len(drafts) == 0 {
			return agent.Abort{Reason: "no drafts generated"}
		}
		return agent.Done{Output: map[string]any{"drafts": drafts}}
	}

	notes := mapFrom(state, "notes")
	end := cursor + verifyBatchSize
	if end > len(leads) {
		end = len(leads)
	}
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, lead := range leads[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op: "generate_email",
			Params: map[string]any{
				"email":         stringFrom(lead, "email"),
				"company_name":  stringFrom(lead, "company_name"),
				"company_notes": mapFrom(notes, stringFrom(lead, "domain")),
			},
		})
	}
	state["cursor"] = end
	return agent.NeedsTools{State: state, Requests: requests}
}

// PersonalizationFinalizer assembles the campaign document and its
// aggregate quality score, the input to the phase-4 gate and its
// auto-approve predicate.
type PersonalizationFinalizer struct{}

func (PersonalizationFinalizer) Name() string { return "personalization_finalizer" }

func (PersonalizationFinalizer) ValidateInput(input map[string]any) error {
	if artifactFor(input, "email_generation") == nil {
		return fmt.Errorf("missing email_generation output")
	}
	return nil
}

func (PersonalizationFinalizer) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"drafts":     itemsFrom(artifactFor(input, "email_generation"), "drafts"),
		"gate_notes": stringFrom(input, "gate_notes"),
	}
}

func (PersonalizationFinalizer) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	drafts := itemsFrom(state, "drafts")
	if len(drafts) == 0 {
		return agent.Abort{Reason: "campaign has no drafts"}
	}

	total := 0.0
	for _, draft := range drafts {
		total += floatFrom(draft, "quality")
	}
	output := map[string]any{
		"drafts":        drafts,
		"count":         len(drafts),
		"quality_score": total / float64(len(drafts)),
	}
	if notes := stringFrom(state, "gate_notes"); notes != "" {
		output["revision_notes"] = notes
		output["revised"] = true
	}
	return agent.Done{Output: output}
}
