package logics

import (
	"context"
	"fmt"

	"github.com/outreachkit/prospector/pkg/agent"
)

// EmailVerification checks deliverability for every lead email in
// batches, checkpointing between batches via the round checkpoint.
type EmailVerification struct{}

func (EmailVerification) Name() string { return "email_verification" }

func (EmailVerification) ValidateInput(input map[string]any) error {
	if artifactFor(input, "import_finalizer") == nil {
		return fmt.Errorf("missing import_finalizer output")
	}
	return nil
}

func (EmailVerification) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads":    itemsFrom(artifactFor(input, "import_finalizer"), "leads"),
		"cursor":   0,
		"verified": []map[string]any{},
	}
}

func (EmailVerification) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	cursor := intFrom(state, "cursor")
	verified := itemsFrom(state, "verified")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Result == nil {
				continue
			}
			domain := stringFrom(res.Request.Params, "domain")
			status := "unknown"
			email := ""
			if res.Err == nil {
				status = stringFrom(res.Result.Data, "status")
				email = stringFrom(res.Result.Data, "email")
			}
			verified = append(verified, map[string]any{
				"domain": domain,
				"email":  email,
				"status": status,
			})
		}
		state["verified"] = verified
	}

	if cursor >= len(leads) {
		if len(verified) == 0 {
			return agent.Abort{Reason: "no leads reached verification"}
		}
		return agent.Done{Output: map[string]any{"verified": verified}}
	}

	end := cursor + verifyBatchSize
	if end > len(leads) {
		end = len(leads)
	}
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, lead := range leads[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op: "verify_email",
			Params: map[string]any{
				"domain":       stringFrom(lead, "domain"),
				"company_name": stringFrom(lead, "company_name"),
			},
		})
	}
	state["cursor"] = end
	return agent.NeedsTools{State: state, Requests: requests}
}

// Enrichment adds firmographic and contact detail to each lead company.
type Enrichment struct{}

func (Enrichment) Name() string { return "enrichment" }

func (Enrichment) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads":    itemsFrom(artifactFor(input, "import_finalizer"), "leads"),
		"cursor":   0,
		"enriched": []map[string]any{},
	}
}

func (Enrichment) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	leads := itemsFrom(state, "leads")
	cursor := intFrom(state, "cursor")
	enriched := itemsFrom(state, "enriched")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Err != nil || res.Result == nil {
				continue
			}
			record := map[string]any{"domain": stringFrom(res.Request.Params, "domain")}
			for k, v := range res.Result.Data {
				record[k] = v
			}
			enriched = append(enriched, record)
		}
		state["enriched"] = enriched
	}

	if cursor >= len(leads) {
		return agent.Done{Output: map[string]any{"enriched": enriched}}
	}

	end := cursor + verifyBatchSize
	if end > len(leads) {
		end = len(leads)
	}
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, lead := range leads[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op:     "enrich_company",
			Params: map[string]any{"domain": stringFrom(lead, "domain")},
		})
	}
	state["cursor"] = end
	// Enrichment is best-effort: a quorum of each batch suffices.
	quorum := (end - cursor + 1) / 2
	return agent.NeedsTools{
		State:    state,
		Requests: requests,
		Policy:   agent.WaitPolicy{Mode: agent.WaitQuorum, Quorum: quorum},
	}
}

// VerificationFinalizer joins verification and enrichment and drops
// undeliverable leads, producing the phase-3 list the gate reviews.
type VerificationFinalizer struct{}

func (VerificationFinalizer) Name() string { return "verification_finalizer" }

func (VerificationFinalizer) ValidateInput(input map[string]any) error {
	if artifactFor(input, "email_verification") == nil {
		return fmt.Errorf("missing email_verification output")
	}
	return nil
}

func (VerificationFinalizer) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"leads":      itemsFrom(artifactFor(input, "import_finalizer"), "leads"),
		"verified":   itemsFrom(artifactFor(input, "email_verification"), "verified"),
		"enriched":   itemsFrom(artifactFor(input, "enrichment"), "enriched"),
		"gate_notes": stringFrom(input, "gate_notes"),
	}
}

func (VerificationFinalizer) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	byDomainVerified := make(map[string]map[string]any)
	for _, v := range itemsFrom(state, "verified") {
		byDomainVerified[stringFrom(v, "domain")] = v
	}
	byDomainEnriched := make(map[string]map[string]any)
	for _, e := range itemsFrom(state, "enriched") {
		byDomainEnriched[stringFrom(e, "domain")] = e
	}

	var deliverable []map[string]any
	dropped := 0
	for _, lead := range itemsFrom(state, "leads") {
		domain := stringFrom(lead, "domain")
		verification := byDomainVerified[domain]
		if verification == nil || stringFrom(verification, "status") != "valid" {
			dropped++
			continue
		}
		lead["email"] = stringFrom(verification, "email")
		if enrichment := byDomainEnriched[domain]; enrichment != nil {
			lead["enrichment"] = enrichment
		}
		deliverable = append(deliverable, lead)
	}

	if len(deliverable) == 0 {
		return agent.Abort{Reason: "no deliverable leads after verification"}
	}
	output := map[string]any{
		"leads":         deliverable,
		"count":         len(deliverable),
		"dropped_count": dropped,
	}
	if notes := stringFrom(state, "gate_notes"); notes != "" {
		output["revision_notes"] = notes
		output["revised"] = true
	}
	return agent.Done{Output: output}
}
