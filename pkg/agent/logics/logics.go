// Package logics implements the pipeline's agents as AgentLogics, one
// file per phase. Agents keep all working memory in their JSON state map,
// so every helper here tolerates the []any / float64 shapes JSON
// round-trips produce after a checkpoint resume.
package logics

import (
	"fmt"

	"github.com/outreachkit/prospector/pkg/agent"
)

// RegisterAll registers the full pipeline in an agent registry.
func RegisterAll(reg *agent.Registry) error {
	all := []agent.AgentLogic{
		&NicheResearch{},
		&PersonaResearch{},
		&ResearchExport{},
		&ListBuilder{},
		&Validation{},
		&WithinDedup{},
		&CrossCampaignDedup{},
		&Scoring{},
		&ImportFinalizer{},
		&EmailVerification{},
		&Enrichment{},
		&VerificationFinalizer{},
		&CompanyResearch{},
		&LeadResearch{},
		&EmailGeneration{},
		&PersonalizationFinalizer{},
		&CampaignSetup{},
		&Sending{},
		&ReplyMonitoring{},
		&Analytics{},
	}
	for _, logic := range all {
		if err := reg.Register(logic); err != nil {
			return fmt.Errorf("failed to register pipeline agents: %w", err)
		}
	}
	return nil
}

// verifyBatchSize bounds how many per-lead tool calls one round issues.
const verifyBatchSize = 25

func stringFrom(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func intFrom(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func floatFrom(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func mapFrom(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

// itemsFrom reads a list of objects, tolerating both the in-process
// []map[string]any shape and the []any shape a JSON round-trip produces.
func itemsFrom(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, raw := range v {
			if item, ok := raw.(map[string]any); ok {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

// stringsFrom reads a list of strings with the same tolerance.
func stringsFrom(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, raw := range v {
			if s, ok := raw.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// artifactFor returns a prior agent's output document from the phase
// input, keyed by agent name.
func artifactFor(input map[string]any, agentName string) map[string]any {
	return mapFrom(mapFrom(input, "artifacts"), agentName)
}

// successItems flattens the items of every resolved successful response.
func successItems(results []agent.ToolResponse) []map[string]any {
	var items []map[string]any
	for _, res := range results {
		if res.Resolved && res.Err == nil && res.Result != nil {
			items = append(items, res.Result.Items...)
		}
	}
	return items
}
