// Package workflow drives a run through the fixed five-phase pipeline:
// waves of concurrent agents, human gates at phase boundaries, and saga
// compensation on unwind.
package workflow

// Wave is one concurrency group inside a phase. Agents in a wave run in
// parallel; waves run in order.
type Wave struct {
	Agents []string

	// BestEffort waves alert on agent failure instead of failing the
	// run. Used for the long-running phase-5 monitors.
	BestEffort bool
}

// Phase is one stage of the pipeline.
type Phase struct {
	Ordinal int
	Name    string
	Waves   []Wave

	// Gated phases open a human gate on their finalizer output before
	// the next phase may start.
	Gated     bool
	GateLabel string

	// Finalizer is the agent re-run with reviewer notes when the gate
	// decision is revision_requested.
	Finalizer string
}

// Pipeline returns the phase graph. Agent names inside a wave are kept
// lexicographic; the engine preserves this order for the runnable
// tie-break.
func Pipeline() []Phase {
	return []Phase{
		{
			Ordinal: 1,
			Name:    "market_intelligence",
			Waves: []Wave{
				{Agents: []string{"niche_research"}},
				{Agents: []string{"persona_research"}},
				{Agents: []string{"research_export"}},
			},
			Gated:     true,
			GateLabel: "approve niche & personas",
			Finalizer: "research_export",
		},
		{
			Ordinal: 2,
			Name:    "lead_acquisition",
			Waves: []Wave{
				{Agents: []string{"list_builder"}},
				{Agents: []string{"validation"}},
				{Agents: []string{"within_dedup"}},
				{Agents: []string{"cross_campaign_dedup"}},
				{Agents: []string{"scoring"}},
				{Agents: []string{"import_finalizer"}},
			},
			Gated:     true,
			GateLabel: "approve lead list",
			Finalizer: "import_finalizer",
		},
		{
			Ordinal: 3,
			Name:    "verification",
			Waves: []Wave{
				{Agents: []string{"email_verification", "enrichment"}},
				{Agents: []string{"verification_finalizer"}},
			},
			Gated:     true,
			GateLabel: "approve for personalization",
			Finalizer: "verification_finalizer",
		},
		{
			Ordinal: 4,
			Name:    "personalization",
			Waves: []Wave{
				{Agents: []string{"company_research", "lead_research"}},
				{Agents: []string{"email_generation"}},
				{Agents: []string{"personalization_finalizer"}},
			},
			Gated:     true,
			GateLabel: "approve campaign",
			Finalizer: "personalization_finalizer",
		},
		{
			Ordinal: 5,
			Name:    "execution",
			Waves: []Wave{
				{Agents: []string{"campaign_setup"}},
				{Agents: []string{"sending"}},
				{Agents: []string{"analytics", "reply_monitoring"}, BestEffort: true},
			},
		},
	}
}
