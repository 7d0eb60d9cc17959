package models

// BudgetSnapshot is a point-in-time spend rollup for one run, derived
// from the budget ledger.
type BudgetSnapshot struct {
	RunID       string             `json:"run_id"`
	CapUSD      float64            `json:"cap_usd"`
	SpendUSD    float64            `json:"spend_usd"`
	ByPhase     map[string]float64 `json:"by_phase"` // keyed by phase ordinal "1".."5"
	ByTool      map[string]float64 `json:"by_tool"`
	EntryCount  int                `json:"entry_count"`
	WarnedAt80  bool               `json:"warned_at_80"`
	DeniedHard  bool               `json:"denied_hard"` // a hard-cap denial occurred
	DenialCount int                `json:"denial_count"`
}
