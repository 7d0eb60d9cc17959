package models

import (
	"time"

	"github.com/outreachkit/prospector/ent"
)

// CreateRunRequest contains fields for submitting a new workflow run
type CreateRunRequest struct {
	Campaign     string         `json:"campaign"`
	BudgetCapUSD float64        `json:"budget_cap_usd"`
	Config       RunConfig      `json:"config"`
	Author       string         `json:"author,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// RunConfig is the per-run configuration snapshot stored on the run row.
// Zero values fall back to the deployment defaults from budget.yaml and
// gates.yaml.
type RunConfig struct {
	Niche string `json:"niche"`

	// BriefURL optionally points at a campaign brief document. It is
	// fetched once at submission and its content snapshotted into Brief,
	// so the run never depends on the document staying reachable.
	BriefURL string `json:"brief_url,omitempty"`
	Brief    string `json:"brief,omitempty"`

	ICP          map[string]any     `json:"icp,omitempty"`
	LeadTarget   int                `json:"lead_target,omitempty"`
	PhaseCapsUSD map[string]float64 `json:"phase_caps_usd,omitempty"` // keyed by phase ordinal "1".."5"
	ToolCapsUSD  map[string]float64 `json:"tool_caps_usd,omitempty"`  // keyed by tool category
	AutoApprove  bool               `json:"auto_approve,omitempty"`   // skip human gates (staging)
	GateTTLSecs  int                `json:"gate_ttl_seconds,omitempty"`
	Sending      *SendingConfig     `json:"sending,omitempty"`
}

// SendingConfig holds phase-5 campaign setup parameters.
type SendingConfig struct {
	DailyLimit  int      `json:"daily_limit,omitempty"`
	Mailboxes   []string `json:"mailboxes,omitempty"`
	TrackOpens  bool     `json:"track_opens,omitempty"`
	TrackClicks bool     `json:"track_clicks,omitempty"`
}

// RunFilters contains filtering options for listing runs
type RunFilters struct {
	Status         string     `json:"status,omitempty"`
	Campaign       string     `json:"campaign,omitempty"`
	Author         string     `json:"author,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// RunResponse wraps a WorkflowRun with optional loaded edges
type RunResponse struct {
	*ent.WorkflowRun
}

// RunListResponse contains paginated run list
type RunListResponse struct {
	Runs       []*ent.WorkflowRun `json:"runs"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// RunDetailResponse bundles a run with its tasks, gates, and spend rollup
// for the detail endpoint.
type RunDetailResponse struct {
	Run    *ent.WorkflowRun `json:"run"`
	Tasks  []*ent.AgentTask `json:"tasks"`
	Gates  []*ent.HumanGate `json:"gates"`
	Budget *BudgetSnapshot  `json:"budget"`
}
