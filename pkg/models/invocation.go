package models

// RecordInvocationRequest contains fields for persisting a completed tool call
type RecordInvocationRequest struct {
	InvocationID string         `json:"invocation_id"`
	RunID        string         `json:"run_id"`
	TaskID       string         `json:"task_id"`
	ToolID       string         `json:"tool_id"`
	Op           string         `json:"op"`
	ParamsHash   string         `json:"params_hash"`
	Tier         string         `json:"tier"`
	Outcome      string         `json:"outcome"` // success, retryable_failure, permanent_failure, rate_limited, circuit_open, budget_denied
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	CostUSD      float64        `json:"cost_usd"`
	LatencyMs    *int           `json:"latency_ms,omitempty"`
}
