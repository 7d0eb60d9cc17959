package slack

import (
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// blockText flattens all section text in a block list for assertions.
func blockText(t *testing.T, blocks []goslack.Block) string {
	t.Helper()
	var parts []string
	for _, b := range blocks {
		if sec, ok := b.(*goslack.SectionBlock); ok && sec.Text != nil {
			parts = append(parts, sec.Text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func strPtr(s string) *string { return &s }

func TestBuildRunStartedMessage(t *testing.T) {
	run := &ent.WorkflowRun{
		ID:           "run-1",
		Campaign:     "q3-fintech",
		BudgetCapUsd: 150,
	}

	text := blockText(t, BuildRunStartedMessage(run, "https://dash.example.com"))
	assert.Contains(t, text, "q3-fintech")
	assert.Contains(t, text, "run:run-1", "fingerprint anchors the thread")
	assert.Contains(t, text, "$150.00")
	assert.Contains(t, text, "https://dash.example.com/runs/run-1")
}

func TestBuildRunTerminalMessage(t *testing.T) {
	t.Run("completed shows spend", func(t *testing.T) {
		run := &ent.WorkflowRun{
			ID:           "run-1",
			Campaign:     "q3-fintech",
			Status:       workflowrun.StatusCompleted,
			BudgetCapUsd: 150,
			SpendUsd:     42.5,
		}
		text := blockText(t, BuildRunTerminalMessage(run, "https://dash.example.com"))
		assert.Contains(t, text, "Run Complete")
		assert.Contains(t, text, "$42.50 of $150.00")
		assert.NotContains(t, text, "Error")
	})

	t.Run("failed carries error message", func(t *testing.T) {
		run := &ent.WorkflowRun{
			ID:           "run-2",
			Campaign:     "q3-fintech",
			Status:       workflowrun.StatusFailed,
			ErrorMessage: strPtr("phase 2 agent scoring failed"),
		}
		text := blockText(t, BuildRunTerminalMessage(run, "https://dash.example.com"))
		assert.Contains(t, text, "Run Failed")
		assert.Contains(t, text, "phase 2 agent scoring failed")
	})
}

func TestBuildGateOpenedMessage(t *testing.T) {
	gate := &ent.HumanGate{
		ID:          "gate-1",
		RunID:       "run-1",
		Phase:       2,
		ArtifactRef: "art-9",
		Deadline:    time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}

	blocks := BuildGateOpenedMessage(gate, "https://dash.example.com")
	text := blockText(t, blocks)
	assert.Contains(t, text, "phase 2")
	assert.Contains(t, text, "art-9")
	assert.Contains(t, text, "28 Aug 2026")

	require.Len(t, blocks, 2, "section plus review button")
}

func TestBuildGateDecidedMessage(t *testing.T) {
	gate := &ent.HumanGate{
		ID:         "gate-1",
		RunID:      "run-1",
		Phase:      2,
		Status:     humangate.StatusRevisionRequested,
		ApproverID: strPtr("alex"),
		Notes:      strPtr("tighten the ICP filter"),
	}

	text := blockText(t, BuildGateDecidedMessage(gate))
	assert.Contains(t, text, "revision_requested")
	assert.Contains(t, text, "alex")
	assert.Contains(t, text, "tighten the ICP filter")
}

func TestBuildBudgetWarningMessage(t *testing.T) {
	text := blockText(t, BuildBudgetWarningMessage("run-1", "tool:web_search", 8.2, 10, "https://dash.example.com"))
	assert.Contains(t, text, "tool:web_search")
	assert.Contains(t, text, "$8.20")
	assert.Contains(t, text, "$10.00")
}

func TestBuildCriticalAlertMessage(t *testing.T) {
	text := blockText(t, BuildCriticalAlertMessage("run-1", "compensation hook campaign_setup failed after 3 attempts", "https://dash.example.com"))
	assert.Contains(t, text, "Manual intervention required")
	assert.Contains(t, text, "campaign_setup")
}

func TestTruncateForSlack(t *testing.T) {
	short := "short message"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.Contains(t, out, "truncated")
	assert.Less(t, len(out), len(long))
}
