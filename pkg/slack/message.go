package slack

import (
	"fmt"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/outreachkit/prospector/ent"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Run Complete",
	"failed":    "Run Failed",
	"cancelled": "Run Cancelled",
}

var gateStatusEmoji = map[string]string{
	"approved":           ":white_check_mark:",
	"rejected":           ":x:",
	"revision_requested": ":pencil:",
	"expired":            ":hourglass:",
}

// runFingerprint is embedded in the run-started message so later
// notifications for the same run can thread onto it.
func runFingerprint(runID string) string {
	return "run:" + runID
}

func runURL(runID, dashboardURL string) string {
	return fmt.Sprintf("%s/runs/%s", dashboardURL, runID)
}

func gateURL(gate *ent.HumanGate, dashboardURL string) string {
	return fmt.Sprintf("%s/runs/%s/gates/%s", dashboardURL, gate.RunID, gate.ID)
}

func sectionBlock(text string) goslack.Block {
	return goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
		nil, nil,
	)
}

func linkButton(label, url string) goslack.Block {
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, label, false, false))
	btn.URL = url
	return goslack.NewActionBlock("", btn)
}

// BuildRunStartedMessage creates Block Kit blocks for a run start
// notification. The fingerprint line anchors the run's thread.
func BuildRunStartedMessage(run *ent.WorkflowRun, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":rocket: *Outreach run started* — campaign *%s* (budget $%.2f)\n`%s`\n<%s|View in Dashboard>",
		run.Campaign, run.BudgetCapUsd, runFingerprint(run.ID), runURL(run.ID, dashboardURL))
	return []goslack.Block{sectionBlock(text)}
}

// BuildRunTerminalMessage creates Block Kit blocks for a terminal run
// notification.
func BuildRunTerminalMessage(run *ent.WorkflowRun, dashboardURL string) []goslack.Block {
	status := string(run.Status)
	emoji := statusEmoji[status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[status]
	if label == "" {
		label = "Run " + status
	}

	headerText := fmt.Sprintf("%s *%s* — campaign *%s*, spent $%.2f of $%.2f",
		emoji, label, run.Campaign, run.SpendUsd, run.BudgetCapUsd)
	if run.ErrorMessage != nil && *run.ErrorMessage != "" {
		headerText += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(*run.ErrorMessage))
	}

	buttonText := "View Results"
	if status != "completed" {
		buttonText = "View Details"
	}

	return []goslack.Block{
		sectionBlock(headerText),
		linkButton(buttonText, runURL(run.ID, dashboardURL)),
	}
}

// BuildGateOpenedMessage creates Block Kit blocks asking a reviewer to
// decide a phase gate before its deadline.
func BuildGateOpenedMessage(gate *ent.HumanGate, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":raised_hand: *Approval needed* — phase %d output is ready for review.\nArtifact `%s`, deadline %s.",
		gate.Phase, gate.ArtifactRef, gate.Deadline.Format(time.RFC1123))
	return []goslack.Block{
		sectionBlock(text),
		linkButton("Review in Dashboard", gateURL(gate, dashboardURL)),
	}
}

// BuildGateDecidedMessage creates Block Kit blocks recording a gate
// verdict.
func BuildGateDecidedMessage(gate *ent.HumanGate) []goslack.Block {
	status := string(gate.Status)
	emoji := gateStatusEmoji[status]
	if emoji == "" {
		emoji = ":question:"
	}

	approver := "unknown"
	if gate.ApproverID != nil && *gate.ApproverID != "" {
		approver = *gate.ApproverID
	}

	text := fmt.Sprintf("%s Phase %d gate *%s* by `%s`", emoji, gate.Phase, status, approver)
	if gate.Notes != nil && *gate.Notes != "" {
		text += fmt.Sprintf("\n*Notes:* %s", truncateForSlack(*gate.Notes))
	}
	return []goslack.Block{sectionBlock(text)}
}

// BuildBudgetWarningMessage creates Block Kit blocks for an 80% spend
// warning on one of the run's caps.
func BuildBudgetWarningMessage(runID, capLabel string, spentUSD, capUSD float64, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":moneybag: *Budget warning* — `%s` at $%.2f of its $%.2f cap.",
		capLabel, spentUSD, capUSD)
	return []goslack.Block{
		sectionBlock(text),
		linkButton("View Spend", runURL(runID, dashboardURL)),
	}
}

// BuildCriticalAlertMessage creates Block Kit blocks for failures that
// need a human, such as an exhausted compensation hook.
func BuildCriticalAlertMessage(runID, message, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":rotating_light: *Manual intervention required*\n%s", truncateForSlack(message))
	return []goslack.Block{
		sectionBlock(text),
		linkButton("View Run", runURL(runID, dashboardURL)),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — full detail in dashboard)_"
}
