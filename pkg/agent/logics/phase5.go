package logics

import (
	"context"
	"fmt"

	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/tools"
)

// sendBatchSize bounds how many emails one sending round dispatches.
const sendBatchSize = 20

// maxReplyPolls bounds the reply monitoring loop.
const maxReplyPolls = 5

// CampaignSetup creates the campaign in the sending provider. The
// provider call is non-idempotent, so failure after commit is unwound by
// Compensate.
type CampaignSetup struct{}

func (CampaignSetup) Name() string { return "campaign_setup" }

func (CampaignSetup) ValidateInput(input map[string]any) error {
	if artifactFor(input, "personalization_finalizer") == nil {
		return fmt.Errorf("missing personalization_finalizer output")
	}
	return nil
}

func (CampaignSetup) InitialState(input map[string]any) map[string]any {
	cfg := mapFrom(input, "config")
	return map[string]any{
		"stage":   "create",
		"niche":   stringFrom(cfg, "niche"),
		"sending": mapFrom(cfg, "sending"),
		"drafts":  itemsFrom(artifactFor(input, "personalization_finalizer"), "drafts"),
	}
}

func (CampaignSetup) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	drafts := itemsFrom(state, "drafts")

	switch stringFrom(state, "stage") {
	case "create":
		if len(drafts) == 0 {
			return agent.Abort{Reason: "no drafts to set up a campaign for"}
		}
		state["stage"] = "confirm"
		return agent.NeedsTools{
			State: state,
			Requests: []agent.ToolRequest{
				{Op: "create_campaign", Params: map[string]any{
					"name":       stringFrom(state, "niche") + " outreach",
					"lead_count": len(drafts),
					"sending":    mapFrom(state, "sending"),
				}},
			},
		}

	default:
		if len(results) == 0 || results[0].Err != nil || results[0].Result == nil {
			return agent.Abort{Reason: "campaign creation failed"}
		}
		campaignID := stringFrom(results[0].Result.Data, "campaign_id")
		if campaignID == "" {
			return agent.Abort{Reason: "provider returned no campaign id"}
		}
		return agent.Done{Output: map[string]any{
			"campaign_id": campaignID,
			"lead_count":  len(drafts),
		}}
	}
}

// Compensate archives the campaign created by a completed setup.
func (CampaignSetup) Compensate(ctx context.Context, comp agent.CompensationContext, output map[string]any) error {
	campaignID := stringFrom(output, "campaign_id")
	if campaignID == "" {
		return nil
	}
	_, err := comp.Router.Execute(ctx, tools.InvokeRequest{
		RunID:  comp.RunID,
		TaskID: comp.TaskID,
		Phase:  comp.Phase,
		Op:     "archive_campaign",
		Params: map[string]any{"campaign_id": campaignID},
	})
	return err
}

// Sending pushes drafted emails to the campaign in daily-limit batches,
// checkpointing between batches so a resume never re-sends.
type Sending struct{}

func (Sending) Name() string { return "sending" }

func (Sending) ValidateInput(input map[string]any) error {
	if artifactFor(input, "campaign_setup") == nil {
		return fmt.Errorf("missing campaign_setup output")
	}
	return nil
}

func (Sending) InitialState(input map[string]any) map[string]any {
	sending := mapFrom(mapFrom(input, "config"), "sending")
	batch := intFrom(sending, "daily_limit")
	if batch <= 0 || batch > sendBatchSize {
		batch = sendBatchSize
	}
	return map[string]any{
		"campaign_id": stringFrom(artifactFor(input, "campaign_setup"), "campaign_id"),
		"drafts":      itemsFrom(artifactFor(input, "personalization_finalizer"), "drafts"),
		"batch":       batch,
		"cursor":      0,
		"sent":        []string{},
	}
}

func (Sending) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	drafts := itemsFrom(state, "drafts")
	cursor := intFrom(state, "cursor")
	sent := stringsFrom(state, "sent")

	if results != nil {
		for _, res := range results {
			if !res.Resolved || res.Err != nil || res.Result == nil {
				continue
			}
			sent = append(sent, stringFrom(res.Request.Params, "email"))
		}
		state["sent"] = sent
	}

	if cursor >= len(drafts) {
		if len(sent) == 0 {
			return agent.Abort{Reason: "no emails were accepted for sending"}
		}
		return agent.Done{Output: map[string]any{
			"campaign_id": stringFrom(state, "campaign_id"),
			"sent":        sent,
			"sent_count":  len(sent),
		}}
	}

	batch := intFrom(state, "batch")
	end := cursor + batch
	if end > len(drafts) {
		end = len(drafts)
	}
	campaignID := stringFrom(state, "campaign_id")
	requests := make([]agent.ToolRequest, 0, end-cursor)
	for _, draft := range drafts[cursor:end] {
		requests = append(requests, agent.ToolRequest{
			Op: "send_email",
			Params: map[string]any{
				"campaign_id": campaignID,
				"email":       stringFrom(draft, "email"),
				"subject":     stringFrom(draft, "subject"),
				"body":        stringFrom(draft, "body"),
			},
		})
	}
	state["cursor"] = end
	return agent.NeedsTools{State: state, Requests: requests}
}

// Compensate marks every sent email unsent in the provider so an unwound
// run leaves no half-delivered campaign behind.
func (Sending) Compensate(ctx context.Context, comp agent.CompensationContext, output map[string]any) error {
	sent := stringsFrom(output, "sent")
	if len(sent) == 0 {
		return nil
	}
	_, err := comp.Router.Execute(ctx, tools.InvokeRequest{
		RunID:  comp.RunID,
		TaskID: comp.TaskID,
		Phase:  comp.Phase,
		Op:     "mark_unsent",
		Params: map[string]any{
			"campaign_id": stringFrom(output, "campaign_id"),
			"emails":      sent,
		},
	})
	return err
}

// ReplyMonitoring polls the campaign for replies a bounded number of
// times and classifies them.
type ReplyMonitoring struct{}

func (ReplyMonitoring) Name() string { return "reply_monitoring" }

func (ReplyMonitoring) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"campaign_id": stringFrom(artifactFor(input, "sending"), "campaign_id"),
		"polls":       0,
		"replies":     []map[string]any{},
	}
}

func (ReplyMonitoring) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	campaignID := stringFrom(state, "campaign_id")
	if campaignID == "" {
		return agent.Abort{Reason: "no campaign to monitor"}
	}
	polls := intFrom(state, "polls")
	replies := itemsFrom(state, "replies")

	if results != nil {
		for _, item := range successItems(results) {
			replies = append(replies, item)
		}
		state["replies"] = replies
	}

	if polls >= maxReplyPolls {
		positive := 0
		for _, reply := range replies {
			if stringFrom(reply, "sentiment") == "positive" {
				positive++
			}
		}
		return agent.Done{Output: map[string]any{
			"campaign_id":    campaignID,
			"reply_count":    len(replies),
			"positive_count": positive,
			"replies":        replies,
		}}
	}

	state["polls"] = polls + 1
	return agent.NeedsTools{
		State: state,
		Requests: []agent.ToolRequest{
			{Op: "fetch_replies", Params: map[string]any{
				"campaign_id": campaignID,
				"poll":        polls,
			}},
		},
	}
}

// Analytics collects the campaign's delivery and engagement metrics into
// the run's final report.
type Analytics struct{}

func (Analytics) Name() string { return "analytics" }

func (Analytics) InitialState(input map[string]any) map[string]any {
	return map[string]any{
		"campaign_id": stringFrom(artifactFor(input, "sending"), "campaign_id"),
		"sent_count":  intFrom(artifactFor(input, "sending"), "sent_count"),
		"stage":       "fetch",
	}
}

func (Analytics) Step(ctx context.Context, state map[string]any, results []agent.ToolResponse) agent.StepOutcome {
	campaignID := stringFrom(state, "campaign_id")
	if campaignID == "" {
		return agent.Abort{Reason: "no campaign to report on"}
	}

	switch stringFrom(state, "stage") {
	case "fetch":
		state["stage"] = "report"
		return agent.NeedsTools{
			State: state,
			Requests: []agent.ToolRequest{
				{Op: "fetch_campaign_stats", Params: map[string]any{"campaign_id": campaignID}},
			},
		}

	default:
		if len(results) == 0 || results[0].Err != nil || results[0].Result == nil {
			return agent.Abort{Reason: "campaign stats unavailable"}
		}
		stats := results[0].Result.Data
		sentCount := intFrom(state, "sent_count")
		delivered := intFrom(stats, "delivered")
		opened := intFrom(stats, "opened")
		report := map[string]any{
			"campaign_id": campaignID,
			"sent_count":  sentCount,
			"delivered":   delivered,
			"opened":      opened,
			"replied":     intFrom(stats, "replied"),
			"bounced":     intFrom(stats, "bounced"),
		}
		if delivered > 0 {
			report["open_rate"] = float64(opened) / float64(delivered)
		}
		return agent.Done{Output: report}
	}
}
