package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/events"
	"github.com/outreachkit/prospector/pkg/models"
)

// createRunHandler handles POST /api/v1/runs.
// Creates a run in "pending" status and returns immediately with run_id;
// a worker pool claims and executes it.
func (s *Server) createRunHandler(c *echo.Context) error {
	var req models.CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.applyBudgetDefaults(&req)
	if req.Author == "" {
		req.Author = callerIdentity(c)
	}
	if err := s.resolveBrief(c.Request().Context(), &req.Config); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "brief fetch failed: "+err.Error())
	}

	run, err := s.runService.CreateRun(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &RunSubmitResponse{
		RunID:   run.ID,
		Status:  string(run.Status),
		Message: "Run submitted for processing",
	})
}

// applyBudgetDefaults fills deployment-level caps into a run request
// that does not set its own. The run row snapshots the result, so later
// config changes never affect runs already submitted.
func (s *Server) applyBudgetDefaults(req *models.CreateRunRequest) {
	b := s.cfg.Budget
	if b == nil {
		return
	}
	if req.BudgetCapUSD <= 0 && b.DefaultRunCapUSD > 0 {
		req.BudgetCapUSD = b.DefaultRunCapUSD
	}
	if len(b.PhaseCapsUSD) > 0 && req.Config.PhaseCapsUSD == nil {
		req.Config.PhaseCapsUSD = make(map[string]float64, len(b.PhaseCapsUSD))
		for phase, cap := range b.PhaseCapsUSD {
			req.Config.PhaseCapsUSD[strconv.Itoa(phase)] = cap
		}
	}
	if len(b.ToolCapsUSD) > 0 && req.Config.ToolCapsUSD == nil {
		req.Config.ToolCapsUSD = make(map[string]float64, len(b.ToolCapsUSD))
		for toolID, cap := range b.ToolCapsUSD {
			req.Config.ToolCapsUSD[toolID] = cap
		}
	}
}

// briefSnapshotLimit caps how much brief text is snapshotted onto the
// run row. The config column holds the whole run configuration; an
// unbounded document does not belong there.
const briefSnapshotLimit = 16 * 1024

// resolveBrief fetches config.brief_url and snapshots its content into
// config.brief. An unreachable or disallowed document rejects the
// submission rather than starting a run with half its inputs.
func (s *Server) resolveBrief(ctx context.Context, cfg *models.RunConfig) error {
	if cfg.BriefURL == "" || cfg.Brief != "" {
		return nil
	}
	res, err := s.briefFetcher.Invoke(ctx, "fetch_url", map[string]any{"url": cfg.BriefURL})
	if err != nil {
		return err
	}
	content, _ := res.Data["content"].(string)
	if len(content) > briefSnapshotLimit {
		content = content[:briefSnapshotLimit]
	}
	cfg.Brief = content
	return nil
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	filters := models.RunFilters{}

	if v := c.QueryParam("status"); v != "" {
		if err := workflowrun.StatusValidator(workflowrun.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	filters.Campaign = c.QueryParam("campaign")
	filters.Author = c.QueryParam("author")

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	result, err := s.runService.ListRuns(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// getRunHandler handles GET /api/v1/runs/:id.
// Returns the run with its tasks, gates, and spend rollup.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}
	ctx := c.Request().Context()

	run, err := s.runService.GetRunByID(ctx, runID)
	if err != nil {
		return mapServiceError(err)
	}
	tasks, err := s.taskService.GetTasksByRun(ctx, runID)
	if err != nil {
		return mapServiceError(err)
	}
	gateRows, err := s.gateService.GetGatesByRun(ctx, runID)
	if err != nil {
		return mapServiceError(err)
	}
	budget, err := s.budgetSvc.GetSnapshot(ctx, runID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.RunDetailResponse{
		Run:    run,
		Tasks:  tasks,
		Gates:  gateRows,
		Budget: budget,
	})
}

// listRunEventsHandler handles GET /api/v1/runs/:id/events.
// Supports catch-up reads: ?since_id=N returns only events after the
// given audit row id, so a client rejoining after a disconnect fills
// its gap without replaying the full trail.
func (s *Server) listRunEventsHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}
	ctx := c.Request().Context()

	if _, err := s.runService.GetRunByID(ctx, runID); err != nil {
		return mapServiceError(err)
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	sinceID := 0
	if v := c.QueryParam("since_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since_id")
		}
		sinceID = n
	}

	var (
		entRows []*ent.RunEvent
		err     error
	)
	if sinceID > 0 {
		entRows, err = s.eventService.GetEventsSince(ctx, events.RunChannel(runID), sinceID, limit)
	} else {
		entRows, err = s.eventService.GetEventsByRun(ctx, runID, limit)
	}
	if err != nil {
		return mapServiceError(err)
	}

	resp := &RunEventsResponse{
		RunID:  runID,
		Events: make([]EventRecord, 0, len(entRows)),
	}
	for _, row := range entRows {
		resp.Events = append(resp.Events, EventRecord{
			ID:        row.ID,
			Payload:   []byte(row.Payload),
			CreatedAt: row.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// CancelRunRequest is the optional body for POST /api/v1/runs/:id/cancel.
type CancelRunRequest struct {
	Reason string `json:"reason,omitempty"`
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel.
// Pending runs flip straight to cancelled. Claimed runs get a local
// engine stop plus a persisted cancel-request event; the owning pod
// finishes with run_cancelled.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	var req CancelRunRequest
	_ = c.Bind(&req) // body is optional
	reason := req.Reason
	if reason == "" {
		reason = "cancelled by " + callerIdentity(c)
	}

	run, applied, err := s.runService.RequestCancel(c.Request().Context(), runID, reason)
	if err != nil {
		return mapServiceError(err)
	}

	if applied {
		return c.JSON(http.StatusOK, &CancelResponse{
			RunID:   runID,
			Status:  string(run.Status),
			Message: "Run cancelled",
		})
	}

	// Claimed by a worker: cancel locally if this pod owns it, and leave
	// a durable request for the owning pod either way.
	if s.workerPool != nil {
		s.workerPool.CancelRun(runID)
	}
	if s.publisher != nil {
		s.publisher.EmitRunEvent(c.Request().Context(), runID, events.EventRunCancelRequested, map[string]any{
			"reason":       reason,
			"requested_by": callerIdentity(c),
		})
	}

	return c.JSON(http.StatusAccepted, &CancelResponse{
		RunID:   runID,
		Status:  string(run.Status),
		Message: "Run cancellation requested",
	})
}
