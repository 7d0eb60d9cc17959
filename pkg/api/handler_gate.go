package api

import (
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/outreachkit/prospector/pkg/events"
	"github.com/outreachkit/prospector/pkg/models"
)

// pendingGatesHandler handles GET /api/v1/gates/pending.
func (s *Server) pendingGatesHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	gateRows, err := s.gateService.ListPendingGates(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.GateListResponse{
		Gates:      gateRows,
		TotalCount: len(gateRows),
	})
}

// getGateHandler handles GET /api/v1/gates/:id.
// Polls effective state, so an overdue pending gate reads as expired.
func (s *Server) getGateHandler(c *echo.Context) error {
	gateID := c.Param("id")
	if gateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "gate id is required")
	}

	gate, err := s.gateService.PollGate(c.Request().Context(), gateID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.GateResponse{HumanGate: gate})
}

// gateDecisionHandler handles POST /api/v1/gates/:id/decision.
// Records the verdict, wakes waiters on this pod, and broadcasts the
// decision so engines suspended on other pods resume too.
func (s *Server) gateDecisionHandler(c *echo.Context) error {
	gateID := c.Param("id")
	if gateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "gate id is required")
	}

	var req models.GateDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ApproverID == "" {
		req.ApproverID = callerIdentity(c)
	}

	gate, err := s.gateFlow.Decide(c.Request().Context(), gateID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if s.publisher != nil {
		notice := events.GateDecisionNotice{
			GateID:   gate.ID,
			RunID:    gate.RunID,
			Decision: string(gate.Status),
		}
		if err := s.publisher.PublishGateDecision(c.Request().Context(), notice); err != nil {
			// Waiters on other pods still recover via their poll interval.
			slog.Warn("Failed to broadcast gate decision", "gate_id", gate.ID, "error", err)
		}
	}

	return c.JSON(http.StatusOK, &models.GateResponse{HumanGate: gate})
}
