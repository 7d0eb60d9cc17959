package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

var (
	runsDesc = prometheus.NewDesc(
		"prospector_runs",
		"Workflow runs by status, cluster-wide.",
		[]string{"status"}, nil)
	gatesPendingDesc = prometheus.NewDesc(
		"prospector_gates_pending",
		"Human gates awaiting a decision, cluster-wide.",
		nil, nil)
)

// StateCollector reports cluster-wide state gauges straight from the
// database on each scrape. Unlike the per-pod counters, these are the
// same from every pod, so dashboards can scrape any replica.
type StateCollector struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStateCollector creates a collector reading from the given client.
func NewStateCollector(client *ent.Client) *StateCollector {
	return &StateCollector{
		client: client,
		logger: slog.Default().With("component", "metrics"),
	}
}

// Describe implements prometheus.Collector.
func (c *StateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- runsDesc
	ch <- gatesPendingDesc
}

// Collect implements prometheus.Collector. A failed query drops the
// gauge from this scrape rather than failing the whole /metrics page.
func (c *StateCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := c.client.WorkflowRun.Query().
		Where(workflowrun.DeletedAtIsNil()).
		GroupBy(workflowrun.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		c.logger.Error("Failed to collect run counts", "error", err)
	} else {
		for _, row := range rows {
			ch <- prometheus.MustNewConstMetric(runsDesc, prometheus.GaugeValue,
				float64(row.Count), row.Status)
		}
	}

	pending, err := c.client.HumanGate.Query().
		Where(humangate.StatusEQ(humangate.StatusPending)).
		Count(ctx)
	if err != nil {
		c.logger.Error("Failed to collect pending gate count", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(gatesPendingDesc, prometheus.GaugeValue,
		float64(pending))
}
