package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/events"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
	testdb "github.com/outreachkit/prospector/test/database"
)

// TestCrossReplicaGateWakeup runs the engine on one replica and decides
// its gates on another. The waiting replica's Await poll interval is far
// beyond the test timeout, so completion proves the NOTIFY wakeup path:
// decision on B, pg_notify, listener on A, hub, gate service wake.
func TestCrossReplicaGateWakeup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	shared := testdb.NewSharedTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Replica A executes the run. Its poll fallback is effectively off.
	appA := NewAppWithClient(t, shared.NewClient(t), Options{
		Gates: gates.Config{
			DefaultTTL:   time.Minute,
			PollInterval: 5 * time.Minute,
		},
	})

	hubA := events.NewHub()
	hubA.HandleGateDecisions(appA.Gates)
	listenerA := events.NewNotifyListener(shared.ConnStringWithSchema(), hubA)
	require.NoError(t, listenerA.Start(ctx))
	t.Cleanup(func() { listenerA.Stop(context.Background()) })
	require.NoError(t, listenerA.Subscribe(ctx, events.GateDecisionsChannel))

	// Replica B owns only the decision surface, on its own pool.
	clientB := shared.NewClient(t)
	gatesB := gates.NewService(services.NewGateService(clientB.Client), nil, gates.DefaultConfig())
	publisherB := events.NewPublisher(clientB.DB())

	run := appA.SubmitRun(t, defaultRunConfig(), 10.0)

	errCh := make(chan error, 1)
	go func() { errCh <- appA.Engine.ExecuteRun(ctx, run) }()

	// Decide all four gates from replica B as they open, publishing the
	// wakeup notice the same way the decision endpoint does.
	decided := make(map[string]bool)
	deadline := time.Now().Add(60 * time.Second)
	for len(decided) < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d of 4 gates appeared before timeout", len(decided))
		}
		pending, err := clientB.HumanGate.Query().
			Where(humangate.RunID(run.ID), humangate.StatusEQ(humangate.StatusPending)).
			All(ctx)
		require.NoError(t, err)
		for _, gate := range pending {
			if decided[gate.ID] {
				continue
			}
			decidedGate, err := gatesB.Decide(ctx, gate.ID, models.GateDecisionRequest{
				Decision:   string(humangate.StatusApproved),
				ApproverID: "reviewer-b",
			})
			if err != nil {
				continue
			}
			decided[gate.ID] = true
			require.NoError(t, publisherB.PublishGateDecision(ctx, events.GateDecisionNotice{
				GateID:   decidedGate.ID,
				RunID:    decidedGate.RunID,
				Decision: string(decidedGate.Status),
			}))
		}
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(60 * time.Second):
		t.Fatal("run did not finish after all gates were decided")
	}

	done := appA.Reload(t, run.ID)
	assert.Equal(t, workflowrun.StatusCompleted, done.Status)
}
