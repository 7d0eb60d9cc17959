package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRunEvent(t *testing.T) {
	before := testutil.ToFloat64(RunEvents.WithLabelValues("run_started"))

	ObserveRunEvent("run_started")
	ObserveRunEvent("run_started")

	assert.Equal(t, before+2, testutil.ToFloat64(RunEvents.WithLabelValues("run_started")))
}

func TestObserveInvocation(t *testing.T) {
	before := testutil.ToFloat64(ToolInvocations.WithLabelValues("serper", "success"))

	ObserveInvocation("serper", "success")

	assert.Equal(t, before+1, testutil.ToFloat64(ToolInvocations.WithLabelValues("serper", "success")))
}

func TestStateCollectorDescribe(t *testing.T) {
	ch := make(chan *prometheus.Desc, 4)
	NewStateCollector(nil).Describe(ch)
	close(ch)

	var descs []*prometheus.Desc
	for d := range ch {
		descs = append(descs, d)
	}
	assert.Len(t, descs, 2)
}
