package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// None of these may panic.
	s.NotifyRunStarted(context.Background(), &ent.WorkflowRun{ID: "run-1"})
	s.NotifyRunTerminal(context.Background(), &ent.WorkflowRun{ID: "run-1"})
	s.NotifyGateCreated(context.Background(), &ent.HumanGate{ID: "gate-1"})
	s.NotifyGateDecided(context.Background(), &ent.HumanGate{ID: "gate-1"})
	s.NotifyBudgetWarning(context.Background(), "run-1", "run", 8, 10)
	s.NotifyCritical(context.Background(), "run-1", "boom")
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "C123"}))
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: ""}))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

// mockSlackAPI records chat.postMessage calls and serves an empty
// channel history for fingerprint lookups.
type mockSlackAPI struct {
	mu     sync.Mutex
	posts  []map[string]string
	server *httptest.Server
}

func newMockSlackAPI(t *testing.T) *mockSlackAPI {
	t.Helper()
	m := &mockSlackAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		post := map[string]string{
			"channel":   r.FormValue("channel"),
			"blocks":    r.FormValue("blocks"),
			"thread_ts": r.FormValue("thread_ts"),
		}
		m.mu.Lock()
		m.posts = append(m.posts, post)
		m.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1724670000.000100"}`))
	})
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"messages":[]}`))
	})
	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockSlackAPI) postCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

func (m *mockSlackAPI) lastPost() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.posts) == 0 {
		return nil
	}
	return m.posts[len(m.posts)-1]
}

func TestService_PostsRunLifecycle(t *testing.T) {
	api := newMockSlackAPI(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", api.server.URL+"/")
	svc := NewServiceWithClient(client, "https://dash.example.com")

	run := &ent.WorkflowRun{
		ID:           "run-1",
		Campaign:     "q3-fintech",
		Status:       workflowrun.StatusCompleted,
		BudgetCapUsd: 100,
		SpendUsd:     12,
	}

	svc.NotifyRunStarted(context.Background(), run)
	require.Equal(t, 1, api.postCount())
	post := api.lastPost()
	assert.Equal(t, "C123", post["channel"])
	assert.Contains(t, post["blocks"], "run:run-1")
	assert.Empty(t, post["thread_ts"], "start message opens the thread")

	svc.NotifyRunTerminal(context.Background(), run)
	require.Equal(t, 2, api.postCount())
	assert.Contains(t, api.lastPost()["blocks"], "Run Complete")
}

func TestService_PostsCriticalAlert(t *testing.T) {
	api := newMockSlackAPI(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", api.server.URL+"/")
	svc := NewServiceWithClient(client, "https://dash.example.com")

	svc.NotifyCritical(context.Background(), "run-1", "compensation hook sending failed after 3 attempts")
	require.Equal(t, 1, api.postCount())
	assert.Contains(t, api.lastPost()["blocks"], "Manual intervention required")
}
