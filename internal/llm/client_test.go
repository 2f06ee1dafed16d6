package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 2000
	return cfg
}

func completionBody(text string) map[string]any {
	return map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": text}},
		},
	}
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(completionBody("Stay on protocol."))
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	resp, err := client.Complete(context.Background(), CompleteRequest{
		Task:         TaskConsult,
		SystemPrompt: "You are PRIME.",
		UserPrompt:   "Am I efficient today?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Stay on protocol.", resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limit"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskConsult, UserPrompt: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"model": "m", "choices": []any{}})
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskConsult, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		json.NewEncoder(w).Encode(completionBody("too late"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Tasks[TaskConsult] = TaskConfig{TimeoutMs: 50}

	client := NewChatClient(cfg, nil)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskConsult, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestComplete_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(completionBody("second attempt"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetries = 1

	client := NewChatClient(cfg, nil)
	resp, err := client.Complete(context.Background(), CompleteRequest{Task: TaskConsult, UserPrompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "second attempt", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestComplete_ObserverReceivesEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer server.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewChatClient(testConfig(server.URL), observer)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskBriefing, UserPrompt: "hi"})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, TaskBriefing, events[0].Task)
}

func TestAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	assert.True(t, client.Available(context.Background()))

	server.Close()
	assert.False(t, client.Available(context.Background()))
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
