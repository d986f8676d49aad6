package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helixRecorder captures Helix requests and serves canned responses.
type helixRecorder struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  http.HandlerFunc
}

func (r *helixRecorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req.Clone(context.Background()))
}

func (r *helixRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *helixRecorder) {
	t.Helper()
	rec := &helixRecorder{handler: handler}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "client_credentials", req.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		rec.record(req)
		rec.handler(w, req)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), ClientConfig{
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		WebhookURL:    "stitch.example.com",
		WebhookSecret: "hook-secret",
		TokenURL:      server.URL + "/oauth2/token",
		HelixURL:      server.URL,
	})
	require.NoError(t, err)
	return client, rec
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestGetChannelByName(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/users", req.URL.Path)
		assert.Equal(t, "alice", req.URL.Query().Get("login"))
		assert.Equal(t, "client-id", req.Header.Get("Client-Id"))
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		writeJSON(w, channelsResponse{Data: []Channel{{
			ID: "42", Login: "alice", DisplayName: "Alice", ProfileImageURL: "https://cdn/alice.png",
		}}})
	})

	ch, err := client.GetChannelByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "42", ch.ID)
	assert.Equal(t, "Alice", ch.DisplayName)
	assert.Equal(t, 1, rec.count())
}

func TestGetChannel_EmptyResponseIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, channelsResponse{})
	})

	_, err := client.GetChannel(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStreams_ChunksAtHundred(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		ids := req.URL.Query()["user_id"]
		streams := make([]Stream, len(ids))
		for i, id := range ids {
			streams[i] = Stream{ID: "s-" + id, UserID: id}
		}
		writeJSON(w, streamsResponse{Data: streams})
	})

	ids := make([]string, 250)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}

	streams, err := client.GetStreams(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, streams, 250)
	require.Equal(t, 3, rec.count())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Len(t, rec.requests[0].URL.Query()["user_id"], 100)
	assert.Len(t, rec.requests[1].URL.Query()["user_id"], 100)
	assert.Len(t, rec.requests[2].URL.Query()["user_id"], 50)
}

func TestGetStream_NoRetryEmptyIsNotFound(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, streamsResponse{})
	})

	_, err := client.GetStream(context.Background(), "42", false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, rec.count())
}

func TestGetStream_RetryReturnsFirstNonEmpty(t *testing.T) {
	var calls int
	var mu sync.Mutex
	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			writeJSON(w, streamsResponse{})
			return
		}
		writeJSON(w, streamsResponse{Data: []Stream{{ID: "s1", UserID: "42", Title: "Hello"}}})
	})
	// Collapse the production schedule so the test runs in milliseconds.
	client.retrySchedule = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond}

	stream, err := client.GetStream(context.Background(), "42", true)
	require.NoError(t, err)
	assert.Equal(t, "s1", stream.ID)
	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()
}

func TestGetStream_RetryHonorsCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, streamsResponse{})
	})
	client.retrySchedule = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := client.GetStream(ctx, "42", true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetSubscriptions_FollowsCursor(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("after") == "" {
			writeJSON(w, map[string]any{
				"data":       []Subscription{{ID: "sub-1", Status: "enabled", Type: EventStreamOnline}},
				"pagination": map[string]string{"cursor": "page-2"},
			})
			return
		}
		assert.Equal(t, "page-2", req.URL.Query().Get("after"))
		writeJSON(w, map[string]any{
			"data": []Subscription{{ID: "sub-2", Status: "enabled", Type: EventStreamOffline}},
		})
	})

	subs, err := client.GetSubscriptions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "sub-1", subs[0].ID)
	assert.Equal(t, "sub-2", subs[1].ID)
	assert.Equal(t, 2, rec.count())
}

func TestSubscribe_PayloadShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/eventsub/subscriptions", req.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		assert.Equal(t, EventStreamOnline, payload["type"])
		assert.Equal(t, "1", payload["version"])

		condition := payload["condition"].(map[string]any)
		assert.Equal(t, "42", condition["broadcaster_user_id"])

		transport := payload["transport"].(map[string]any)
		assert.Equal(t, "webhook", transport["method"])
		assert.Equal(t, "https://stitch.example.com/webhook/twitch", transport["callback"])
		assert.Equal(t, "hook-secret", transport["secret"])

		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{"data": []any{}})
	})

	require.NoError(t, client.Subscribe(context.Background(), EventStreamOnline, "42"))
}

func TestDoJSON_Non2xxIncludesStatusAndTruncatedBody(t *testing.T) {
	longBody := strings.Repeat("x", 500)
	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, longBody)
	})

	_, err := client.GetChannel(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), strings.Repeat("x", 256))
	assert.NotContains(t, err.Error(), strings.Repeat("x", 257))
}
