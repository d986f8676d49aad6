package twitch

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcileRecorder struct {
	mu      sync.Mutex
	deleted []string
	created []subscriptionKey
}

func newReconcileServer(t *testing.T, existing []Subscription) (*Client, *reconcileRecorder) {
	t.Helper()
	rec := &reconcileRecorder{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			writeJSON(w, map[string]any{"data": existing})
		case http.MethodDelete:
			rec.mu.Lock()
			rec.deleted = append(rec.deleted, req.URL.Query().Get("id"))
			rec.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost:
			var payload struct {
				Type      string `json:"type"`
				Condition struct {
					BroadcasterUserID string `json:"broadcaster_user_id"`
				} `json:"condition"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			rec.mu.Lock()
			rec.created = append(rec.created, subscriptionKey{payload.Condition.BroadcasterUserID, payload.Type})
			rec.mu.Unlock()
			w.WriteHeader(http.StatusAccepted)
			writeJSON(w, map[string]any{"data": []any{}})
		}
	})
	return client, rec
}

func sub(id, userID, eventType, status string) Subscription {
	return Subscription{
		ID:        id,
		Status:    status,
		Type:      eventType,
		Condition: SubscriptionCondition{BroadcasterUserID: userID},
	}
}

func TestSync_CreatesMissingTriple(t *testing.T) {
	client, rec := newReconcileServer(t, nil)

	require.NoError(t, client.Sync(context.Background(), []string{"42"}))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.ElementsMatch(t, []subscriptionKey{
		{"42", EventStreamOnline},
		{"42", EventChannelUpdate},
		{"42", EventStreamOffline},
	}, rec.created)
	assert.Empty(t, rec.deleted)
}

func TestSync_DeletesStaleAndExtra(t *testing.T) {
	client, rec := newReconcileServer(t, []Subscription{
		// Stale: failed verification, deleted even for a desired channel.
		sub("stale-1", "42", EventStreamOnline, "webhook_callback_verification_failed"),
		// Enabled triple for an undesired channel: all extra.
		sub("extra-1", "99", EventStreamOnline, "enabled"),
		sub("extra-2", "99", EventChannelUpdate, "enabled"),
		sub("extra-3", "99", EventStreamOffline, "enabled"),
		// Healthy pair for the desired channel.
		sub("keep-1", "42", EventChannelUpdate, "enabled"),
		sub("keep-2", "42", EventStreamOffline, "enabled"),
	})

	require.NoError(t, client.Sync(context.Background(), []string{"42"}))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.ElementsMatch(t, []string{"stale-1", "extra-1", "extra-2", "extra-3"}, rec.deleted)
	// Only the online pair was missing; stale delete does not count as
	// presence.
	assert.ElementsMatch(t, []subscriptionKey{{"42", EventStreamOnline}}, rec.created)
}

func TestSync_DuplicateIdsPerPairAllTreatedPresent(t *testing.T) {
	client, rec := newReconcileServer(t, []Subscription{
		sub("dup-1", "42", EventStreamOnline, "enabled"),
		sub("dup-2", "42", EventStreamOnline, "enabled"),
		sub("keep-1", "42", EventChannelUpdate, "enabled"),
		sub("keep-2", "42", EventStreamOffline, "enabled"),
	})

	require.NoError(t, client.Sync(context.Background(), []string{"42"}))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.created)
	assert.Empty(t, rec.deleted)
}

func TestSync_UnknownEventTypeForDesiredChannelIgnored(t *testing.T) {
	client, rec := newReconcileServer(t, []Subscription{
		sub("other-1", "42", "channel.follow", "enabled"),
		sub("keep-1", "42", EventStreamOnline, "enabled"),
		sub("keep-2", "42", EventChannelUpdate, "enabled"),
		sub("keep-3", "42", EventStreamOffline, "enabled"),
	})

	require.NoError(t, client.Sync(context.Background(), []string{"42"}))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.deleted)
	assert.Empty(t, rec.created)
}
