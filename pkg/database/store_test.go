package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/models"
	"github.com/stitchbot/stitch/test/util"
)

func newStore(t *testing.T) *database.Store {
	db := util.SetupTestDatabase(t)
	return database.NewStoreFromDB(db)
}

func TestTrack_InsertAndUpsert(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, err := store.Track(ctx, "alice", "Alice", "42")
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Name)
	assert.Equal(t, "Alice", first.DisplayName)
	assert.Equal(t, "42", first.ChannelID)

	// Re-track only bumps updated_at.
	second, err := store.Track(ctx, "alice", "Someone Else", "999")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice", second.DisplayName)
	assert.Equal(t, "42", second.ChannelID)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestUntrack_MissingRowIsNotAnError(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Untrack(context.Background(), "nobody"))
}

func TestGetChannelByName(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Track(ctx, "alice", "Alice", "42")
	require.NoError(t, err)

	got, err := store.GetChannelByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "42", got.ChannelID)

	_, err = store.GetChannelByName(ctx, "bob")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUpdateChannel_Rename(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Track(ctx, "alice", "Alice", "42")
	require.NoError(t, err)

	require.NoError(t, store.UpdateChannel(ctx, "42", "alicia", "Alicia"))

	got, err := store.GetChannelByName(ctx, "alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.DisplayName)
	assert.Equal(t, "42", got.ChannelID)
}

func TestStreamLifecycle(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.StartStream(ctx, "s1", "42", "Hello", "Gaming", 777, t0))

	live, err := store.GetStreams(ctx, nil)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "s1", live[0].StreamID)
	assert.Equal(t, int64(777), live[0].MessageID)
	require.Len(t, live[0].Events, 1)
	assert.Equal(t, "Gaming", live[0].Events[0].Category)

	// Append one update atomically.
	err = store.UpdateStream(ctx, "s1", "Then", models.UpdateEvent{
		Title: "Then", Category: "Art", Timestamp: t0.Add(30 * time.Minute),
	})
	require.NoError(t, err)

	channelID := "42"
	rows, err := store.GetStreams(ctx, &channelID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Then", rows[0].Title)
	require.Len(t, rows[0].Events, 2)
	assert.Equal(t, "Art", rows[0].Events[1].Category)

	// End it; the live view empties out.
	require.NoError(t, store.EndStream(ctx, "s1", "Then", t0.Add(time.Hour)))
	live, err = store.GetStreams(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, live)

	rows, err = store.GetStreams(ctx, &channelID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].EndedAt)
	assert.True(t, rows[0].EndedAt.Equal(t0.Add(time.Hour)))
}

func TestEndStream_Idempotent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.StartStream(ctx, "s1", "42", "Hello", "Gaming", 1, t0))
	require.NoError(t, store.EndStream(ctx, "s1", "Hello", t0.Add(time.Hour)))

	// Second end with a different timestamp must not move ended_at.
	require.NoError(t, store.EndStream(ctx, "s1", "Other", t0.Add(2*time.Hour)))

	channelID := "42"
	rows, err := store.GetStreams(ctx, &channelID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].EndedAt.Equal(t0.Add(time.Hour)))
	assert.Equal(t, "Hello", rows[0].Title)
}

func TestDeleteStream(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.StartStream(ctx, "s1", "42", "Hello", "Gaming", 1, time.Now().UTC()))
	require.NoError(t, store.DeleteStream(ctx, "s1"))

	channelID := "42"
	rows, err := store.GetStreams(ctx, &channelID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
