package webhook

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/discord"
	"github.com/stitchbot/stitch/pkg/twitch"
	"github.com/stitchbot/stitch/test/util"
)

type fakeAPI struct {
	mu       sync.Mutex
	channels map[string]*twitch.Channel
	streams  map[string]*twitch.Stream
	syncedTo []string
}

func (f *fakeAPI) GetChannel(_ context.Context, userID string) (*twitch.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.channels[userID]; ok {
		return c, nil
	}
	return nil, twitch.ErrNotFound
}

func (f *fakeAPI) GetStream(_ context.Context, userID string, _ bool) (*twitch.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.streams[userID]; ok {
		return s, nil
	}
	return nil, twitch.ErrNotFound
}

func (f *fakeAPI) GetStreams(_ context.Context, userIDs []string) ([]twitch.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []twitch.Stream
	for _, id := range userIDs {
		if s, ok := f.streams[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeAPI) Sync(_ context.Context, userIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncedTo = append([]string(nil), userIDs...)
	return nil
}

type fakePublisher struct {
	mu      sync.Mutex
	nextID  uint64
	sent    map[uint64]*discord.Card
	edited  map[uint64]*discord.Card
	deleted []uint64
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{
		nextID: 1000,
		sent:   make(map[uint64]*discord.Card),
		edited: make(map[uint64]*discord.Card),
	}
}

func (p *fakePublisher) Send(_ context.Context, card *discord.Card) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.sent[p.nextID] = card
	return p.nextID, nil
}

func (p *fakePublisher) Edit(_ context.Context, messageID uint64, card *discord.Card) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.edited[messageID] = card
	return nil
}

func (p *fakePublisher) Delete(_ context.Context, messageID uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, messageID)
	return nil
}

func (p *fakePublisher) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

type engineFixture struct {
	engine    *Engine
	api       *fakeAPI
	publisher *fakePublisher
	store     *database.Store
	channels  *ChannelTable
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	db := util.SetupTestDatabase(t)
	store := database.NewStoreFromDB(db)
	api := &fakeAPI{
		channels: make(map[string]*twitch.Channel),
		streams:  make(map[string]*twitch.Stream),
	}
	publisher := newFakePublisher()
	channels := NewChannelTable()
	engine := NewEngine(testSecret, api, store, publisher, channels)
	t.Cleanup(engine.Close)

	return &engineFixture{
		engine:    engine,
		api:       api,
		publisher: publisher,
		store:     store,
		channels:  channels,
	}
}

// trackStreamer seeds a tracked channel in the store, the shared table,
// and the fake Helix profile endpoint.
func (f *engineFixture) trackStreamer(t *testing.T) {
	t.Helper()
	_, err := f.store.Track(context.Background(), "streamer", "Streamer", "42")
	require.NoError(t, err)
	f.channels.Add("streamer", "42")
	f.api.channels["42"] = &twitch.Channel{
		ID:              "42",
		Login:           "streamer",
		DisplayName:     "Streamer",
		ProfileImageURL: "https://cdn.example/streamer.png",
	}
}

func TestEngineStreamLifecycle(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	f.trackStreamer(t)
	f.api.streams["42"] = &twitch.Stream{
		ID: "s1", UserID: "42", UserLogin: "streamer", UserName: "Streamer",
		GameName: "Gaming", Title: "morning games", StartedAt: t0,
	}

	require.NoError(t, f.engine.HandleOnline(ctx, "42", nil, nil, t0))

	require.Equal(t, 1, f.publisher.sentCount())
	var messageID uint64
	var card *discord.Card
	for id, c := range f.publisher.sent {
		messageID, card = id, c
	}
	assert.Equal(t, "**Streamer** is live!", card.Title)
	assert.Equal(t, "morning games", card.Description)
	assert.Equal(t, "» Gaming", card.Field)
	assert.Equal(t, colorLive, card.Color)
	assert.Equal(t, "https://twitch.tv/streamer", card.URL)
	assert.Equal(t, "https://cdn.example/streamer.png", card.Thumbnail)

	rows, err := f.store.GetStreams(ctx, ptr("42"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].StreamID)
	assert.Equal(t, int64(messageID), rows[0].MessageID)
	assert.Len(t, rows[0].Events, 1)

	// Title and category change 30 minutes in.
	require.NoError(t, f.engine.HandleUpdate(ctx, "42", "painting time", "Art", t0.Add(30*time.Minute)))

	edited := f.publisher.edited[messageID]
	require.NotNil(t, edited)
	assert.Equal(t, "painting time", edited.Description)
	assert.Equal(t, "» Art", edited.Field)
	assert.Equal(t, colorLive, edited.Color)

	rows, err = f.store.GetStreams(ctx, ptr("42"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Events, 2)

	// Offline 90 minutes in: Art held the card for 60m vs Gaming's 30m.
	require.NoError(t, f.engine.HandleOffline(ctx, "42", t0.Add(90*time.Minute)))

	final := f.publisher.edited[messageID]
	require.NotNil(t, final)
	assert.Equal(t, "**Streamer** streamed for 1h30m", final.Title)
	assert.Equal(t, "painting time", final.Description)
	assert.Equal(t, "» Art ⬩ Gaming", final.Field)
	assert.Equal(t, colorEnded, final.Color)

	rows, err = f.store.GetStreams(ctx, ptr("42"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].EndedAt)
	assert.Equal(t, "painting time", rows[0].Title)
	assert.False(t, f.engine.streams.contains("42"))
}

func TestEngineDuplicateOnlineIsNoop(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	t0 := time.Now().UTC()

	f.trackStreamer(t)
	f.api.streams["42"] = &twitch.Stream{ID: "s1", UserID: "42", Title: "t", GameName: "g", StartedAt: t0}

	require.NoError(t, f.engine.HandleOnline(ctx, "42", nil, nil, t0))
	require.NoError(t, f.engine.HandleOnline(ctx, "42", nil, nil, t0))

	assert.Equal(t, 1, f.publisher.sentCount())
	rows, err := f.store.GetStreams(ctx, ptr("42"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestEngineOnlineForUntrackedChannel(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Profile and stream exist upstream, but nothing tracks the channel.
	f.api.channels["99"] = &twitch.Channel{ID: "99", Login: "rando", DisplayName: "Rando"}
	f.api.streams["99"] = &twitch.Stream{ID: "s9", UserID: "99", Title: "t", GameName: "g", StartedAt: time.Now()}

	require.NoError(t, f.engine.HandleOnline(ctx, "99", nil, nil, time.Now().UTC()))

	assert.Zero(t, f.publisher.sentCount())
	assert.False(t, f.engine.streams.contains("99"))
}

func TestEngineUpdateAndOfflineWithoutStream(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.engine.HandleUpdate(ctx, "42", "t", "g", time.Now().UTC()))
	assert.NoError(t, f.engine.HandleOffline(ctx, "42", time.Now().UTC()))
	assert.Zero(t, f.publisher.sentCount())
}

func TestEngineUntrackLive(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	t0 := time.Now().UTC()

	f.trackStreamer(t)
	f.api.streams["42"] = &twitch.Stream{ID: "s1", UserID: "42", Title: "t", GameName: "g", StartedAt: t0}
	require.NoError(t, f.engine.HandleOnline(ctx, "42", nil, nil, t0))

	require.NoError(t, f.engine.UntrackLive(ctx, "42"))

	assert.Len(t, f.publisher.deleted, 1)
	assert.False(t, f.engine.streams.contains("42"))
	rows, err := f.store.GetStreams(ctx, ptr("42"))
	require.NoError(t, err)
	assert.Empty(t, rows, "stream row is hard deleted")

	// Trailing events for the gone stream degrade to no-ops.
	assert.NoError(t, f.engine.HandleOffline(ctx, "42", t0.Add(time.Hour)))
}

func TestEngineBootstrap(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	t0 := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)

	// Two tracked channels persisted from a previous run: 42 is still
	// live with a stored card, 43 went offline while we were down.
	_, err := f.store.Track(ctx, "streamer", "Streamer", "42")
	require.NoError(t, err)
	_, err = f.store.Track(ctx, "sleeper", "Sleeper", "43")
	require.NoError(t, err)
	require.NoError(t, f.store.StartStream(ctx, "s1", "42", "still here", "Gaming", 7777, t0))
	require.NoError(t, f.store.StartStream(ctx, "s0", "43", "gone now", "Art", 8888, t0))

	f.api.channels["42"] = &twitch.Channel{ID: "42", Login: "streamer", DisplayName: "Streamer"}
	f.api.channels["43"] = &twitch.Channel{ID: "43", Login: "sleeper", DisplayName: "Sleeper"}
	f.api.streams["42"] = &twitch.Stream{
		ID: "s1", UserID: "42", UserLogin: "streamer", UserName: "Streamer",
		Title: "still here", GameName: "Gaming", StartedAt: t0,
	}

	require.NoError(t, f.engine.Bootstrap(ctx))

	// The surviving stream was adopted, not re-announced.
	assert.Zero(t, f.publisher.sentCount())
	s, ok := f.engine.streams.get("42")
	require.True(t, ok)
	assert.Equal(t, int64(7777), s.messageID)
	assert.Len(t, s.events, 1, "history preloaded from the store")

	// The stale row was closed with a synthetic end.
	rows, err := f.store.GetStreams(ctx, ptr("43"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotNil(t, rows[0].EndedAt)
	assert.False(t, f.engine.streams.contains("43"))

	// Subscriptions reconciled against the tracked set.
	assert.ElementsMatch(t, []string{"42", "43"}, f.api.syncedTo)

	assert.True(t, f.channels.ContainsName("streamer"))
	assert.True(t, f.channels.ContainsName("sleeper"))
}

func ptr(s string) *string { return &s }
