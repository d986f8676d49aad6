// Package webhook implements the EventSub ingestion engine: request
// verification, event dispatch, per-stream state aggregation, and the
// Discord card lifecycle.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/discord"
	"github.com/stitchbot/stitch/pkg/models"
	"github.com/stitchbot/stitch/pkg/ttlset"
	"github.com/stitchbot/stitch/pkg/twitch"
)

const (
	colorLive  = 0x9146FF
	colorEnded = 0x808080

	// Cap on concurrently running online handlers, shared by bootstrap
	// and spawned notification tasks.
	maxConcurrentOnline = 40
)

// TwitchAPI is the slice of the Helix client the engine depends on.
type TwitchAPI interface {
	GetChannel(ctx context.Context, userID string) (*twitch.Channel, error)
	GetStream(ctx context.Context, userID string, retry bool) (*twitch.Stream, error)
	GetStreams(ctx context.Context, userIDs []string) ([]twitch.Stream, error)
	Sync(ctx context.Context, userIDs []string) error
}

// Engine owns the runtime stream table and turns verified EventSub
// notifications into store writes and Discord card edits.
type Engine struct {
	secret    []byte
	api       TwitchAPI
	store     *database.Store
	publisher discord.Publisher
	channels  *ChannelTable
	recent    *ttlset.Set
	streams   *streamTable
	logger    *slog.Logger

	// now is the verification clock, swapped for a fixed time in tests.
	now func() time.Time

	tasks sync.WaitGroup
	slots chan struct{}
}

// NewEngine wires the engine. The channel table is shared with the
// control-plane service; Bootstrap fills it from the store.
func NewEngine(secret string, api TwitchAPI, store *database.Store, publisher discord.Publisher, channels *ChannelTable) *Engine {
	return &Engine{
		secret:    []byte(secret),
		api:       api,
		store:     store,
		publisher: publisher,
		channels:  channels,
		recent:    ttlset.New(),
		streams:   newStreamTable(),
		logger:    slog.Default(),
		now:       time.Now,
		slots:     make(chan struct{}, maxConcurrentOnline),
	}
}

// Close stops the replay scavenger and waits for spawned handlers.
func (e *Engine) Close() {
	e.tasks.Wait()
	e.recent.Close()
}

func liveCard(userName, userLogin, title, category, profileImageURL string) *discord.Card {
	return &discord.Card{
		Title:       fmt.Sprintf("**%s** is live!", displayName(userName, userLogin)),
		Description: title,
		Thumbnail:   profileImageURL,
		Color:       colorLive,
		URL:         "https://twitch.tv/" + userLogin,
		Field:       "» " + category,
	}
}

func endedCard(userName, userLogin, winningTitle, elapsed, categoryLabel, profileImageURL string) *discord.Card {
	return &discord.Card{
		Title:       fmt.Sprintf("**%s** streamed for %s", displayName(userName, userLogin), elapsed),
		Description: winningTitle,
		Thumbnail:   profileImageURL,
		Color:       colorEnded,
		URL:         "https://twitch.tv/" + userLogin,
		Field:       categoryLabel,
	}
}

// spawnOnline runs the online handler asynchronously so the webhook
// response is not held hostage by Helix latency or the retry schedule.
func (e *Engine) spawnOnline(userID string, timestamp time.Time) {
	e.tasks.Add(1)
	go func() {
		defer e.tasks.Done()
		e.slots <- struct{}{}
		defer func() { <-e.slots }()

		if err := e.HandleOnline(context.Background(), userID, nil, nil, timestamp); err != nil {
			e.logger.Error("Online handler failed", "user_id", userID, "error", err)
		}
	}()
}

// HandleOnline creates runtime and persistent state for a stream going
// live and publishes its card. prefetched skips the Helix stream lookup
// (bootstrap and track-probe paths); preload supplies the stored message
// id and history after a restart, in which case nothing is sent or
// inserted.
//
// Upstream failures are non-fatal by design: Twitch will not re-deliver a
// missed online, so the handler logs and leaves state untouched rather
// than poisoning it.
func (e *Engine) HandleOnline(ctx context.Context, userID string, prefetched *twitch.Stream, preload *models.Stream, timestamp time.Time) error {
	if e.streams.contains(userID) {
		return nil
	}

	var (
		channel *twitch.Channel
		stream  = prefetched
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		channel, err = e.api.GetChannel(gctx, userID)
		return err
	})
	if stream == nil {
		g.Go(func() error {
			var err error
			stream, err = e.api.GetStream(gctx, userID, true)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("Online: Twitch lookup failed, skipping", "user_id", userID, "error", err)
		return nil
	}

	if !e.channels.ContainsID(userID) {
		e.logger.Debug("Online for untracked channel, skipping", "user_id", userID)
		return nil
	}

	e.refreshChannelRow(ctx, channel)

	e.logger.Info("Stream online", "login", channel.Login, "stream_id", stream.ID)

	var (
		messageID int64
		events    []models.UpdateEvent
	)
	if preload != nil {
		messageID = preload.MessageID
		events = preload.Events
	} else {
		id, err := e.publisher.Send(ctx, liveCard(channel.DisplayName, channel.Login, stream.Title, stream.GameName, channel.ProfileImageURL))
		if err != nil {
			return errInternal("sending live card: %v", err)
		}
		messageID = int64(id)
		events = []models.UpdateEvent{{
			Title:     stream.Title,
			Category:  stream.GameName,
			Timestamp: timestamp,
		}}
	}

	entry := &liveStream{
		id:              stream.ID,
		channelID:       channel.ID,
		userLogin:       channel.Login,
		userName:        channel.DisplayName,
		title:           stream.Title,
		category:        stream.GameName,
		startedAt:       stream.StartedAt,
		lastUpdated:     timestamp,
		messageID:       messageID,
		profileImageURL: channel.ProfileImageURL,
		events:          events,
	}

	if !e.streams.insertIfAbsent(channel.ID, entry) {
		// A concurrent online won the insert; drop our card if we sent one.
		e.logger.Debug("Concurrent online lost the insert race", "user_id", userID)
		if preload == nil {
			if err := e.publisher.Delete(ctx, uint64(messageID)); err != nil {
				e.logger.Warn("Failed to delete superseded card", "message_id", messageID, "error", err)
			}
		}
		return nil
	}

	if preload == nil {
		if err := e.store.StartStream(ctx, stream.ID, channel.ID, stream.Title, stream.GameName, messageID, timestamp); err != nil {
			return err
		}
	}
	return nil
}

// refreshChannelRow updates the stored login/display name when Twitch
// reports different values than the last track saw.
func (e *Engine) refreshChannelRow(ctx context.Context, channel *twitch.Channel) {
	stored, err := e.store.GetChannelByName(ctx, channel.Login)
	if err == nil && stored.DisplayName == channel.DisplayName {
		return
	}
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		e.logger.Warn("Channel row lookup failed", "login", channel.Login, "error", err)
		return
	}

	if err := e.store.UpdateChannel(ctx, channel.ID, channel.Login, channel.DisplayName); err != nil {
		e.logger.Warn("Channel row refresh failed", "channel_id", channel.ID, "error", err)
		return
	}
	e.channels.Rename(channel.ID, channel.Login)
}

// HandleUpdate applies a channel.update to the runtime stream, appends a
// history event, persists it, and refreshes the live card. An update for
// a channel with no runtime stream is a no-op.
func (e *Engine) HandleUpdate(ctx context.Context, userID, title, category string, timestamp time.Time) error {
	s, ok := e.streams.get(userID)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.title = title
	s.category = category
	s.lastUpdated = timestamp

	event := models.UpdateEvent{Title: title, Category: category, Timestamp: timestamp}
	s.events = append(s.events, event)

	if err := e.store.UpdateStream(ctx, s.id, title, event); err != nil {
		return err
	}
	if err := e.publisher.Edit(ctx, uint64(s.messageID), liveCard(s.userName, s.userLogin, title, category, s.profileImageURL)); err != nil {
		return errInternal("editing live card: %v", err)
	}

	e.logger.Info("Channel update", "login", s.userLogin, "title", title, "category", category)
	return nil
}

// HandleOffline finalizes a stream: tallies its history, edits the card
// to the ended state, and persists ended_at. The map removal is the
// atomic serialization point against concurrent updates.
func (e *Engine) HandleOffline(ctx context.Context, userID string, timestamp time.Time) error {
	s, ok := e.streams.remove(userID)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		e.logger.Error("Offline for stream with no recorded events, skipping",
			"user_id", userID, "stream_id", s.id)
		return nil
	}

	events := slices.Clone(s.events)
	events = append(events, models.UpdateEvent{
		Title:     s.title,
		Category:  s.category,
		Timestamp: timestamp,
	})

	winningTitle, categoryLabel := tally(events)
	elapsed := humanDuration(s.startedAt, timestamp)

	e.logger.Info("Stream offline", "login", s.userLogin, "elapsed", elapsed, "title", winningTitle)

	card := endedCard(s.userName, s.userLogin, winningTitle, elapsed, categoryLabel, s.profileImageURL)
	if err := e.publisher.Edit(ctx, uint64(s.messageID), card); err != nil {
		return errInternal("editing ended card: %v", err)
	}

	return e.store.EndStream(ctx, s.id, winningTitle, timestamp)
}

// UntrackLive tears down runtime state for an untracked channel that is
// currently live: the card is deleted outright and the stream row hard
// deleted. Subsequent update/offline events for the channel degrade to
// no-ops.
func (e *Engine) UntrackLive(ctx context.Context, channelID string) error {
	s, ok := e.streams.remove(channelID)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := e.publisher.Delete(ctx, uint64(s.messageID)); err != nil {
		e.logger.Warn("Failed to delete card on untrack", "message_id", s.messageID, "error", err)
	}
	return e.store.DeleteStream(ctx, s.id)
}

// ProbeOnline asynchronously checks whether a freshly tracked channel is
// already live, so its card appears without waiting for the next EventSub
// delivery.
func (e *Engine) ProbeOnline(channelID string) {
	e.spawnOnline(channelID, time.Now().UTC())
}

// Bootstrap rebuilds runtime state after a restart: tracked channels are
// loaded into the shared table, unfinished stream rows pair up with the
// live snapshot from Helix as preloads, stale unfinished rows are closed
// with a synthetic end, and the subscription set is reconciled.
func (e *Engine) Bootstrap(ctx context.Context) error {
	channels, err := e.store.ListChannels(ctx)
	if err != nil {
		return fmt.Errorf("loading channels: %w", err)
	}
	for _, c := range channels {
		e.channels.Add(c.Name, c.ChannelID)
	}

	unfinished, err := e.store.GetStreams(ctx, nil)
	if err != nil {
		return fmt.Errorf("loading unfinished streams: %w", err)
	}
	stored := make(map[string]models.Stream, len(unfinished))
	for _, s := range unfinished {
		stored[s.StreamID] = s
	}

	ids := e.channels.IDs()
	var live []twitch.Stream
	if len(ids) > 0 {
		if live, err = e.api.GetStreams(ctx, ids); err != nil {
			return fmt.Errorf("fetching live snapshot: %w", err)
		}
	}

	liveIDs := make(map[string]struct{}, len(live))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOnline)
	for _, stream := range live {
		liveIDs[stream.ID] = struct{}{}
		var preload *models.Stream
		if row, ok := stored[stream.ID]; ok {
			preload = &row
		}
		g.Go(func() error {
			if err := e.HandleOnline(gctx, stream.UserID, &stream, preload, stream.StartedAt); err != nil {
				e.logger.Error("Bootstrap online failed", "user_id", stream.UserID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	// Unfinished rows whose stream never came back in the snapshot missed
	// their offline while we were down; close them with a synthetic end.
	now := time.Now().UTC()
	for streamID, row := range stored {
		if _, ok := liveIDs[streamID]; ok {
			continue
		}
		e.logger.Info("Closing stale unfinished stream", "stream_id", streamID, "channel_id", row.ChannelID)
		if err := e.store.EndStream(ctx, streamID, row.Title, now); err != nil {
			e.logger.Warn("Failed to close stale stream", "stream_id", streamID, "error", err)
		}
	}

	if err := e.api.Sync(ctx, ids); err != nil {
		e.logger.Warn("Subscription reconcile failed", "error", err)
	}

	e.logger.Info("Bootstrap complete", "channels", len(channels), "live_streams", e.streams.len())
	return nil
}
