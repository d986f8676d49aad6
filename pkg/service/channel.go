// Package service implements the operator control plane: listing,
// tracking, and untracking channels, exposed over gRPC.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/models"
	"github.com/stitchbot/stitch/pkg/twitch"
	"github.com/stitchbot/stitch/pkg/webhook"
)

// Control-plane sentinel errors; the gRPC layer maps them to status codes.
var (
	ErrInvalidName    = errors.New("invalid channel name")
	ErrAlreadyTracked = errors.New("channel already tracked")
	ErrNotTracked     = errors.New("channel not tracked")
	ErrChannelUnknown = errors.New("no such channel on Twitch")
)

// TwitchControl is the slice of the Helix client the control plane uses.
type TwitchControl interface {
	GetChannelByName(ctx context.Context, login string) (*twitch.Channel, error)
	SubscribeAll(ctx context.Context, userID string) error
	UnsubscribeUser(ctx context.Context, userID string) error
}

// StreamControl lets the control plane poke the webhook engine: probing a
// freshly tracked channel and tearing down a live stream on untrack.
type StreamControl interface {
	ProbeOnline(channelID string)
	UntrackLive(ctx context.Context, channelID string) error
}

// ChannelService carries out track/untrack/list against the store, the
// Helix subscription set, and the engine's in-memory channel table.
type ChannelService struct {
	store    *database.Store
	api      TwitchControl
	engine   StreamControl
	channels *webhook.ChannelTable
	logger   *slog.Logger
}

// NewChannelService wires the control plane. The channel table must be the
// same instance the webhook engine consults.
func NewChannelService(store *database.Store, api TwitchControl, engine StreamControl, channels *webhook.ChannelTable) *ChannelService {
	return &ChannelService{
		store:    store,
		api:      api,
		engine:   engine,
		channels: channels,
		logger:   slog.Default(),
	}
}

// List returns all tracked channels.
func (s *ChannelService) List(ctx context.Context) ([]models.Channel, error) {
	return s.store.ListChannels(ctx)
}

// Track starts watching a channel: resolve it upstream, persist it,
// subscribe to its events, add it to the runtime table, and probe whether
// it is live right now so the card appears without waiting for EventSub.
func (s *ChannelService) Track(ctx context.Context, name string) error {
	name = normalizeLogin(name)
	if name == "" {
		return ErrInvalidName
	}
	if s.channels.ContainsName(name) {
		return fmt.Errorf("%q: %w", name, ErrAlreadyTracked)
	}

	channel, err := s.api.GetChannelByName(ctx, name)
	if errors.Is(err, twitch.ErrNotFound) {
		return fmt.Errorf("%q: %w", name, ErrChannelUnknown)
	}
	if err != nil {
		return fmt.Errorf("resolving channel %q: %w", name, err)
	}

	if _, err := s.store.Track(ctx, channel.Login, channel.DisplayName, channel.ID); err != nil {
		return err
	}
	if err := s.api.SubscribeAll(ctx, channel.ID); err != nil {
		return fmt.Errorf("subscribing %q: %w", channel.Login, err)
	}
	s.channels.Add(channel.Login, channel.ID)

	s.logger.Info("Channel tracked", "login", channel.Login, "channel_id", channel.ID)
	s.engine.ProbeOnline(channel.ID)
	return nil
}

// Untrack stops watching a channel: drop the row, the subscriptions, the
// table entry, and any live runtime stream with its card.
func (s *ChannelService) Untrack(ctx context.Context, name string) error {
	name = normalizeLogin(name)
	if name == "" {
		return ErrInvalidName
	}
	if !s.channels.ContainsName(name) {
		return fmt.Errorf("%q: %w", name, ErrNotTracked)
	}

	channel, err := s.store.GetChannelByName(ctx, name)
	if errors.Is(err, database.ErrNotFound) {
		// Table and store disagree; heal the table and report not tracked.
		s.channels.RemoveByName(name)
		return fmt.Errorf("%q: %w", name, ErrNotTracked)
	}
	if err != nil {
		return err
	}

	if err := s.store.Untrack(ctx, name); err != nil {
		return err
	}
	if err := s.api.UnsubscribeUser(ctx, channel.ChannelID); err != nil {
		s.logger.Warn("Unsubscribe failed, reconcile will retry", "login", name, "error", err)
	}
	s.channels.RemoveByName(name)

	if err := s.engine.UntrackLive(ctx, channel.ChannelID); err != nil {
		return fmt.Errorf("tearing down live stream for %q: %w", name, err)
	}

	s.logger.Info("Channel untracked", "login", name, "channel_id", channel.ChannelID)
	return nil
}

func normalizeLogin(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
