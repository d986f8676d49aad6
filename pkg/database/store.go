package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stitchbot/stitch/pkg/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store runs the channel and stream queries. The events column is a jsonb
// array appended with the || operator so history updates stay a single
// statement.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on the client's pool.
func NewStore(client *Client) *Store {
	return &Store{db: client.DB()}
}

// NewStoreFromDB creates a Store on a raw pool (tests).
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db}
}

const channelColumns = "id, name, display_name, channel_id, created_at, updated_at"

func scanChannel(row *sql.Row) (*models.Channel, error) {
	var c models.Channel
	err := row.Scan(&c.ID, &c.Name, &c.DisplayName, &c.ChannelID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Track upserts a channel by name. On conflict only updated_at changes.
func (s *Store) Track(ctx context.Context, name, displayName, channelID string) (*models.Channel, error) {
	now := time.Now().UTC()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO channels (name, display_name, channel_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (name) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING `+channelColumns,
		name, displayName, channelID, now)

	c, err := scanChannel(row)
	if err != nil {
		return nil, fmt.Errorf("tracking channel %q: %w", name, err)
	}
	return c, nil
}

// Untrack deletes a channel by name. A missing row is not an error.
func (s *Store) Untrack(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM channels WHERE name = $1`, name); err != nil {
		return fmt.Errorf("untracking channel %q: %w", name, err)
	}
	return nil
}

// ListChannels returns all tracked channels.
func (s *Store) ListChannels(ctx context.Context) ([]models.Channel, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+channelColumns+` FROM channels`)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.ChannelID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning channel: %w", err)
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}

// GetChannelByName returns the channel with the given login name, or
// ErrNotFound.
func (s *Store) GetChannelByName(ctx context.Context, name string) (*models.Channel, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+channelColumns+` FROM channels WHERE name = $1`, name)
	c, err := scanChannel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("channel %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting channel %q: %w", name, err)
	}
	return c, nil
}

// UpdateChannel refreshes name and display_name for a broadcaster id, used
// when Twitch reports a renamed account.
func (s *Store) UpdateChannel(ctx context.Context, channelID, name, displayName string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE channels SET name = $1, display_name = $2, updated_at = $3 WHERE channel_id = $4`,
		name, displayName, time.Now().UTC(), channelID)
	if err != nil {
		return fmt.Errorf("updating channel %q: %w", channelID, err)
	}
	return nil
}

// StartStream inserts a stream row with its initial history event.
func (s *Store) StartStream(ctx context.Context, streamID, channelID, title, category string, messageID int64, startedAt time.Time) error {
	events, err := json.Marshal([]models.UpdateEvent{{
		Title:     title,
		Category:  category,
		Timestamp: startedAt,
	}})
	if err != nil {
		return fmt.Errorf("marshaling initial event: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO streams (stream_id, channel_id, title, started_at, last_updated, message_id, events)
		VALUES ($1, $2, $3, $4, $4, $5, $6)`,
		streamID, channelID, title, startedAt, messageID, events)
	if err != nil {
		return fmt.Errorf("starting stream %q: %w", streamID, err)
	}
	return nil
}

// UpdateStream sets the title and appends one history event atomically.
func (s *Store) UpdateStream(ctx context.Context, streamID, title string, event models.UpdateEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE streams
		SET title = $1, last_updated = $2, events = events || $3::jsonb
		WHERE stream_id = $4 AND ended_at IS NULL`,
		title, event.Timestamp, payload, streamID)
	if err != nil {
		return fmt.Errorf("updating stream %q: %w", streamID, err)
	}
	return nil
}

// EndStream finalizes a stream. Already-ended rows are untouched, so the
// call is idempotent and ended_at never reverts.
func (s *Store) EndStream(ctx context.Context, streamID, title string, endedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE streams
		SET ended_at = $1, title = $2
		WHERE stream_id = $3 AND ended_at IS NULL`,
		endedAt, title, streamID)
	if err != nil {
		return fmt.Errorf("ending stream %q: %w", streamID, err)
	}
	return nil
}

// DeleteStream hard-deletes a stream row (untrack during a live stream).
func (s *Store) DeleteStream(ctx context.Context, streamID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM streams WHERE stream_id = $1`, streamID); err != nil {
		return fmt.Errorf("deleting stream %q: %w", streamID, err)
	}
	return nil
}

// GetStreams returns all rows for channelID, or every currently live stream
// when channelID is nil.
func (s *Store) GetStreams(ctx context.Context, channelID *string) ([]models.Stream, error) {
	var filter sql.NullString
	if channelID != nil {
		filter = sql.NullString{String: *channelID, Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, stream_id, channel_id, title, started_at, last_updated, message_id, ended_at, events
		FROM streams
		WHERE channel_id = $1 OR ($1 IS NULL AND ended_at IS NULL)
		ORDER BY last_updated DESC`,
		filter)
	if err != nil {
		return nil, fmt.Errorf("getting streams: %w", err)
	}
	defer rows.Close()

	var streams []models.Stream
	for rows.Next() {
		var (
			st     models.Stream
			ended  sql.NullTime
			events []byte
		)
		if err := rows.Scan(&st.ID, &st.StreamID, &st.ChannelID, &st.Title, &st.StartedAt,
			&st.LastUpdated, &st.MessageID, &ended, &events); err != nil {
			return nil, fmt.Errorf("scanning stream: %w", err)
		}
		if ended.Valid {
			t := ended.Time
			st.EndedAt = &t
		}
		if err := json.Unmarshal(events, &st.Events); err != nil {
			return nil, fmt.Errorf("decoding events for stream %q: %w", st.StreamID, err)
		}
		streams = append(streams, st)
	}
	return streams, rows.Err()
}
