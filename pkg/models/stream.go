package models

import "time"

// UpdateEvent is one element of a stream's ordered title/category history.
// The first element records the state at stream start; each channel.update
// appends one.
type UpdateEvent struct {
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Stream is a row of the streams table. StreamID is Twitch-assigned and
// unique while the stream is active. MessageID holds the Discord message id
// as a signed 64-bit value; conversion to uint64 happens at the Discord
// boundary. EndedAt is nil while the stream is live and never reverts to
// nil once set.
type Stream struct {
	ID          int           `json:"id"`
	StreamID    string        `json:"stream_id"`
	ChannelID   string        `json:"channel_id"`
	Title       string        `json:"title"`
	StartedAt   time.Time     `json:"started_at"`
	LastUpdated time.Time     `json:"last_updated"`
	MessageID   int64         `json:"message_id"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
	Events      []UpdateEvent `json:"events"`
}

// Live reports whether the stream has not yet received its offline event.
func (s *Stream) Live() bool {
	return s.EndedAt == nil
}
