// Package models contains the persistent row types and stream history types.
package models

import "time"

// Channel is a tracked Twitch channel as stored in the channels table.
// Name is the lowercase Twitch login; ChannelID is the Twitch broadcaster id.
// Both are unique. DisplayName may drift upstream and is refreshed on the
// first live event seen for a stream.
type Channel struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	ChannelID   string    `json:"channel_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
