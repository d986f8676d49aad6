package twitch

import "time"

// EventSub event types the engine subscribes to for every tracked channel.
const (
	EventStreamOnline  = "stream.online"
	EventStreamOffline = "stream.offline"
	EventChannelUpdate = "channel.update"
)

// EventTypes lists the desired subscription set per channel.
var EventTypes = []string{EventStreamOnline, EventChannelUpdate, EventStreamOffline}

// Stream is a live stream object from the Helix streams endpoint.
type Stream struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserLogin string    `json:"user_login"`
	UserName  string    `json:"user_name"`
	GameID    string    `json:"game_id"`
	GameName  string    `json:"game_name"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
}

// Channel is a user profile from the Helix users endpoint.
type Channel struct {
	ID              string `json:"id"`
	Login           string `json:"login"`
	DisplayName     string `json:"display_name"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
}

// SubscriptionCondition identifies the broadcaster a subscription covers.
type SubscriptionCondition struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

// Subscription is one EventSub registration on the Twitch side.
type Subscription struct {
	ID        string                `json:"id"`
	Status    string                `json:"status"`
	Type      string                `json:"type"`
	Condition SubscriptionCondition `json:"condition"`
}

type streamsResponse struct {
	Data []Stream `json:"data"`
}

type channelsResponse struct {
	Data []Channel `json:"data"`
}

type subscriptionsResponse struct {
	Data       []Subscription `json:"data"`
	Pagination struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
}
