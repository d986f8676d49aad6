// Package twitch provides an authenticated Helix API client and the
// EventSub subscription reconciler.
package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/stitchbot/stitch/pkg/version"
)

const (
	defaultTokenURL = "https://id.twitch.tv/oauth2/token"
	defaultHelixURL = "https://api.twitch.tv/helix"

	// Helix caps the streams endpoint at 100 user_id values per request.
	streamsBatchSize = 100

	maxErrorBody = 256
)

// streamRetrySchedule is the fixed backoff used by GetStream with retry:
// five waits after the initial attempt.
var streamRetrySchedule = []time.Duration{
	15 * time.Second,
	30 * time.Second,
	60 * time.Second,
	120 * time.Second,
	300 * time.Second,
}

// ErrNotFound is returned when Helix answers with an empty data array.
var ErrNotFound = errors.New("not found")

// ClientConfig carries the credentials and webhook identity of a Client.
// TokenURL and HelixURL default to the public Twitch endpoints; tests
// point them at an httptest server.
type ClientConfig struct {
	ClientID      string
	ClientSecret  string
	WebhookURL    string
	WebhookSecret string
	TokenURL      string
	HelixURL      string
}

// Client is an authenticated Helix REST client. The OAuth bearer token is
// acquired at construction via the client-credentials grant and refreshed
// transparently by the oauth2 transport.
type Client struct {
	httpClient    *http.Client
	clientID      string
	webhookURL    string
	webhookSecret string
	helixURL      string

	retrySchedule []time.Duration
	logger        *slog.Logger
}

// NewClient builds a Client and eagerly fetches the first access token so
// bad credentials fail at startup rather than on the first event.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	helixURL := cfg.HelixURL
	if helixURL == "" {
		helixURL = defaultHelixURL
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenSource := creds.TokenSource(ctx)
	if _, err := tokenSource.Token(); err != nil {
		return nil, fmt.Errorf("acquiring Twitch OAuth token: %w", err)
	}

	return &Client{
		httpClient:    oauth2.NewClient(ctx, tokenSource),
		clientID:      cfg.ClientID,
		webhookURL:    cfg.WebhookURL,
		webhookSecret: cfg.WebhookSecret,
		helixURL:      helixURL,
		retrySchedule: streamRetrySchedule,
		logger:        slog.Default(),
	}, nil
}

// doJSON performs one authenticated request and decodes the response into
// out. Non-2xx responses become errors carrying the status and a truncated
// body; transport errors surface verbatim.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any, op string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	reqURL := c.helixURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("User-Agent", version.Full())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: Twitch %s: %s", op, resp.Status, truncate(string(raw), maxErrorBody))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// GetChannel returns the user profile for a broadcaster id.
func (c *Client) GetChannel(ctx context.Context, userID string) (*Channel, error) {
	var resp channelsResponse
	q := url.Values{"id": {userID}}
	if err := c.doJSON(ctx, http.MethodGet, "/users", q, nil, &resp, "fetch channel by user_id"); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	return &resp.Data[0], nil
}

// GetChannelByName returns the user profile for a login name.
func (c *Client) GetChannelByName(ctx context.Context, login string) (*Channel, error) {
	var resp channelsResponse
	q := url.Values{"login": {login}}
	if err := c.doJSON(ctx, http.MethodGet, "/users", q, nil, &resp, "fetch channel by login"); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("login %q: %w", login, ErrNotFound)
	}
	return &resp.Data[0], nil
}

// GetStream returns the current live stream for a broadcaster. With retry,
// the fixed schedule is walked until a non-empty result arrives; an empty
// answer after the final wait (or any answer with retry disabled) is
// ErrNotFound.
func (c *Client) GetStream(ctx context.Context, userID string, retry bool) (*Stream, error) {
	attempt := func() (*Stream, error) {
		var resp streamsResponse
		q := url.Values{"user_id": {userID}}
		if err := c.doJSON(ctx, http.MethodGet, "/streams", q, nil, &resp, "fetch stream by user_id"); err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("stream for user %q: %w", userID, ErrNotFound)
		}
		return &resp.Data[0], nil
	}

	stream, err := attempt()
	if err == nil || !retry {
		return stream, err
	}

	for _, wait := range c.retrySchedule {
		c.logger.Debug("Stream not yet visible, retrying", "user_id", userID, "wait", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		if stream, err = attempt(); err == nil {
			return stream, nil
		}
	}
	return nil, fmt.Errorf("stream for user %q after %d retries: %w", userID, len(c.retrySchedule), err)
}

// GetStreams batch-resolves live streams for the given broadcaster ids,
// chunking requests at the Helix limit and concatenating results.
func (c *Client) GetStreams(ctx context.Context, userIDs []string) ([]Stream, error) {
	var streams []Stream
	for start := 0; start < len(userIDs); start += streamsBatchSize {
		end := min(start+streamsBatchSize, len(userIDs))

		q := url.Values{"user_id": userIDs[start:end]}
		var resp streamsResponse
		if err := c.doJSON(ctx, http.MethodGet, "/streams", q, nil, &resp, "fetch streams by user_ids"); err != nil {
			return nil, err
		}
		streams = append(streams, resp.Data...)
	}
	return streams, nil
}

// GetSubscriptions lists EventSub subscriptions, following pagination
// cursors until exhausted. userID may be empty for all subscriptions.
func (c *Client) GetSubscriptions(ctx context.Context, userID string) ([]Subscription, error) {
	var subs []Subscription
	cursor := ""
	for {
		q := url.Values{}
		if userID != "" {
			q.Set("user_id", userID)
		}
		if cursor != "" {
			q.Set("after", cursor)
		}

		var resp subscriptionsResponse
		if err := c.doJSON(ctx, http.MethodGet, "/eventsub/subscriptions", q, nil, &resp, "fetch subscriptions"); err != nil {
			return nil, err
		}
		subs = append(subs, resp.Data...)

		if resp.Pagination.Cursor == "" {
			return subs, nil
		}
		cursor = resp.Pagination.Cursor
	}
}

// Subscribe creates one webhook subscription for (eventType, userID).
func (c *Client) Subscribe(ctx context.Context, eventType, userID string) error {
	payload := map[string]any{
		"type":    eventType,
		"version": "1",
		"condition": map[string]string{
			"broadcaster_user_id": userID,
		},
		"transport": map[string]string{
			"method":   "webhook",
			"callback": fmt.Sprintf("https://%s/webhook/twitch", c.webhookURL),
			"secret":   c.webhookSecret,
		},
	}
	if err := c.doJSON(ctx, http.MethodPost, "/eventsub/subscriptions", nil, payload, nil, "create subscription"); err != nil {
		return err
	}
	c.logger.Info("Subscription created", "event", eventType, "user_id", userID)
	return nil
}

// SubscribeAll creates the online/update/offline triple for a broadcaster.
func (c *Client) SubscribeAll(ctx context.Context, userID string) error {
	for _, eventType := range EventTypes {
		if err := c.Subscribe(ctx, eventType, userID); err != nil {
			return err
		}
	}
	return nil
}

// Unsubscribe deletes one subscription by id.
func (c *Client) Unsubscribe(ctx context.Context, subscriptionID string) error {
	q := url.Values{"id": {subscriptionID}}
	return c.doJSON(ctx, http.MethodDelete, "/eventsub/subscriptions", q, nil, nil, "delete subscription")
}

// UnsubscribeUser deletes every subscription registered for a broadcaster.
func (c *Client) UnsubscribeUser(ctx context.Context, userID string) error {
	subs, err := c.GetSubscriptions(ctx, userID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := c.Unsubscribe(ctx, sub.ID); err != nil {
			return err
		}
	}
	if len(subs) > 0 {
		c.logger.Info("Unsubscribed user", "user_id", userID, "count", len(subs))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
