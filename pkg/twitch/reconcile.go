package twitch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const subscriptionStatusEnabled = "enabled"

type subscriptionKey struct {
	userID    string
	eventType string
}

// Sync reconciles upstream EventSub subscriptions against the desired
// channel set. Stale subscriptions (status other than enabled) are deleted
// first; then missing (user, event) pairs are created and extra enabled
// pairs deleted, each partition concurrently. Individual failures are
// logged and never abort the reconcile. Twitch may hold several
// subscription ids for the same (user, event) pair, so presence is keyed
// by the pair, not the id.
func (c *Client) Sync(ctx context.Context, userIDs []string) error {
	subs, err := c.GetSubscriptions(ctx, "")
	if err != nil {
		return err
	}

	desired := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		desired[id] = struct{}{}
	}

	var stale []Subscription
	enabled := make(map[subscriptionKey][]string)
	for _, sub := range subs {
		if sub.Status != subscriptionStatusEnabled {
			stale = append(stale, sub)
			continue
		}
		key := subscriptionKey{sub.Condition.BroadcasterUserID, sub.Type}
		enabled[key] = append(enabled[key], sub.ID)
	}

	c.deleteSubscriptions(ctx, stale, "stale")

	var g errgroup.Group
	for _, userID := range userIDs {
		for _, eventType := range EventTypes {
			if _, ok := enabled[subscriptionKey{userID, eventType}]; ok {
				continue
			}
			g.Go(func() error {
				if err := c.Subscribe(ctx, eventType, userID); err != nil {
					c.logger.Warn("Reconcile: create subscription failed",
						"event", eventType, "user_id", userID, "error", err)
				}
				return nil
			})
		}
	}

	var extra []Subscription
	for key, ids := range enabled {
		if _, ok := desired[key.userID]; ok {
			// Event types we don't manage are left alone for desired
			// channels; other tooling may own them.
			continue
		}
		for _, id := range ids {
			extra = append(extra, Subscription{ID: id, Type: key.eventType, Condition: SubscriptionCondition{BroadcasterUserID: key.userID}})
		}
	}

	g.Go(func() error {
		c.deleteSubscriptions(ctx, extra, "extra")
		return nil
	})

	_ = g.Wait()

	c.logger.Info("Subscription reconcile complete",
		"desired_channels", len(userIDs),
		"stale_deleted", len(stale),
		"extra_deleted", len(extra))
	return nil
}

func (c *Client) deleteSubscriptions(ctx context.Context, subs []Subscription, kind string) {
	var g errgroup.Group
	for _, sub := range subs {
		g.Go(func() error {
			if err := c.Unsubscribe(ctx, sub.ID); err != nil {
				c.logger.Warn("Reconcile: delete subscription failed",
					"kind", kind, "id", sub.ID, "event", sub.Type,
					"user_id", sub.Condition.BroadcasterUserID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
