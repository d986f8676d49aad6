package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/twitch"
)

// EventSub message types delivered in the Twitch-Eventsub-Message-Type
// header.
const (
	messageTypeVerification = "webhook_callback_verification"
	messageTypeNotification = "notification"
)

// Server is the public webhook listener. Everything rides on one route;
// the engine does the real work.
type Server struct {
	engine *Engine
	db     *database.Client
	logger *slog.Logger
}

// NewServer creates the webhook HTTP surface for an engine. db may be nil
// in tests; /healthz then reports liveness only.
func NewServer(engine *Engine, db *database.Client) *Server {
	return &Server{engine: engine, db: db, logger: slog.Default()}
}

// Routes builds the gin router.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/webhook/twitch", s.handleWebhook)
	router.GET("/healthz", s.handleHealth)
	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	health["live_streams"] = s.engine.streams.len()
	c.JSON(http.StatusOK, health)
}

// Serve runs the listener until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Webhook server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type notificationEnvelope struct {
	Challenge    string `json:"challenge"`
	Subscription struct {
		Type      string `json:"type"`
		Condition struct {
			BroadcasterUserID string `json:"broadcaster_user_id"`
		} `json:"condition"`
	} `json:"subscription"`
	Event json.RawMessage `json:"event"`
}

type onlineEvent struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

type updateEvent struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	Title             string `json:"title"`
	CategoryName      string `json:"category_name"`
}

type offlineEvent struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

// handleWebhook verifies and dispatches one EventSub delivery. Failed
// verification answers with an empty body so probes learn nothing; a
// replayed message id is acknowledged without side effects.
func (s *Server) handleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	timestamp, err := s.engine.verify(c.Request.Header, body)
	if err != nil {
		if errors.Is(err, errDuplicateMessage) {
			s.logger.Debug("Duplicate message id, ignoring",
				"message_id", c.GetHeader(headerMessageID))
			c.Status(http.StatusNoContent)
			return
		}
		s.fail(c, err)
		return
	}

	messageType := c.GetHeader(headerType)
	switch messageType {
	case messageTypeVerification:
		var envelope notificationEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Challenge == "" {
			s.fail(c, errBadRequest("malformed verification body"))
			return
		}
		s.logger.Info("Webhook callback verified",
			"subscription_type", envelope.Subscription.Type,
			"broadcaster_user_id", envelope.Subscription.Condition.BroadcasterUserID)
		c.String(http.StatusOK, envelope.Challenge)

	case messageTypeNotification:
		if err := s.dispatch(c.Request.Context(), body, timestamp); err != nil {
			s.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)

	default:
		// Includes "revocation": reconcile owns subscription repair, so
		// anything beyond verification and notification is rejected.
		s.fail(c, errBadRequest("unsupported message type %q", messageType))
	}
}

// dispatch routes a notification to the engine. Online work is spawned so
// the delivery is acknowledged before the Helix lookups run; update and
// offline apply inline.
func (s *Server) dispatch(ctx context.Context, body []byte, timestamp time.Time) error {
	var envelope notificationEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errBadRequest("malformed notification body: %v", err)
	}

	switch envelope.Subscription.Type {
	case twitch.EventStreamOnline:
		var event onlineEvent
		if err := json.Unmarshal(envelope.Event, &event); err != nil {
			return errBadRequest("malformed stream.online event: %v", err)
		}
		s.engine.spawnOnline(event.BroadcasterUserID, timestamp)
		return nil

	case twitch.EventChannelUpdate:
		var event updateEvent
		if err := json.Unmarshal(envelope.Event, &event); err != nil {
			return errBadRequest("malformed channel.update event: %v", err)
		}
		return s.engine.HandleUpdate(ctx, event.BroadcasterUserID, event.Title, event.CategoryName, timestamp)

	case twitch.EventStreamOffline:
		var event offlineEvent
		if err := json.Unmarshal(envelope.Event, &event); err != nil {
			return errBadRequest("malformed stream.offline event: %v", err)
		}
		return s.engine.HandleOffline(ctx, event.BroadcasterUserID, timestamp)

	default:
		return errBadRequest("unknown subscription type %q", envelope.Subscription.Type)
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Webhook request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("Webhook request rejected", "status", status, "error", err)
	}
	c.Status(status)
}
