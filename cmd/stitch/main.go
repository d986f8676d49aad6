// Stitch server — watches Twitch channels via EventSub, posts live-stream
// cards to Discord, and exposes a gRPC control plane for tracking.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/stitchbot/stitch/pkg/config"
	"github.com/stitchbot/stitch/pkg/database"
	"github.com/stitchbot/stitch/pkg/discord"
	"github.com/stitchbot/stitch/pkg/logger"
	"github.com/stitchbot/stitch/pkg/service"
	"github.com/stitchbot/stitch/pkg/twitch"
	"github.com/stitchbot/stitch/pkg/version"
	"github.com/stitchbot/stitch/pkg/webhook"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}
	logger.Setup()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting stitch",
		"version", version.Full(),
		"grpc_port", cfg.Port,
		"webhook_port", cfg.WebhookPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(ctx context.Context, cfg config.Config) error {
	// 1. Database pool + migrations
	db, err := database.NewClient(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()
	store := database.NewStore(db)
	slog.Info("Connected to PostgreSQL")

	// 2. Helix client (acquires an app access token)
	helix, err := twitch.NewClient(ctx, twitch.ClientConfig{
		ClientID:      cfg.TwitchClientID,
		ClientSecret:  cfg.TwitchClientSecret,
		WebhookURL:    cfg.WebhookURL,
		WebhookSecret: cfg.WebhookSecret,
	})
	if err != nil {
		return err
	}
	slog.Info("Authenticated with Twitch")

	// 3. Discord publisher
	publisher, err := discord.NewChannelPublisher(cfg.DiscordToken, cfg.DiscordChannel)
	if err != nil {
		return err
	}

	// 4. Webhook engine: rebuild runtime state and reconcile subscriptions
	channels := webhook.NewChannelTable()
	engine := webhook.NewEngine(cfg.WebhookSecret, helix, store, publisher, channels)
	defer engine.Close()
	if err := engine.Bootstrap(ctx); err != nil {
		return err
	}

	// 5. Control plane
	channelService := service.NewChannelService(store, helix, engine, channels)
	grpcServer := service.NewGRPCServer(channelService)

	// 6. Run both listeners until a shutdown signal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Serve(gctx, cfg.Port)
	})
	g.Go(func() error {
		return webhook.NewServer(engine, db).Serve(gctx, cfg.WebhookPort)
	})

	err = g.Wait()
	slog.Info("Listeners stopped, draining outstanding tasks")
	return err
}
