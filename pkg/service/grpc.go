package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stitchbot/stitch/proto/stitchpb"
)

// GRPCServer adapts ChannelService to the Stitch gRPC service.
type GRPCServer struct {
	stitchpb.UnimplementedStitchServer

	channels *ChannelService
	logger   *slog.Logger
}

// NewGRPCServer creates the gRPC adapter.
func NewGRPCServer(channels *ChannelService) *GRPCServer {
	return &GRPCServer{channels: channels, logger: slog.Default()}
}

func (s *GRPCServer) ListChannels(ctx context.Context, _ *stitchpb.ListChannelsRequest) (*stitchpb.ListChannelsResponse, error) {
	channels, err := s.channels.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &stitchpb.ListChannelsResponse{
		Channels: make([]*stitchpb.Channel, 0, len(channels)),
	}
	for _, c := range channels {
		resp.Channels = append(resp.Channels, &stitchpb.Channel{Id: int32(c.ID), Name: c.Name})
	}
	return resp, nil
}

func (s *GRPCServer) TrackChannel(ctx context.Context, req *stitchpb.TrackChannelRequest) (*stitchpb.TrackChannelResponse, error) {
	if err := s.channels.Track(ctx, req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	return &stitchpb.TrackChannelResponse{}, nil
}

func (s *GRPCServer) UntrackChannel(ctx context.Context, req *stitchpb.UntrackChannelRequest) (*stitchpb.UntrackChannelResponse, error) {
	if err := s.channels.Untrack(ctx, req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	return &stitchpb.UntrackChannelResponse{}, nil
}

// toStatus maps control-plane sentinels onto gRPC status codes; the
// underlying message rides along as the status detail.
func toStatus(err error) error {
	switch {
	case errors.Is(err, ErrInvalidName):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrAlreadyTracked):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrNotTracked), errors.Is(err, ErrChannelUnknown):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Serve runs the gRPC listener until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, port int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", port, err)
	}

	server := grpc.NewServer()
	stitchpb.RegisterStitchServer(server, s)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Control plane listening", "addr", listener.Addr().String())
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	server.GracefulStop()
	return nil
}
