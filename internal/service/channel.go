package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/channeld/internal/model/channel"
	"github.com/deppfellow/channeld/internal/server"
)

//go:generate mockgen -source=channel.go -destination=mocks/channel_repository.go -package=mocks

// ChannelRepository is the storage the channel service needs.
// *repository.ChannelRepository implements it.
type ChannelRepository interface {
	CreateChannel(ctx context.Context, payload *channel.CreateChannelPayload) error
	GetChannelByID(ctx context.Context, channelID int64) (*channel.Channel, error)
	UpdateChannel(ctx context.Context, payload *channel.UpdateChannelPayload) error
	DeleteChannel(ctx context.Context, channelID int64) error
}

// ChannelService runs one storage statement per operation. Errors are
// returned as the repository produced them and classified once by the
// global error handler.
type ChannelService struct {
	server *server.Server
	repo   ChannelRepository
}

func NewChannelService(s *server.Server, repo ChannelRepository) *ChannelService {
	return &ChannelService{
		server: s,
		repo:   repo,
	}
}

func (s *ChannelService) CreateChannel(ctx context.Context, payload *channel.CreateChannelPayload) error {
	if err := s.repo.CreateChannel(ctx, payload); err != nil {
		return err
	}

	s.logger(ctx).Info().
		Int64("channel_id", *payload.ChannelID).
		Int64("guild_id", *payload.GuildID).
		Msg("channel created")

	return nil
}

func (s *ChannelService) GetChannel(ctx context.Context, payload *channel.GetChannelPayload) (*channel.Channel, error) {
	return s.repo.GetChannelByID(ctx, payload.ChannelID)
}

func (s *ChannelService) UpdateChannel(ctx context.Context, payload *channel.UpdateChannelPayload) error {
	return s.repo.UpdateChannel(ctx, payload)
}

func (s *ChannelService) DeleteChannel(ctx context.Context, payload *channel.DeleteChannelPayload) error {
	if err := s.repo.DeleteChannel(ctx, payload.ChannelID); err != nil {
		return err
	}

	s.logger(ctx).Info().
		Int64("channel_id", payload.ChannelID).
		Msg("channel deleted")

	return nil
}

// logger prefers the request-scoped logger (request id, route) and falls
// back to the server logger outside a request.
func (s *ChannelService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
