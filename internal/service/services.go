package service

import (
	"github.com/deppfellow/channeld/internal/repository"
	"github.com/deppfellow/channeld/internal/server"
)

type Services struct {
	Channel *ChannelService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Channel: NewChannelService(s, repos.Channel),
	}, nil
}
