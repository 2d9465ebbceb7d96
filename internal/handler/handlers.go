package handler

import (
	"github.com/deppfellow/channeld/internal/server"
	"github.com/deppfellow/channeld/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Channel *ChannelHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Channel: NewChannelHandler(s, services.Channel),
	}
}
