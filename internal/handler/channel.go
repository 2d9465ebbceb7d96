package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/channeld/internal/model/channel"
	"github.com/deppfellow/channeld/internal/server"
	"github.com/deppfellow/channeld/internal/service"
)

// ChannelHandler serves the channel routes. Payloads arrive bound and
// validated through Handle/HandleNoContent.
type ChannelHandler struct {
	Handler
	channelService *service.ChannelService
}

func NewChannelHandler(s *server.Server, channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		Handler:        NewHandler(s),
		channelService: channelService,
	}
}

func (h *ChannelHandler) CreateChannel(c echo.Context, payload *channel.CreateChannelPayload) error {
	return h.channelService.CreateChannel(c.Request().Context(), payload)
}

func (h *ChannelHandler) GetChannel(c echo.Context, payload *channel.GetChannelPayload) (*channel.Channel, error) {
	return h.channelService.GetChannel(c.Request().Context(), payload)
}

func (h *ChannelHandler) UpdateChannel(c echo.Context, payload *channel.UpdateChannelPayload) error {
	return h.channelService.UpdateChannel(c.Request().Context(), payload)
}

func (h *ChannelHandler) DeleteChannel(c echo.Context, payload *channel.DeleteChannelPayload) error {
	return h.channelService.DeleteChannel(c.Request().Context(), payload)
}
