package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/channeld/internal/handler"
	"github.com/deppfellow/channeld/internal/model/channel"
)

func registerChannelRoutes(r *echo.Echo, h *handler.Handlers) {
	ch := h.Channel

	r.POST("/channel", handler.HandleNoContent[channel.CreateChannelPayload](ch.Handler, ch.CreateChannel, http.StatusCreated))

	r.GET("/channel/:channel_id", handler.Handle[channel.GetChannelPayload](ch.Handler, ch.GetChannel, http.StatusOK))
	r.PUT("/channel/:channel_id", handler.HandleNoContent[channel.UpdateChannelPayload](ch.Handler, ch.UpdateChannel, http.StatusOK))
	r.DELETE("/channel/:channel_id", handler.HandleNoContent[channel.DeleteChannelPayload](ch.Handler, ch.DeleteChannel, http.StatusOK))
}
