package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeedServer streams dispatch updates to a connected operator.
type FeedServer interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

type FeedHandler struct {
	feed   FeedServer
	logger *slog.Logger
}

func NewFeedHandler(feed FeedServer, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, logger: logger}
}

// @Summary Live notification feed
// @Description WebSocket stream of email dispatch state changes.
// @Tags admin
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /api/admin/notifications/ws [get]
func (h *FeedHandler) Stream(c *gin.Context) {
	// The upgrader has already answered the client when Serve fails.
	if err := h.feed.Serve(c.Writer, c.Request); err != nil {
		h.logger.Debug("feed upgrade rejected", "error", err, "remote_addr", c.ClientIP())
	}
	c.Abort()
}
