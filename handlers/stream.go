package handlers

import (
	"net/http"

	"campora/middleware"
	"campora/services/order"
	"campora/services/realtime"
	"campora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamHandler serves the live order feed over SSE.
type StreamHandler struct {
	Service order.OrderService
	Hub     *realtime.Hub
}

// NewStreamHandler creates a StreamHandler.
func NewStreamHandler(svc order.OrderService, hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{Service: svc, Hub: hub}
}

// StreamOrders pushes the viewer's projected order feed as SSE events.
// The initial snapshot goes out immediately; afterwards every order
// write wakes the subscriber, which reloads the full result set and
// re-runs its projection from scratch. The same order can therefore
// present different status and totalPrice values to a customer, each
// provider and an admin watching it concurrently.
func (h *StreamHandler) StreamOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	subID, wake := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(subID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	logger := utils.GetLogger()
	send := func() {
		orders, err := h.Service.ListForViewer(c.Request.Context(), actor)
		if err != nil {
			logger.Warn("failed to reload order feed for subscriber",
				zap.String("actorId", actor.ID),
				zap.Error(err),
			)
			c.SSEvent("error", gin.H{"message": "failed to load orders"})
			c.Writer.Flush()
			return
		}
		c.SSEvent("orders", gin.H{"orders": orders})
		c.Writer.Flush()
	}

	send()
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-wake:
			send()
		}
	}
}
