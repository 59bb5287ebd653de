package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"campora/middleware"
	"campora/models"
	"campora/services/order"
	"campora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the order lifecycle endpoints.
type OrderHandler struct {
	Service order.OrderService
	Logger  *zap.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc order.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Service: svc, Logger: logger}
}

// ChangeOrderStatus applies a status change to the items the actor owns
// and returns the updated order. A provider hitting only foreign items
// still gets a 200: the operation succeeds and simply touches nothing.
func (h *OrderHandler) ChangeOrderStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var input struct {
		Status models.LineItemStatus `json:"status"`
		Reason string                `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.ApplyStatusChange(c.Request.Context(), c.Param("id"), actor, input.Status, input.Reason)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": updated})
}

// GetOrder returns one order projected for the viewer.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	ord, err := h.Service.GetOrder(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// GetOrderByGroupID looks an order up by its 8-digit customer-facing id.
func (h *OrderHandler) GetOrderByGroupID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	groupID, err := strconv.Atoi(c.Param("groupId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid order group id", err.Error())
		return
	}

	ord, err := h.Service.GetOrderByGroupID(c.Request.Context(), actor, groupID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// ListOrders returns the viewer's order feed, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	orders, err := h.Service.ListForViewer(c.Request.Context(), actor)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// respondOrderError maps service errors onto HTTP responses. Store
// failures surface as a generic retryable message; the previous
// document state is intact because order writes are single-document.
func respondOrderError(c *gin.Context, err error) {
	var validationErr *order.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		utils.JSONError(c, http.StatusNotFound, "order not found", "")
	case errors.Is(err, order.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "operation not allowed", "")
	case errors.Is(err, order.ErrEmptyCart):
		utils.JSONError(c, http.StatusBadRequest, "cart is empty", "")
	case errors.Is(err, order.ErrAlreadyRated):
		utils.JSONError(c, http.StatusConflict, "order already rated", "")
	case errors.Is(err, order.ErrOrderNotCompleted):
		utils.JSONError(c, http.StatusConflict, "order is not completed yet", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", "Please try again later.")
	}
}
