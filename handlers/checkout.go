package handlers

import (
	"net/http"

	"campora/middleware"
	"campora/models"
	"campora/utils"

	"github.com/gin-gonic/gin"
)

// Checkout turns the customer's cart into a new order. On failure the
// cart stays intact and the client may simply retry.
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ord, err := h.Service.Checkout(c.Request.Context(), actor, req)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": ord})
}
