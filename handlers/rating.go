package handlers

import (
	"net/http"

	"campora/middleware"
	"campora/utils"

	"github.com/gin-gonic/gin"
)

// RateOrder records the single post-completion rating of an order.
func (h *OrderHandler) RateOrder(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var input struct {
		Stars   int    `json:"stars"`
		Comment string `json:"comment,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rating, err := h.Service.RateOrder(c.Request.Context(), actor, c.Param("id"), input.Stars, input.Comment)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}
