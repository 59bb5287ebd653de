package handlers

import (
	"net/http"

	cartRepo "campora/database/repository/cart"
	"campora/middleware"
	"campora/models"
	"campora/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the redis-backed working cart.
type CartHandler struct {
	Carts cartRepo.CartRepository
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts cartRepo.CartRepository) *CartHandler {
	return &CartHandler{Carts: carts}
}

// GetCart returns the customer's current cart. Missing carts read back
// empty.
func (h *CartHandler) GetCart(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	cart, err := h.Carts.Get(c.Request.Context(), actor.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// PutCart replaces the customer's cart with the submitted entries.
func (h *CartHandler) PutCart(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var input struct {
		Entries []models.CartEntry `json:"entries"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cart := models.Cart{CustomerID: actor.ID, Entries: input.Entries}
	if err := h.Carts.Save(c.Request.Context(), cart); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save cart", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}
