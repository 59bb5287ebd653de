package routes

import (
	"net/http"
	"time"

	"campora/handlers"
	"campora/middleware"
	"campora/models"
	"campora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes registers the working-cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.AuthMiddleware())
		api.Use(middleware.RequireRoles(models.RoleCustomer))
		api.GET("", hb.GetCartHandler)
		api.PUT("", hb.PutCartHandler)
	}
}

// RegisterOrderRoutes registers checkout, lookup, status mutation and
// rating endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.AuthMiddleware())

		// Any authenticated actor gets a projected read.
		api.GET("", hb.ListOrdersHandler)
		api.GET("/id/:id", hb.GetOrderHandler)
		api.GET("/group/:groupId", hb.GetOrderByGroupIDHandler)

		// Customers create and rate orders; they never touch statuses.
		api.POST("/checkout", middleware.RequireRoles(models.RoleCustomer), hb.CheckoutHandler)
		api.POST("/id/:id/rating", middleware.RequireRoles(models.RoleCustomer), hb.RateOrderHandler)

		// Providers and admins mutate item statuses.
		api.PATCH("/id/:id/status", middleware.RequireRoles(models.RoleProvider, models.RoleAdmin), hb.ChangeOrderStatusHandler)
	}
}

// RegisterStreamRoutes registers the SSE order feed.
func RegisterStreamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stream")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("/orders", hb.StreamOrdersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCartRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterStreamRoutes(r, hb)
}
