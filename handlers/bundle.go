package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers that the routes package wires
// onto the router.
type HandlerBundle struct {
	// Cart endpoints.
	GetCartHandler gin.HandlerFunc
	PutCartHandler gin.HandlerFunc

	// Order endpoints.
	CheckoutHandler          gin.HandlerFunc
	ChangeOrderStatusHandler gin.HandlerFunc
	GetOrderHandler          gin.HandlerFunc
	GetOrderByGroupIDHandler gin.HandlerFunc
	ListOrdersHandler        gin.HandlerFunc
	RateOrderHandler         gin.HandlerFunc

	// Realtime endpoints.
	StreamOrdersHandler gin.HandlerFunc
}
