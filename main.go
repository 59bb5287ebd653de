// File: campora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campora/config"
	"campora/database"
	cartRepo "campora/database/repository/cart"
	orderRepo "campora/database/repository/order"
	ratingRepo "campora/database/repository/rating"
	"campora/handlers"
	"campora/middleware"
	"campora/routes"
	"campora/services/order"
	"campora/services/realtime"
	"campora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ordRepo := orderRepo.NewMongoOrderRepo()
	ratRepo := ratingRepo.NewMongoRatingRepo()
	carts := cartRepo.NewRedisCartRepo(utils.GetCacheClient())

	// services.
	orderService := &order.DefaultOrderService{
		Repo:    ordRepo,
		Ratings: ratRepo,
		Carts:   carts,
	}

	// realtime fan-out over the order change stream.
	streamCtx, stopStream := context.WithCancel(context.Background())
	defer stopStream()
	hub := realtime.NewHub()
	orderStream := &realtime.OrderStream{Repo: ordRepo, Hub: hub}
	orderStream.Start(streamCtx)

	orderHandler := handlers.NewOrderHandler(orderService, logger)
	cartHandler := handlers.NewCartHandler(carts)
	streamHandler := handlers.NewStreamHandler(orderService, hub)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetCartHandler: cartHandler.GetCart,
		PutCartHandler: cartHandler.PutCart,

		CheckoutHandler:          orderHandler.Checkout,
		ChangeOrderStatusHandler: orderHandler.ChangeOrderStatus,
		GetOrderHandler:          orderHandler.GetOrder,
		GetOrderByGroupIDHandler: orderHandler.GetOrderByGroupID,
		ListOrdersHandler:        orderHandler.ListOrders,
		RateOrderHandler:         orderHandler.RateOrder,

		StreamOrdersHandler: streamHandler.StreamOrders,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopStream()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
