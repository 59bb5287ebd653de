package order

import (
	"context"

	cartRepo "campora/database/repository/cart"
	orderRepo "campora/database/repository/order"
	ratingRepo "campora/database/repository/rating"
	"campora/models"
)

// OrderService manages the full order lifecycle: checkout, per-provider
// status mutation with order-level aggregation, viewer projections and
// post-completion ratings.
type OrderService interface {
	// Checkout turns the actor's cart into a new pending order.
	Checkout(ctx context.Context, actor models.Actor, req models.CheckoutRequest) (*models.Order, error)
	// ApplyStatusChange sets the target status on every line item the
	// actor is authorized to touch and re-derives the order status.
	ApplyStatusChange(ctx context.Context, orderID string, actor models.Actor, target models.LineItemStatus, reason string) (*models.Order, error)
	// GetOrder returns one order projected for the viewer.
	GetOrder(ctx context.Context, actor models.Actor, orderID string) (*models.Order, error)
	// GetOrderByGroupID looks an order up by its 8-digit id.
	GetOrderByGroupID(ctx context.Context, actor models.Actor, groupID int) (*models.Order, error)
	// ListForViewer returns the viewer's order feed, newest first,
	// projected per role.
	ListForViewer(ctx context.Context, actor models.Actor) ([]models.Order, error)
	// RateOrder records the single post-completion rating of an order.
	RateOrder(ctx context.Context, actor models.Actor, orderID string, stars int, comment string) (*models.Rating, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Repo    orderRepo.OrderRepository
	Ratings ratingRepo.RatingRepository
	Carts   cartRepo.CartRepository
}
