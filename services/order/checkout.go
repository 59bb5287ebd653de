package order

import (
	"context"
	"math/rand"

	"campora/models"
	"campora/utils"

	"go.uber.org/zap"
)

// NewOrderGroupID draws a human-facing 8-digit order identifier,
// uniform over [10000000, 99999999]. There is no uniqueness probe
// against existing orders; collisions are astronomically unlikely at
// current volumes and accepted as-is.
func NewOrderGroupID() int {
	return rand.Intn(90000000) + 10000000
}

// Checkout turns the actor's cart into a new order. Every item starts
// pending, the total is snapshotted from the cart and the cart is only
// cleared once the order write succeeds.
func (svc *DefaultOrderService) Checkout(ctx context.Context, actor models.Actor, req models.CheckoutRequest) (*models.Order, error) {
	if req.BookingDate == nil || req.BookingDate.IsZero() {
		return nil, NewValidationError("bookingDate", "booking date is required")
	}
	if req.Location == nil {
		return nil, NewValidationError("location", "location is required")
	}

	cart, err := svc.Carts.Get(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Entries) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.LineItem, len(cart.Entries))
	totalPrice := 0.0
	totalItems := 0
	for i, entry := range cart.Entries {
		items[i] = models.LineItem{
			ServiceID:    entry.ServiceID,
			ServiceName:  entry.ServiceName,
			ImageURL:     entry.ImageURL,
			ServicePrice: entry.ServicePrice,
			Quantity:     entry.Quantity,
			ProviderID:   entry.ProviderID,
			Status:       models.ItemPending,
		}
		totalPrice += entry.ServicePrice * float64(entry.Quantity)
		totalItems += entry.Quantity
	}

	ord := &models.Order{
		OrderGroupID: NewOrderGroupID(),
		CustomerID:   actor.ID,
		CustomerName: req.CustomerName,
		Items:        items,
		BookingDate:  *req.BookingDate,
		Location:     *req.Location,
		Status:       models.ItemPending,
		TotalPrice:   totalPrice,
		TotalItems:   totalItems,
		Rated:        false,
	}

	// Single-document insert: a failed write leaves no partial state and
	// keeps the cart intact for a retry.
	if err := svc.Repo.Create(ctx, ord); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := svc.Carts.Clear(ctx, actor.ID); err != nil {
		logger.Warn("order created but cart clear failed",
			zap.String("orderId", ord.ID),
			zap.String("customerId", actor.ID),
			zap.Error(err),
		)
	}

	logger.Info("order created",
		zap.String("orderId", ord.ID),
		zap.Int("orderGroupId", ord.OrderGroupID),
		zap.String("customerId", actor.ID),
		zap.Int("items", len(items)),
		zap.Float64("totalPrice", totalPrice),
	)
	return ord, nil
}
