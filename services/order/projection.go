package order

import (
	"context"
	"errors"

	"campora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectForViewer reduces one order snapshot to what the viewer is
// allowed to see. It is pure: the input order is never modified and the
// returned order shares no item slice with it.
//
// Customers and admins see the stored document unchanged. A provider
// sees only their own items, a subtotal recomputed over those items,
// and a viewer-local status taken from their first remaining item in
// array order. The first-item status is observed production behaviour,
// not the aggregation rule; product has it flagged but it must not be
// silently changed. The second return is false when the order contains
// none of the viewer's items and should be dropped from the result set.
func ProjectForViewer(ord models.Order, actor models.Actor) (models.Order, bool) {
	if actor.Role != models.RoleProvider {
		return ord, true
	}

	var own []models.LineItem
	subtotal := 0.0
	for _, item := range ord.Items {
		if item.ProviderID == actor.ID {
			own = append(own, item)
			subtotal += item.ServicePrice * float64(item.Quantity)
		}
	}
	if len(own) == 0 {
		return models.Order{}, false
	}

	projected := ord
	projected.Items = own
	projected.TotalPrice = subtotal
	projected.Status = own[0].Status
	return projected, true
}

// ProjectOrders runs ProjectForViewer over a full snapshot, dropping
// orders invisible to the viewer and preserving input order.
func ProjectOrders(orders []models.Order, actor models.Actor) []models.Order {
	result := make([]models.Order, 0, len(orders))
	for _, ord := range orders {
		if projected, ok := ProjectForViewer(ord, actor); ok {
			result = append(result, projected)
		}
	}
	return result
}

// ListForViewer returns the viewer's order feed, newest first. The
// customer feed is filtered store-side; provider and admin feeds load
// every order and project in memory, since the store cannot filter on
// nested item fields.
func (svc *DefaultOrderService) ListForViewer(ctx context.Context, actor models.Actor) ([]models.Order, error) {
	if actor.Role == models.RoleCustomer {
		return svc.Repo.ListByCustomer(ctx, actor.ID)
	}
	orders, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectOrders(orders, actor), nil
}

// GetOrder returns one order projected for the viewer. Customers can
// only read their own orders; a provider with no items on the order
// gets a not-found rather than a leak of foreign line items.
func (svc *DefaultOrderService) GetOrder(ctx context.Context, actor models.Actor, orderID string) (*models.Order, error) {
	ord, err := svc.Repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return projectSingle(ord, actor)
}

// GetOrderByGroupID looks an order up by its human-facing 8-digit id.
func (svc *DefaultOrderService) GetOrderByGroupID(ctx context.Context, actor models.Actor, groupID int) (*models.Order, error) {
	ord, err := svc.Repo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return projectSingle(ord, actor)
}

func projectSingle(ord *models.Order, actor models.Actor) (*models.Order, error) {
	if actor.Role == models.RoleCustomer && ord.CustomerID != actor.ID {
		return nil, ErrOrderNotFound
	}
	projected, ok := ProjectForViewer(*ord, actor)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &projected, nil
}
