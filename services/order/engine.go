package order

import (
	"context"
	"errors"
	"fmt"

	"campora/models"
	"campora/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ApplyStatusChange mutates the status of every line item the actor is
// authorized to touch, re-derives the order status and writes the full
// item list back in a single update. Items the actor may not touch are
// left untouched without error.
//
// The write serializes the whole items array as it was read here, so
// two concurrent calls against the same order race and the last write
// wins. UpdateItemStatus on the repository is the conditional primitive
// a fix would switch to; production behaviour keeps the racy path.
func (svc *DefaultOrderService) ApplyStatusChange(ctx context.Context, orderID string, actor models.Actor, target models.LineItemStatus, reason string) (*models.Order, error) {
	if !target.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", target))
	}
	if !CanChangeStatus(actor) {
		return nil, ErrForbidden
	}

	ord, err := svc.Repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	touched := 0
	items := make([]models.LineItem, len(ord.Items))
	for i, item := range ord.Items {
		if CanMutateItem(actor, item) {
			item.Status = target
			touched++
		}
		items[i] = item
	}

	derived := DeriveOrderStatus(items, target)

	// The reason is persisted whenever supplied, even if the derived
	// status is not cancelled. Callers only pass one on cancellation
	// flows but the unconditional write is contractual.
	if err := svc.Repo.ReplaceItems(ctx, orderID, items, derived, reason); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("order status change applied",
		zap.String("orderId", orderID),
		zap.String("actorId", actor.ID),
		zap.String("role", string(actor.Role)),
		zap.String("target", string(target)),
		zap.String("derived", string(derived)),
		zap.Int("itemsTouched", touched),
	)

	ord.Items = items
	ord.Status = derived
	if reason != "" {
		ord.CancellationReason = reason
	}
	return ord, nil
}
