package orderRepo

import (
	"campora/models"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new order document.
func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, order); err != nil {
		return fmt.Errorf("error creating order: %w", err)
	}
	return nil
}

// GetByID returns an order by its store identifier.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, fmt.Errorf("order %s: %w", id, err)
	}
	return &order, nil
}

// GetByGroupID returns an order by its human-facing 8-digit id.
func (r *mongoOrderRepo) GetByGroupID(ctx context.Context, groupID int) (*models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"order_group_id": groupID}).Decode(&order); err != nil {
		return nil, fmt.Errorf("order group %d: %w", groupID, err)
	}
	return &order, nil
}

// ReplaceItems writes the full items array and the derived status back
// in one $set. The reason field is only written when supplied.
func (r *mongoOrderRepo) ReplaceItems(ctx context.Context, id string, items []models.LineItem, status models.LineItemStatus, reason string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"items":  items,
		"status": status,
	}
	if reason != "" {
		set["cancellation_reason"] = reason
	}

	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating order %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

// UpdateItemStatus flips one item's status only if it still holds the
// expected value, using a positional filtered update.
func (r *mongoOrderRepo) UpdateItemStatus(ctx context.Context, id string, index int, expected, next models.LineItemStatus) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := fmt.Sprintf("items.%d.status", index)
	filter := bson.M{"id": id, field: expected}
	res, err := r.coll.UpdateOne(ctxWithTimeout, filter, bson.M{"$set": bson.M{field: next}})
	if err != nil {
		return fmt.Errorf("error updating item %d of order %s: %w", index, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("item %d of order %s no longer holds status %s", index, id, expected)
	}
	return nil
}

// SetRated flips the rated flag on an order.
func (r *mongoOrderRepo) SetRated(ctx context.Context, id string, rated bool) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, bson.M{"$set": bson.M{"rated": rated}})
	if err != nil {
		return fmt.Errorf("error setting rated on order %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}
