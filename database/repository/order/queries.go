package orderRepo

import (
	"campora/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByCustomer fetches a customer's orders ordered by creation time,
// newest first.
func (r *mongoOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctxWithTimeout, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing orders for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var orders []models.Order
	if err := cursor.All(ctxWithTimeout, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

// ListAll fetches every order, newest first. Provider scoping happens in
// memory because the store cannot filter inside the items array.
func (r *mongoOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var orders []models.Order
	if err := cursor.All(ctxWithTimeout, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}
	return orders, nil
}
