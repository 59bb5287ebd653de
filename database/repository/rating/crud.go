package ratingRepo

import (
	"campora/models"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new rating record and returns its ID.
func (r *mongoRatingRepo) Create(ctx context.Context, rating models.Rating) (string, error) {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	rating.CreatedAt = time.Now()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, rating); err != nil {
		return "", fmt.Errorf("error creating rating: %w", err)
	}
	return rating.ID, nil
}

// GetByBookingID returns the rating attached to an order, if any.
func (r *mongoRatingRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Rating, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rating models.Rating
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"booking_id": bookingID}).Decode(&rating); err != nil {
		return nil, fmt.Errorf("rating for order %s: %w", bookingID, err)
	}
	return &rating, nil
}
