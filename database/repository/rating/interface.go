package ratingRepo

import (
	"campora/database"
	"campora/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// RatingRepository stores post-completion order ratings. A rating is a
// sibling document to the order it references; there is no cross
// document atomicity with the order's rated flag.
type RatingRepository interface {
	Create(ctx context.Context, rating models.Rating) (string, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Rating, error)
}

type mongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo returns a new RatingRepository instance using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	db := database.MongoClient.Database("campora")
	return &mongoRatingRepo{
		coll: db.Collection("ratings"),
	}
}
