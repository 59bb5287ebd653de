package orderRepo

import (
	"campora/database"
	"campora/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository defines the data access methods used by the order
// service and the realtime layer.
type OrderRepository interface {
	// Create persists a new order document in a single write.
	Create(ctx context.Context, order *models.Order) error
	// GetByID retrieves an order by its store identifier.
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// GetByGroupID retrieves an order by its 8-digit human-facing id.
	GetByGroupID(ctx context.Context, groupID int) (*models.Order, error)
	// ListByCustomer returns a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	// ListAll returns every order, newest first. The store cannot filter
	// inside the items array, so provider views subscribe broadly and
	// filter in memory.
	ListAll(ctx context.Context) ([]models.Order, error)
	// ReplaceItems writes the full items array plus the recomputed order
	// status (and cancellation reason, when non-empty) in one update.
	ReplaceItems(ctx context.Context, id string, items []models.LineItem, status models.LineItemStatus, reason string) error
	// UpdateItemStatus conditionally flips one item's status only if it
	// still holds the expected value. Available for callers that want to
	// avoid the whole-array write; the status engine intentionally does
	// not use it yet.
	UpdateItemStatus(ctx context.Context, id string, index int, expected, next models.LineItemStatus) error
	// SetRated flips the rated flag on an order.
	SetRated(ctx context.Context, id string, rated bool) error
	// Watch emits the full document of every order change until ctx is
	// cancelled.
	Watch(ctx context.Context) (<-chan models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRepository instance using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("campora")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
