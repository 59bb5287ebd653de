package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"campora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeOrderRepo is an in-memory OrderRepository for service tests. It
// mimics the mongo repo's error shapes, including wrapping
// mongo.ErrNoDocuments for missing ids.
type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	createErr error
	writeErr  error
	creates   int
	replaces  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]models.Order)}
}

func (f *fakeOrderRepo) put(ord models.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[ord.ID] = ord
}

func (f *fakeOrderRepo) get(id string) models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[id]
}

func (f *fakeOrderRepo) Create(ctx context.Context, ord *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if ord.ID == "" {
		ord.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	}
	f.orders[ord.ID] = *ord
	f.creates++
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ord, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, mongo.ErrNoDocuments)
	}
	copied := ord
	return &copied, nil
}

func (f *fakeOrderRepo) GetByGroupID(ctx context.Context, groupID int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ord := range f.orders {
		if ord.OrderGroupID == groupID {
			copied := ord
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("order group %d: %w", groupID, mongo.ErrNoDocuments)
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Order
	for _, ord := range f.orders {
		if ord.CustomerID == customerID {
			result = append(result, ord)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Order, 0, len(f.orders))
	for _, ord := range f.orders {
		result = append(result, ord)
	}
	return result, nil
}

func (f *fakeOrderRepo) ReplaceItems(ctx context.Context, id string, items []models.LineItem, status models.LineItemStatus, reason string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ord, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	ord.Items = items
	ord.Status = status
	if reason != "" {
		ord.CancellationReason = reason
	}
	f.orders[id] = ord
	f.replaces++
	return nil
}

func (f *fakeOrderRepo) UpdateItemStatus(ctx context.Context, id string, index int, expected, next models.LineItemStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ord, ok := f.orders[id]
	if !ok || index >= len(ord.Items) || ord.Items[index].Status != expected {
		return errors.New("conditional update failed")
	}
	ord.Items[index].Status = next
	f.orders[id] = ord
	return nil
}

func (f *fakeOrderRepo) SetRated(ctx context.Context, id string, rated bool) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ord, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	ord.Rated = rated
	f.orders[id] = ord
	return nil
}

func (f *fakeOrderRepo) Watch(ctx context.Context) (<-chan models.Order, error) {
	ch := make(chan models.Order)
	close(ch)
	return ch, nil
}

// fakeCartRepo is an in-memory CartRepository.
type fakeCartRepo struct {
	mu     sync.Mutex
	carts  map[string]models.Cart
	getErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]models.Cart)}
}

func (f *fakeCartRepo) Get(ctx context.Context, customerID string) (*models.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[customerID]
	if !ok {
		return &models.Cart{CustomerID: customerID}, nil
	}
	copied := cart
	return &copied, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, cart models.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[cart.CustomerID] = cart
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, customerID)
	return nil
}

// fakeRatingRepo is an in-memory RatingRepository.
type fakeRatingRepo struct {
	mu        sync.Mutex
	ratings   map[string]models.Rating
	createErr error
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]models.Rating)}
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating models.Rating) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if rating.ID == "" {
		rating.ID = fmt.Sprintf("rating-%d", len(f.ratings)+1)
	}
	f.ratings[rating.BookingID] = rating
	return rating.ID, nil
}

func (f *fakeRatingRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rating, ok := f.ratings[bookingID]
	if !ok {
		return nil, fmt.Errorf("rating for order %s: %w", bookingID, mongo.ErrNoDocuments)
	}
	copied := rating
	return &copied, nil
}
