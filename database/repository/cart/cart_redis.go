package cartRepo

import (
	"campora/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "cart:"

// Carts linger for a day of inactivity before expiring.
const cartTTL = 24 * time.Hour

// Get retrieves a customer's cart. A missing or expired key reads back
// as an empty cart rather than an error.
func (r *redisCartRepo) Get(ctx context.Context, customerID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+customerID).Result()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{CustomerID: customerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart for %s: %w", customerID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for %s: %w", customerID, err)
	}
	return &cart, nil
}

// Save stores the cart and refreshes its TTL.
func (r *redisCartRepo) Save(ctx context.Context, cart models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for %s: %w", cart.CustomerID, err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+cart.CustomerID, data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart for %s: %w", cart.CustomerID, err)
	}
	return nil
}

// Clear removes the cart after a successful checkout.
func (r *redisCartRepo) Clear(ctx context.Context, customerID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+customerID).Err(); err != nil {
		return fmt.Errorf("failed to clear cart for %s: %w", customerID, err)
	}
	return nil
}
