package cartRepo

import (
	"campora/models"
	"context"

	"github.com/go-redis/redis/v8"
)

// CartRepository holds the working cart for each customer. Carts live in
// redis with a TTL; an expired or missing cart reads back as empty.
type CartRepository interface {
	Get(ctx context.Context, customerID string) (*models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context, customerID string) error
}

type redisCartRepo struct {
	client *redis.Client
}

// NewRedisCartRepo returns a CartRepository backed by the given redis client.
func NewRedisCartRepo(client *redis.Client) CartRepository {
	return &redisCartRepo{client: client}
}
