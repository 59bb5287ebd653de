// File: campora/utils/actor_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campora/models"

	"github.com/go-redis/redis/v8"
)

const ActorSessionPrefix = "actorSession:"

// Actor sessions mirror the external auth provider's view of who the
// actor is. The profile is written once at sign-in and trusted for the
// session's lifetime; mutations never re-validate the role.
const actorSessionTTL = 24 * time.Hour

// SaveActorSession caches the actor profile for an authenticated session.
func SaveActorSession(client *redis.Client, actor models.Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("failed to marshal actor session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, ActorSessionPrefix+actor.ID, data, actorSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save actor session: %w", err)
	}
	return nil
}

// GetActorSession retrieves the cached actor profile for an id.
func GetActorSession(client *redis.Client, actorID string) (*models.Actor, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, ActorSessionPrefix+actorID).Result()
	if err != nil {
		return nil, err
	}
	var actor models.Actor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor session: %w", err)
	}
	return &actor, nil
}

// DeleteActorSession removes a cached actor profile.
func DeleteActorSession(client *redis.Client, actorID string) error {
	ctx := context.Background()
	return client.Del(ctx, ActorSessionPrefix+actorID).Err()
}
