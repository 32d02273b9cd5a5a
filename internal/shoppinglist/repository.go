package shoppinglist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redispkg "github.com/JonathanI21/Courses-solidaires-2/pkg/redis"
)

// Repository persists the whole list collection. Implementations load and
// save it wholesale; callers never see partial state.
type Repository interface {
	LoadAll(ctx context.Context) ([]List, error)
	SaveAll(ctx context.Context, lists []List) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisRepository keeps every list under a single key as one JSON array,
// mirroring how the original client stored them in a single browser slot.
type RedisRepository struct {
	store kvStore
	key   string
}

// NewRedisRepository builds a repository over the shared redis client.
func NewRedisRepository(client *redispkg.Client) (*RedisRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("shoppinglist: redis client is required")
	}
	return &RedisRepository{store: client, key: client.ShoppingListsKey()}, nil
}

// LoadAll reads the collection. A missing or unreadable key is an empty
// collection, never an error, so a fresh deployment starts clean.
func (r *RedisRepository) LoadAll(ctx context.Context) ([]List, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, redispkg.Nil) {
			return []List{}, nil
		}
		return nil, fmt.Errorf("load shopping lists: %w", err)
	}

	var lists []List
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return []List{}, nil
	}
	if lists == nil {
		lists = []List{}
	}
	return lists, nil
}

// SaveAll overwrites the collection.
func (r *RedisRepository) SaveAll(ctx context.Context, lists []List) error {
	payload, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("encode shopping lists: %w", err)
	}
	if err := r.store.Set(ctx, r.key, payload, 0); err != nil {
		return fmt.Errorf("save shopping lists: %w", err)
	}
	return nil
}
