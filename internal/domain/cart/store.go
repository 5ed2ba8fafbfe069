// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/catalog"
	"github.com/redis/go-redis/v9"
)

// Store keeps one serialized cart per session in Redis. The whole cart is
// rewritten as a single JSON unit on every mutation and rehydrated on read;
// a missing or corrupt record yields an empty cart, never an error.
type Store struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewStore creates a new cart store
func NewStore(redisClient *redis.Client, cfg *config.Config) *Store {
	return &Store{
		redisClient: redisClient,
		config:      cfg,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get rehydrates the session's cart.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	return rehydrate(sessionID, data, err)
}

// rehydrate turns a raw storage read into a cart. A missing record or a
// corrupt payload degrades to an empty cart; only a live storage error
// propagates.
func rehydrate(sessionID, data string, err error) (*Cart, error) {
	if errors.Is(err, redis.Nil) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return New(sessionID), nil
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	cart.SessionID = sessionID

	return &cart, nil
}

// Save persists the cart as one unit.
func (s *Store) Save(ctx context.Context, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	return s.redisClient.Set(ctx, cartKey(cart.SessionID), data, s.config.Redis.CartTTL).Err()
}

// AddItem merges the product into the session's cart and persists it.
func (s *Store) AddItem(ctx context.Context, sessionID string, product catalog.Product) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(product)

	if err := s.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets an absolute quantity; zero or below removes the item.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if err := s.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the product from the session's cart.
func (s *Store) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)

	if err := s.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}
