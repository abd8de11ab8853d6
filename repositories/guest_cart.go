package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"frydays/cart"

	"github.com/redis/go-redis/v9"
)

// GuestCartStore keeps anonymous carts keyed by guest session id. An unknown
// or expired session loads as an empty cart.
type GuestCartStore interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

const guestCartKeyPrefix = "guest_cart:"

type RedisGuestCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuestCartStore(client *redis.Client, ttl time.Duration) *RedisGuestCartStore {
	return &RedisGuestCartStore{client: client, ttl: ttl}
}

func (s *RedisGuestCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, guestCartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load guest cart: %w", err)
	}

	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode guest cart: %w", err)
	}
	return cart.FromLines(lines), nil
}

// Save refreshes the TTL on every write; an emptied cart is deleted.
func (s *RedisGuestCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}
	raw, err := json.Marshal(c.Lines())
	if err != nil {
		return fmt.Errorf("encode guest cart: %w", err)
	}
	if err := s.client.Set(ctx, guestCartKeyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save guest cart: %w", err)
	}
	return nil
}

func (s *RedisGuestCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, guestCartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete guest cart: %w", err)
	}
	return nil
}

type memoryGuestCart struct {
	lines     []cart.Line
	expiresAt time.Time
}

// MemoryGuestCartStore is the process-local fallback used without Redis.
type MemoryGuestCartStore struct {
	mu    sync.Mutex
	carts map[string]memoryGuestCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryGuestCartStore(ttl time.Duration) *MemoryGuestCartStore {
	return &MemoryGuestCartStore{
		carts: make(map[string]memoryGuestCart),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryGuestCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return cart.New(), nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.carts, sessionID)
		return cart.New(), nil
	}
	return cart.FromLines(entry.lines), nil
}

func (s *MemoryGuestCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	if c.IsEmpty() {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = memoryGuestCart{lines: c.Lines(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryGuestCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

func (s *MemoryGuestCartStore) evictExpired() {
	now := s.now()
	for id, entry := range s.carts {
		if !now.Before(entry.expiresAt) {
			delete(s.carts, id)
		}
	}
}
