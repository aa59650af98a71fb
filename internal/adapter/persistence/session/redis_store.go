package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/infrastructure/cache"
	"barbearia/internal/usecase/interfaces"
)

const keyPrefix = "checkout:session:"

// RedisStore keeps sessions as JSON values that expire after ttl of inactivity.
type RedisStore struct {
	client cache.Client
	ttl    time.Duration
}

var _ interfaces.ICheckoutSessionStore = (*RedisStore)(nil)

func NewRedisStore(client cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id string) (entities.CheckoutSession, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id)
	if errors.Is(err, cache.ErrCacheMiss) {
		return entities.CheckoutSession{}, nil
	}
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	var s entities.CheckoutSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s entities.CheckoutSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+s.ID, data, r.ttl)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, keyPrefix+id)
}
