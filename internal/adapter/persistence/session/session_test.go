package session

import (
	"context"
	"testing"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() entities.CheckoutSession {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	appointments := []entities.Appointment{{
		ID: "a1", CustomerName: "Ana",
		Service: entities.ManyServices(
			entities.ServiceSnapshot{Name: "Corte", Price: 35},
			entities.ServiceSnapshot{Name: "Barba", Price: 25},
		),
	}}
	s := entities.NewCheckoutSession("s1", "k1", appointments, nil, []string{"Carlos"}, now)
	_ = s.SelectClient("a1")
	return s
}

func TestMemoryStore_RoundTripAndIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	s := sampleSession()
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutStateCartPopulated, got.State)
	assert.Equal(t, 60.0, got.Total)
	require.NotNil(t, got.SelectedClient)
	assert.Equal(t, "Ana", got.SelectedClient.Name)

	got.Cart[0].Name = "mutated"
	again, _ := store.Get(ctx, "s1")
	assert.Equal(t, "Corte", again.Cart[0].Name)

	require.NoError(t, store.Delete(ctx, "s1"))
	gone, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, sampleSession()))
	now = now.Add(2 * time.Minute)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

type fakeCache struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
	store := NewRedisStore(fc, 30*time.Minute)

	require.NoError(t, store.Save(ctx, sampleSession()))
	assert.Equal(t, 30*time.Minute, fc.ttls["checkout:session:s1"])

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Len(t, got.Cart, 2)
	require.NotNil(t, got.SelectedClient)
	assert.Len(t, got.SelectedClient.Services, 2)

	require.NoError(t, store.Delete(ctx, "s1"))
	missing, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
