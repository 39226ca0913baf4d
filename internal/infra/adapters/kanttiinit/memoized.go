// File: internal/infra/adapters/kanttiinit/memoized.go
package kanttiinit

import (
	"context"
	"sync"

	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/domain/ports/adapter"
	"telegram-canteen-bot/internal/infra/metrics"
)

var _ adapter.CanteenAPI = (*memoizedCanteenAPI)(nil)

// memoizedCanteenAPI loads the restaurant map at most once per process and
// treats it as immutable afterwards. A failed load is not cached so the next
// access retries. Menus always pass through to the inner client.
type memoizedCanteenAPI struct {
	inner adapter.CanteenAPI

	mu          sync.Mutex
	restaurants map[string]model.Restaurant
}

// NewMemoized decorates a CanteenAPI with restaurant-list memoization.
func NewMemoized(inner adapter.CanteenAPI) adapter.CanteenAPI {
	return &memoizedCanteenAPI{inner: inner}
}

func (m *memoizedCanteenAPI) ListRestaurants(ctx context.Context) (map[string]model.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.restaurants != nil {
		metrics.IncCacheRequest("restaurants", "hit")
		return m.restaurants, nil
	}

	metrics.IncCacheRequest("restaurants", "miss")
	rests, err := m.inner.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	m.restaurants = rests
	return m.restaurants, nil
}

func (m *memoizedCanteenAPI) GetMenu(ctx context.Context, restaurantID, date string) ([]model.MenuItem, error) {
	return m.inner.GetMenu(ctx, restaurantID, date)
}
