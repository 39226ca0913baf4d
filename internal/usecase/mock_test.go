package usecase

import (
	"context"
	"sync"

	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/domain/ports/adapter"
)

// ---- Mock CanteenAPI ----

type mockCanteenAPI struct {
	mu        sync.Mutex
	listCalls int
	menuCalls int

	rests   map[string]model.Restaurant
	menus   map[string]map[string][]model.MenuItem // id -> date -> items
	listErr error
	menuErr error
}

var _ adapter.CanteenAPI = (*mockCanteenAPI)(nil)

func (m *mockCanteenAPI) ListRestaurants(_ context.Context) (map[string]model.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rests, nil
}

func (m *mockCanteenAPI) GetMenu(_ context.Context, id, date string) ([]model.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menuCalls++
	if m.menuErr != nil {
		return nil, m.menuErr
	}
	return m.menus[id][date], nil
}

func threeRestaurants() map[string]model.Restaurant {
	return map[string]model.Restaurant{
		"2": {ID: "2", Name: "Täffä", URL: "https://example.org/taffa", Address: "Otakaari 22"},
		"3": {ID: "3", Name: "Alvari", URL: "https://example.org/alvari", Address: "Otakaari 1"},
		"7": {ID: "7", Name: "Kvarkki", URL: "https://example.org/kvarkki", Address: "Vuorimiehentie 2"},
	}
}
