// File: internal/domain/ports/adapter/canteen.go
package adapter

import (
	"context"

	"telegram-canteen-bot/internal/domain/model"
)

// CanteenAPI fetches restaurant and menu data from the upstream kitchen API.
type CanteenAPI interface {
	// ListRestaurants returns the restaurants of the configured area keyed by id.
	ListRestaurants(ctx context.Context) (map[string]model.Restaurant, error)
	// GetMenu returns the menu for one restaurant on a given ISO date (2006-01-02).
	// Never cached; a fresh fetch per call.
	GetMenu(ctx context.Context, restaurantID, date string) ([]model.MenuItem, error)
}
