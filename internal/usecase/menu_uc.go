package usecase

import (
	"context"

	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/domain/ports/adapter"
)

// MenuUseCase fetches daily menus. Menus are never memoized (unlike the
// restaurant list) because they change day to day upstream.
type MenuUseCase struct {
	api adapter.CanteenAPI
}

// NewMenuUseCase constructs a MenuUseCase.
func NewMenuUseCase(api adapter.CanteenAPI) *MenuUseCase {
	return &MenuUseCase{api: api}
}

// ForDate returns the menu of one canteen for an ISO date (2006-01-02).
// An empty slice is a valid result: the canteen publishes nothing for that day.
func (uc *MenuUseCase) ForDate(ctx context.Context, restaurantID, date string) ([]model.MenuItem, error) {
	return uc.api.GetMenu(ctx, restaurantID, date)
}
