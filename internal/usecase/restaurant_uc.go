package usecase

import (
	"context"
	"sort"

	"telegram-canteen-bot/internal/domain"
	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/domain/ports/adapter"
)

// RestaurantUseCase exposes the canteen list of the configured area.
type RestaurantUseCase struct {
	api adapter.CanteenAPI
}

// NewRestaurantUseCase constructs a RestaurantUseCase.
func NewRestaurantUseCase(api adapter.CanteenAPI) *RestaurantUseCase {
	return &RestaurantUseCase{api: api}
}

// List returns all canteens sorted by name so keyboards render in a stable order.
func (uc *RestaurantUseCase) List(ctx context.Context) ([]model.Restaurant, error) {
	rests, err := uc.api.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Restaurant, 0, len(rests))
	for _, r := range rests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get retrieves one canteen by id.
func (uc *RestaurantUseCase) Get(ctx context.Context, id string) (*model.Restaurant, error) {
	rests, err := uc.api.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := rests[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return &r, nil
}
