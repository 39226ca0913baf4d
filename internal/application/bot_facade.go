package application

import (
	"context"
	"fmt"
	"strings"

	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/usecase"
)

// CanteenSiteURL is shown by the "Link" action.
const CanteenSiteURL = "https://kanttiinit.fi"

// BotFacade composes usecases into high-level bot screens.
// Keep the facade methods returning strings so the Telegram adapter just
// forwards them to the chat.
type BotFacade struct {
	RestaurantUC *usecase.RestaurantUseCase
	MenuUC       *usecase.MenuUseCase
}

// NewBotFacade constructs a facade from the provided usecases.
func NewBotFacade(restaurantUC *usecase.RestaurantUseCase, menuUC *usecase.MenuUseCase) *BotFacade {
	return &BotFacade{RestaurantUC: restaurantUC, MenuUC: menuUC}
}

// ListCanteens returns the canteens of the area for keyboard building.
func (b *BotFacade) ListCanteens(ctx context.Context) ([]model.Restaurant, error) {
	if b.RestaurantUC == nil {
		return nil, fmt.Errorf("restaurant usecase not available")
	}
	return b.RestaurantUC.List(ctx)
}

// HandleOpeningHours formats the weekly opening hours of one canteen as HTML:
// bold canteen name followed by one "Mon: 10:30-14:00" line per weekday.
func (b *BotFacade) HandleOpeningHours(ctx context.Context, restaurantID string) (string, error) {
	if b.RestaurantUC == nil {
		return "", fmt.Errorf("restaurant usecase not available")
	}
	rest, err := b.RestaurantUC.Get(ctx, restaurantID)
	if err != nil {
		return "", fmt.Errorf("get restaurant: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b>\n<code>", rest.Name))
	for i, day := range model.Weekdays {
		if i >= len(rest.OpeningHours) {
			break
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", day, rest.OpeningHours[i]))
	}
	sb.WriteString("</code>")
	return sb.String(), nil
}

// HandleMenu formats the menu of one canteen for an ISO date as HTML:
// bold "Name (date)" header followed by a numbered dish list.
func (b *BotFacade) HandleMenu(ctx context.Context, restaurantID, date string) (string, error) {
	if b.RestaurantUC == nil || b.MenuUC == nil {
		return "", fmt.Errorf("some usecases are not available")
	}
	rest, err := b.RestaurantUC.Get(ctx, restaurantID)
	if err != nil {
		return "", fmt.Errorf("get restaurant: %w", err)
	}
	items, err := b.MenuUC.ForDate(ctx, restaurantID, date)
	if err != nil {
		return "", fmt.Errorf("get menu: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s (%s)</b>\n<code>", rest.Name, date))
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.TrimSpace(item.Title)))
	}
	sb.WriteString("</code>")
	return sb.String(), nil
}

// HandleLink returns the canteen website screen.
func (b *BotFacade) HandleLink() string {
	return CanteenSiteURL
}
