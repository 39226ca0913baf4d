// File: internal/infra/adapters/kanttiinit/client.go
package kanttiinit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"telegram-canteen-bot/internal/config"
	"telegram-canteen-bot/internal/domain"
	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/domain/ports/adapter"
	"telegram-canteen-bot/internal/infra/metrics"
)

var _ adapter.CanteenAPI = (*Client)(nil)

// Client talks to the Kanttiinit kitchen API.
// Schema: https://github.com/Kanttiinit/kitchen/tree/master/schema
type Client struct {
	baseURL string
	area    string
	httpc   *http.Client
	log     *zerolog.Logger
}

// NewClient constructs a Client scoped to one area (e.g. "Otaniemi").
func NewClient(cfg *config.CanteenConfig, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		area:    cfg.Area,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		log:     logger,
	}
}

// Wire shapes. Restaurant ids are numeric upstream but used as strings
// throughout the bot (they travel inside callback data).
type wireArea struct {
	Name        string           `json:"name"`
	Restaurants []wireRestaurant `json:"restaurants"`
}

type wireRestaurant struct {
	ID           json.Number `json:"id"`
	Name         string      `json:"name"`
	URL          string      `json:"url"`
	Address      string      `json:"address"`
	OpeningHours []string    `json:"openingHours"`
}

type wireMenuItem struct {
	Title      string   `json:"title"`
	Properties []string `json:"properties"`
}

// ListRestaurants fetches all areas and returns the restaurants of the
// configured one, keyed by id. Errors propagate untouched; no retry.
func (c *Client) ListRestaurants(ctx context.Context) (map[string]model.Restaurant, error) {
	var areas []wireArea
	if err := c.getJSON(ctx, "/areas", url.Values{"lang": {"en"}}, &areas); err != nil {
		return nil, err
	}

	for _, a := range areas {
		if a.Name != c.area {
			continue
		}
		out := make(map[string]model.Restaurant, len(a.Restaurants))
		for _, r := range a.Restaurants {
			id := r.ID.String()
			out[id] = model.Restaurant{
				ID:           id,
				Name:         r.Name,
				URL:          r.URL,
				Address:      r.Address,
				OpeningHours: r.OpeningHours,
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrAreaNotFound, c.area)
}

// GetMenu fetches the menu of one restaurant for an ISO date. The response is
// keyed by restaurant id and then by date; a missing date means an empty menu.
func (c *Client) GetMenu(ctx context.Context, restaurantID, date string) ([]model.MenuItem, error) {
	q := url.Values{
		"restaurants": {restaurantID},
		"days":        {date},
		"lang":        {"en"},
	}
	var payload map[string]map[string][]wireMenuItem
	if err := c.getJSON(ctx, "/menus", q, &payload); err != nil {
		return nil, err
	}

	items := payload[restaurantID][date]
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.MenuItem{Title: it.Title, Properties: it.Properties})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, v any) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.ObserveCanteenCall(endpoint, int(time.Since(start).Milliseconds()), false)
		return fmt.Errorf("canteen api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveCanteenCall(endpoint, int(time.Since(start).Milliseconds()), false)
		return fmt.Errorf("canteen api %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		metrics.ObserveCanteenCall(endpoint, int(time.Since(start).Milliseconds()), false)
		return fmt.Errorf("canteen api %s: decode: %w", endpoint, err)
	}

	metrics.ObserveCanteenCall(endpoint, int(time.Since(start).Milliseconds()), true)
	c.log.Debug().Str("endpoint", endpoint).Dur("took", time.Since(start)).Msg("canteen api call")
	return nil
}
