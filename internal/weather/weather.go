// Package weather fetches current conditions from OpenWeatherMap.
// Lookups are cached and rate limited; any failure is reported as an
// error the caller downgrades to "no live data".
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"tourli/internal/model"
	"tourli/internal/normalize"
)

// Client is a caching OpenWeatherMap client
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	cache   *gocache.Cache
	limiter *rate.Limiter
}

// NewClient creates a client from the weather configuration
func NewClient(cfg model.WeatherConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// owmResponse is the slice of the provider payload we care about
type owmResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch returns current weather for a city in metric units. Results are
// cached under the normalized city name for the configured TTL.
func (c *Client) Fetch(ctx context.Context, city string) (*model.Weather, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather: no API key configured")
	}

	key := normalize.Normalize(city)
	if cached, ok := c.cache.Get(key); ok {
		w := cached.(model.Weather)
		return &w, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("weather: rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: fetch %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("weather: fetch %q: status %d", city, resp.StatusCode)
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather: decode response for %q: %w", city, err)
	}
	if payload.Main == nil || payload.Main.Temp == nil || payload.Main.Humidity == nil ||
		len(payload.Weather) == 0 || payload.Wind == nil || payload.Wind.Speed == nil {
		return nil, fmt.Errorf("weather: incomplete response for %q", city)
	}

	w := model.Weather{
		Temperature: *payload.Main.Temp,
		Humidity:    *payload.Main.Humidity,
		Condition:   payload.Weather[0].Description,
		WindSpeed:   *payload.Wind.Speed,
	}
	c.cache.Set(key, w, gocache.DefaultExpiration)
	return &w, nil
}
