package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voyago/models"
	"voyago/rdx"
)

const baseURL = "https://api.openweathermap.org/data/2.5/weather"

// cacheTTL keeps a city's conditions for long enough that one lookup serves
// a whole enrichment pass and nearby requests.
const cacheTTL = 10 * time.Minute

// Provider is what the enrichment pass consumes.
type Provider interface {
	Current(ctx context.Context, city string) (*models.Weather, error)
}

// Client fetches current conditions by city name, with a redis cache in
// front. Temperatures are Celsius.
type Client struct {
	key   string
	http  *http.Client
	cache *rdx.Cache
}

func NewClient(key string, timeout time.Duration, cache *rdx.Cache) *Client {
	return &Client{key: key, http: &http.Client{Timeout: timeout}, cache: cache}
}

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *Client) Current(ctx context.Context, city string) (*models.Weather, error) {
	key := "weather:" + strings.ToLower(city)

	var cached models.Weather
	if hit, err := c.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("appid", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather: status %d for %q", resp.StatusCode, city)
	}

	var parsed currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Weather) == 0 {
		return nil, fmt.Errorf("openweather: empty conditions for %q", city)
	}

	current := &models.Weather{
		Status:      parsed.Weather[0].Description,
		Temperature: parsed.Main.Temp,
	}
	// cache write is best effort
	_ = c.cache.SetJSON(ctx, key, current, cacheTTL)
	return current, nil
}
