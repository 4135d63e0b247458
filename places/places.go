package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://maps.googleapis.com/maps/api/place"

// Details is the slice of a Google Place the enrichment pass attaches to an
// activity.
type Details struct {
	Name          string
	Address       string
	Rating        float64
	Website       string
	PhoneNumber   string
	OpeningHours  []string
	PhotoRef      string
	GoogleMapsURL string
	ReviewAuthor  string
	ReviewText    string
}

// Searcher is what the enrichment pass consumes.
type Searcher interface {
	Lookup(ctx context.Context, query string) (*Details, error)
}

// Client talks to the Places REST endpoints. No SDK: text-search, details
// and photo are three plain GET calls.
type Client struct {
	key  string
	http *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{key: key, http: &http.Client{Timeout: timeout}}
}

type textSearchResponse struct {
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
	Status string `json:"status"`
}

type detailsResponse struct {
	Result struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Website          string  `json:"website"`
		FormattedPhone   string  `json:"formatted_phone_number"`
		OpeningHours     struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		URL     string `json:"url"`
		Reviews []struct {
			AuthorName string `json:"author_name"`
			Text       string `json:"text"`
		} `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

// Lookup runs text search for the query and fetches details for the first
// hit. A query with no results returns (nil, nil) so callers can skip.
func (c *Client) Lookup(ctx context.Context, query string) (*Details, error) {
	placeID, err := c.textSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if placeID == "" {
		return nil, nil
	}
	return c.details(ctx, placeID)
}

func (c *Client) textSearch(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.key)

	var parsed textSearchResponse
	if err := c.getJSON(ctx, baseURL+"/textsearch/json?"+params.Encode(), &parsed); err != nil {
		return "", err
	}
	if len(parsed.Results) == 0 {
		return "", nil
	}
	return parsed.Results[0].PlaceID, nil
}

func (c *Client) details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,rating,website,formatted_phone_number,opening_hours,photo,url,review")
	params.Set("key", c.key)

	var parsed detailsResponse
	if err := c.getJSON(ctx, baseURL+"/details/json?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	result := parsed.Result
	details := &Details{
		Name:          result.Name,
		Address:       result.FormattedAddress,
		Rating:        result.Rating,
		Website:       result.Website,
		PhoneNumber:   result.FormattedPhone,
		OpeningHours:  result.OpeningHours.WeekdayText,
		GoogleMapsURL: result.URL,
	}
	if len(result.Photos) > 0 {
		details.PhotoRef = result.Photos[0].PhotoReference
	}
	if len(result.Reviews) > 0 {
		details.ReviewAuthor = result.Reviews[0].AuthorName
		details.ReviewText = result.Reviews[0].Text
	}
	return details, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places api: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// PhotoURL is the upstream photo endpoint for a reference. Only the image
// proxy calls it, so the key stays server-side.
func (c *Client) PhotoURL(ref string) string {
	params := url.Values{}
	params.Set("maxwidth", "600")
	params.Set("photoreference", ref)
	params.Set("key", c.key)
	return baseURL + "/photo?" + params.Encode()
}

// FetchPhoto streams the photo bytes for a reference.
func (c *Client) FetchPhoto(ctx context.Context, ref string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PhotoURL(ref), nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}
