package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"

	"voyago/models"
	"voyago/places"
)

type fakePlaces struct {
	mu      sync.Mutex
	calls   []string
	details map[string]*places.Details
	fail    map[string]bool
}

func (f *fakePlaces) Lookup(_ context.Context, query string) (*places.Details, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()
	if f.fail[query] {
		return nil, errors.New("upstream down")
	}
	return f.details[query], nil
}

type fakeWeather struct {
	mu      sync.Mutex
	calls   int
	current *models.Weather
	err     error
}

func (f *fakeWeather) Current(_ context.Context, city string) (*models.Weather, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.current, f.err
}

func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		TripDetails: models.TripDetails{DestinationCity: "Paris", TripDurationDays: 2},
		Days: []models.Day{
			{DayNumber: 1, Theme: "Icons", Activities: []models.Activity{
				{ActivityID: "1-1", ActivityName: "Eiffel Tower", LocationQuery: "Eiffel Tower, Paris"},
				{ActivityID: "1-2", ActivityName: "Picnic", LocationQuery: ""},
			}},
			{DayNumber: 2, Theme: "Art", Activities: []models.Activity{
				{ActivityID: "2-1", ActivityName: "Louvre", LocationQuery: "Louvre, Paris"},
			}},
		},
	}
}

func TestEnrichAttachesPlaceAndWeatherFields(t *testing.T) {
	placesFake := &fakePlaces{details: map[string]*places.Details{
		"Eiffel Tower, Paris": {
			Address:       "Champ de Mars",
			Rating:        4.6,
			PhotoRef:      "photo123",
			GoogleMapsURL: "https://maps.google.com/?cid=1",
			ReviewAuthor:  "Ana",
			ReviewText:    "Worth the queue.",
		},
	}}
	weatherFake := &fakeWeather{current: &models.Weather{Status: "clear sky", Temperature: 21.5}}

	itinerary := testItinerary()
	enricher := &Enricher{Places: placesFake, Weather: weatherFake}
	enricher.Enrich(context.Background(), itinerary)

	tower := itinerary.Days[0].Activities[0]
	if tower.Address != "Champ de Mars" || tower.GoogleRating != 4.6 {
		t.Fatalf("place fields not attached: %+v", tower)
	}
	if tower.ImageURL != "/api/image-proxy/photo123" {
		t.Fatalf("expected proxy image URL, got %q", tower.ImageURL)
	}
	if tower.TopReview == nil || tower.TopReview.Author != "Ana" {
		t.Fatalf("top review not attached: %+v", tower.TopReview)
	}

	for d := range itinerary.Days {
		for a, activity := range itinerary.Days[d].Activities {
			if activity.LocationQuery == "" {
				continue
			}
			if activity.Weather == nil || activity.Weather.Status != "clear sky" {
				t.Fatalf("day %d activity %d missing weather", d, a)
			}
		}
	}
	if weatherFake.calls != 1 {
		t.Fatalf("expected a single weather lookup, got %d", weatherFake.calls)
	}
}

func TestEnrichSkipsEmptyLocationQuery(t *testing.T) {
	placesFake := &fakePlaces{}
	// weather succeeds, so a leak onto the query-less activity would show
	weatherFake := &fakeWeather{current: &models.Weather{Status: "clear sky", Temperature: 20}}

	itinerary := testItinerary()
	enricher := &Enricher{Places: placesFake, Weather: weatherFake}
	enricher.Enrich(context.Background(), itinerary)

	picnic := itinerary.Days[0].Activities[1]
	if picnic.Weather != nil {
		t.Fatalf("activity without location query gained weather: %+v", picnic.Weather)
	}
	if picnic.Address != "" || picnic.ImageURL != "" || picnic.TopReview != nil {
		t.Fatalf("activity without location query gained fields: %+v", picnic)
	}

	for _, call := range placesFake.calls {
		if call == "" {
			t.Fatal("lookup issued for empty location query")
		}
	}
}

func TestEnrichIsolatesPerActivityFailures(t *testing.T) {
	placesFake := &fakePlaces{
		fail: map[string]bool{"Eiffel Tower, Paris": true},
		details: map[string]*places.Details{
			"Louvre, Paris": {Address: "Rue de Rivoli", Rating: 4.7},
		},
	}
	weatherFake := &fakeWeather{current: &models.Weather{Status: "rain", Temperature: 12}}

	itinerary := testItinerary()
	enricher := &Enricher{Places: placesFake, Weather: weatherFake}
	enricher.Enrich(context.Background(), itinerary)

	if itinerary.Days[0].Activities[0].Address != "" {
		t.Fatal("failed lookup should leave fields absent")
	}
	louvre := itinerary.Days[1].Activities[0]
	if louvre.Address != "Rue de Rivoli" {
		t.Fatalf("failure on one activity leaked into another: %+v", louvre)
	}
}

func TestEnrichWithNoResultsAddsNothing(t *testing.T) {
	// lookups succeed but return no results; already-enriched passes with
	// no location queries behave the same way
	placesFake := &fakePlaces{}
	weatherFake := &fakeWeather{err: errors.New("down")}

	itinerary := testItinerary()
	enricher := &Enricher{Places: placesFake, Weather: weatherFake}
	enricher.Enrich(context.Background(), itinerary)

	for d := range itinerary.Days {
		for _, activity := range itinerary.Days[d].Activities {
			if activity.Address != "" || activity.Weather != nil || activity.ImageURL != "" {
				t.Fatalf("unexpected enrichment: %+v", activity)
			}
		}
	}
}
