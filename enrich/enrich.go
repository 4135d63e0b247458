package enrich

import (
	"context"
	"log"
	"sync"

	"voyago/models"
	"voyago/places"
	"voyago/weather"
)

// maxWorkers bounds the fan-out over activities. Each activity's lookups
// are independent, so parallelizing changes latency, not results.
const maxWorkers = 4

// Enricher augments a generated itinerary with real place and weather data.
type Enricher struct {
	Places  places.Searcher
	Weather weather.Provider
}

// Enrich mutates the itinerary in place. Every failure is per-activity and
// silent: the field stays absent and the rest of the pass continues.
func (e *Enricher) Enrich(ctx context.Context, itinerary *models.Itinerary) {
	if itinerary == nil {
		return
	}

	// One weather lookup per pass: activities share the destination city's
	// conditions rather than looking up their own.
	var conditions *models.Weather
	if city := itinerary.TripDetails.DestinationCity; city != "" {
		current, err := e.Weather.Current(ctx, city)
		if err != nil {
			log.Printf("weather lookup failed for %q: %v", city, err)
		} else {
			conditions = current
		}
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for d := range itinerary.Days {
		for a := range itinerary.Days[d].Activities {
			activity := &itinerary.Days[d].Activities[a]
			if activity.LocationQuery == "" {
				continue
			}
			if conditions != nil {
				copied := *conditions
				activity.Weather = &copied
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(activity *models.Activity) {
				defer wg.Done()
				defer func() { <-sem }()
				e.enrichActivity(ctx, activity)
			}(activity)
		}
	}
	wg.Wait()
}

func (e *Enricher) enrichActivity(ctx context.Context, activity *models.Activity) {
	details, err := e.Places.Lookup(ctx, activity.LocationQuery)
	if err != nil {
		log.Printf("places lookup failed for %q: %v", activity.LocationQuery, err)
		return
	}
	if details == nil {
		// no search results
		return
	}

	activity.Address = details.Address
	activity.GoogleRating = details.Rating
	activity.Website = details.Website
	activity.PhoneNumber = details.PhoneNumber
	activity.OpeningHours = details.OpeningHours
	activity.GoogleMapsURL = details.GoogleMapsURL
	if details.ReviewText != "" {
		activity.TopReview = &models.Review{Author: details.ReviewAuthor, Text: details.ReviewText}
	}
	if details.PhotoRef != "" {
		// proxy URL, so the Places key never reaches the client
		activity.ImageURL = "/api/image-proxy/" + details.PhotoRef
	}
}
