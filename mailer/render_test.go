package mailer

import (
	"strings"
	"testing"

	"voyago/models"
)

func TestRenderHTML(t *testing.T) {
	trip := &models.Trip{
		Itinerary: models.Itinerary{
			TripDetails: models.TripDetails{Title: "Paris on a Plate"},
			Days: []models.Day{
				{DayNumber: 1, Theme: "Food", Activities: []models.Activity{
					{ActivityName: "Market walk", Description: "Snack crawl."},
					{ActivityName: "Bistro dinner", Description: "Classic plates."},
				}},
				{DayNumber: 2, Theme: "History", Activities: []models.Activity{
					{ActivityName: "Louvre", Description: "Art all morning."},
				}},
			},
		},
	}

	out := RenderHTML(trip)
	for _, want := range []string{
		"<h1>Paris on a Plate</h1>",
		"<h3>Day 1: Food</h3>",
		"<h3>Day 2: History</h3>",
		"<li><strong>Market walk</strong>: Snack crawl.</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in rendered body", want)
		}
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	trip := &models.Trip{
		Itinerary: models.Itinerary{
			TripDetails: models.TripDetails{Title: `<script>alert("x")</script>`},
		},
	}
	out := RenderHTML(trip)
	if strings.Contains(out, "<script>") {
		t.Fatal("title not escaped")
	}
}
