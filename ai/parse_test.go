package ai

import (
	"errors"
	"testing"
)

func TestParseAnalysis(t *testing.T) {
	analysis, err := ParseAnalysis(`{"intent":"READY_TO_PLAN","ai_response":"On it!"}`)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.Intent != IntentReadyToPlan || analysis.AIResponse != "On it!" {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
}

func TestParseAnalysisRejectsUnknownIntent(t *testing.T) {
	_, err := ParseAnalysis(`{"intent":"SOMETHING_ELSE","ai_response":"hi"}`)
	if !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestParseTriage(t *testing.T) {
	triage, err := ParseTriage(`{"intent":"update_itinerary","response":"Sure, swapping day 2."}`)
	if err != nil {
		t.Fatalf("ParseTriage: %v", err)
	}
	if triage.Intent != IntentCollabUpdate {
		t.Fatalf("unexpected intent %q", triage.Intent)
	}
}

func TestParseTriageMalformedJSON(t *testing.T) {
	_, err := ParseTriage(`I'd love to help! {`)
	if !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

const validPlan = `{
	"trip_details": {"destination_city":"Paris","destination_country":"France","trip_duration_days":3,"title":"Paris on a Plate"},
	"days": [
		{"day_number":1,"theme":"Icons","activities":[
			{"activity_id":"1-1","time_of_day":"Morning","activity_name":"Eiffel Tower","description":"Up the tower.","location_query_for_api":"Eiffel Tower, Paris, France"}
		]},
		{"day_number":2,"theme":"Food","activities":[
			{"activity_id":"2-1","time_of_day":"Morning","activity_name":"Market walk","description":"Snack crawl.","location_query_for_api":"Marche des Enfants Rouges, Paris, France"}
		]},
		{"day_number":3,"theme":"History","activities":[
			{"activity_id":"3-1","time_of_day":"Afternoon","activity_name":"Louvre","description":"Art overdose.","location_query_for_api":"Louvre Museum, Paris, France"}
		]}
	]
}`

func TestParseItinerary(t *testing.T) {
	itinerary, err := ParseItinerary(validPlan)
	if err != nil {
		t.Fatalf("ParseItinerary: %v", err)
	}
	if itinerary.TripDetails.DestinationCity != "Paris" {
		t.Fatalf("expected Paris, got %q", itinerary.TripDetails.DestinationCity)
	}
	if len(itinerary.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(itinerary.Days))
	}
}

func TestParseItineraryRejectsHollowPlans(t *testing.T) {
	cases := map[string]string{
		"no days":    `{"trip_details":{"destination_city":"Paris"},"days":[]}`,
		"no city":    `{"trip_details":{},"days":[{"day_number":1,"activities":[{"activity_id":"1-1"}]}]}`,
		"empty day":  `{"trip_details":{"destination_city":"Paris"},"days":[{"day_number":1,"activities":[]}]}`,
		"not object": `[1,2,3]`,
	}
	for name, raw := range cases {
		if _, err := ParseItinerary(raw); !errors.Is(err, ErrMalformedOutput) {
			t.Errorf("%s: expected ErrMalformedOutput, got %v", name, err)
		}
	}
}

func TestDefaultPromptsPopulated(t *testing.T) {
	prompts := DefaultPrompts()
	for name, prompt := range map[string]string{
		"architect":           prompts.Architect,
		"summarizer":          prompts.Summarizer,
		"smart triage":        prompts.SmartTriage,
		"collaborator triage": prompts.CollaboratorTriage,
		"collaborator":        prompts.Collaborator,
	} {
		if prompt == "" {
			t.Errorf("%s prompt is empty", name)
		}
	}
}
