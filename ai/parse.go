package ai

import (
	"encoding/json"
	"errors"
	"fmt"

	"voyago/models"
)

// ErrMalformedOutput marks a model reply that parsed as text but failed the
// JSON contract. Callers can tell it apart from transport failures.
var ErrMalformedOutput = errors.New("malformed model output")

// Analysis is the smart-triage reply for the planner conversation.
type Analysis struct {
	Intent     string `json:"intent"`
	AIResponse string `json:"ai_response"`
}

// Triage is the collaborator-triage reply for an existing trip's chat.
type Triage struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
}

const (
	IntentAnswerQuestion     = "ANSWER_QUESTION"
	IntentNeedsClarification = "NEEDS_CLARIFICATION"
	IntentReadyToPlan        = "READY_TO_PLAN"

	IntentCollabAnswer = "answer_question"
	IntentCollabUpdate = "update_itinerary"
)

func ParseAnalysis(raw string) (*Analysis, error) {
	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	switch analysis.Intent {
	case IntentAnswerQuestion, IntentNeedsClarification, IntentReadyToPlan:
	default:
		return nil, fmt.Errorf("%w: unknown intent %q", ErrMalformedOutput, analysis.Intent)
	}
	if analysis.AIResponse == "" {
		return nil, fmt.Errorf("%w: missing ai_response", ErrMalformedOutput)
	}
	return &analysis, nil
}

func ParseTriage(raw string) (*Triage, error) {
	var triage Triage
	if err := json.Unmarshal([]byte(raw), &triage); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	switch triage.Intent {
	case IntentCollabAnswer, IntentCollabUpdate:
	default:
		return nil, fmt.Errorf("%w: unknown intent %q", ErrMalformedOutput, triage.Intent)
	}
	return &triage, nil
}

// ParseItinerary decodes and shape-checks a generated itinerary. The model
// is untrusted input; a decoded-but-hollow plan is rejected here rather than
// surfacing downstream as an empty trip.
func ParseItinerary(raw string) (*models.Itinerary, error) {
	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if itinerary.TripDetails.DestinationCity == "" {
		return nil, fmt.Errorf("%w: missing trip_details.destination_city", ErrMalformedOutput)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrMalformedOutput)
	}
	for _, day := range itinerary.Days {
		if len(day.Activities) == 0 {
			return nil, fmt.Errorf("%w: day %d has no activities", ErrMalformedOutput, day.DayNumber)
		}
	}
	return &itinerary, nil
}
