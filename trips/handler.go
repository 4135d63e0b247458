package trips

import (
	"context"
	"fmt"
	"log"
	"strings"

	"voyago/ai"
	"voyago/db"
	"voyago/models"
)

// TripStore is the slice of the document store the trip routes need.
type TripStore interface {
	InsertTrip(ctx context.Context, trip *models.Trip) (string, error)
	ListTrips(ctx context.Context, username string) ([]models.TripSummary, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	UpdateTrip(ctx context.Context, id string, itinerary *models.Itinerary, chat []models.ChatMessage) error
	PastTrips(ctx context.Context, username string) ([]db.PastTrip, error)
}

// Enricher augments a generated itinerary in place.
type Enricher interface {
	Enrich(ctx context.Context, itinerary *models.Itinerary)
}

// Broadcaster fans an event out to a trip's room.
type Broadcaster interface {
	Emit(room, event string, data any)
}

// Sender delivers a rendered itinerary email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Handler carries every dependency the trip routes use; main constructs one
// and the routers call its methods.
type Handler struct {
	Store   TripStore
	AI      ai.Completer
	Prompts ai.Prompts
	Enrich  Enricher
	Hub     Broadcaster
	Mail    Sender

	// PublicBaseURL is the externally visible origin, used for share links.
	PublicBaseURL string
}

// newUserProfile is returned whenever no history exists or the summarizer
// fails; the triage prompt knows how to treat it.
const newUserProfile = "New user"

// userProfile summarizes a user's saved trips through the summarizer prompt.
func (h *Handler) userProfile(ctx context.Context, username string) string {
	past, err := h.Store.PastTrips(ctx, username)
	if err != nil {
		log.Printf("profile read for %q: %v", username, err)
		return newUserProfile
	}
	if len(past) == 0 {
		return newUserProfile
	}

	lines := make([]string, 0, len(past))
	for _, trip := range past {
		lines = append(lines, fmt.Sprintf("Trip: %s. Themes: %s", trip.Title, strings.Join(trip.Themes, ", ")))
	}

	summary, err := h.AI.Complete(ctx, h.Prompts.Summarizer, strings.Join(lines, "\n"))
	if err != nil {
		log.Printf("profile summarization for %q: %v", username, err)
		return newUserProfile
	}
	return summary
}
