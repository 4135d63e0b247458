package trips

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

type saveRequest struct {
	Itinerary   models.Itinerary     `json:"itinerary"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
}

// SaveItinerary persists a planned trip with its chat transcript.
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := middleware.UsernameFromContext(r.Context())

	var input saveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	title := input.Itinerary.TripDetails.Title
	if title == "" {
		title = "Untitled Trip"
	}
	if input.ChatHistory == nil {
		input.ChatHistory = []models.ChatMessage{}
	}

	trip := &models.Trip{
		Username:    username,
		Title:       title,
		Itinerary:   input.Itinerary,
		ChatHistory: input.ChatHistory,
	}
	id, err := h.Store.InsertTrip(r.Context(), trip)
	if err != nil {
		log.Printf("itinerary insert: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Itinerary saved successfully",
		"id":      id,
	})
}

// ListItineraries returns the caller's saved trips as {id, title} pairs.
func (h *Handler) ListItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := middleware.UsernameFromContext(r.Context())

	summaries, err := h.Store.ListTrips(r.Context(), username)
	if err != nil {
		log.Printf("itinerary list: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summaries)
}

// GetItinerary fetches one trip document by id. Unauthenticated: trip ids
// double as shareable links.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, err := h.Store.GetTrip(r.Context(), ps.ByName("id"))
	if errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if err != nil {
		log.Printf("itinerary fetch: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trip)
}
