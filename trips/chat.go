package trips

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"voyago/ai"
	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

type chatRequest struct {
	Itinerary   models.Itinerary     `json:"itinerary"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
	Prompt      string               `json:"prompt"`
}

type chatResponse struct {
	Itinerary   models.Itinerary     `json:"itinerary"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
}

// CollaborateChat triages the newest message, optionally regenerates the
// itinerary, persists the result and fans it out to the trip's room.
func (h *Handler) CollaborateChat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	username := middleware.UsernameFromContext(r.Context())

	var input chatRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	transcript := buildTranscript(input.ChatHistory, username, input.Prompt)

	raw, err := h.AI.Complete(r.Context(), h.Prompts.CollaboratorTriage, transcript)
	if err != nil {
		log.Printf("chat triage: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
		return
	}
	triage, err := ai.ParseTriage(raw)
	if err != nil {
		log.Printf("chat triage: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
		return
	}

	finalChat := append(input.ChatHistory,
		models.ChatMessage{Sender: username, Text: input.Prompt},
		models.ChatMessage{Sender: "ai", Text: triage.Response},
	)
	finalItinerary := input.Itinerary

	if triage.Intent == ai.IntentCollabUpdate {
		existing, err := json.Marshal(input.Itinerary)
		if err != nil {
			log.Printf("chat update marshal: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
			return
		}
		request := fmt.Sprintf("Itinerary JSON:\n%s\n\nConversation:\n%s\n\nPlease perform the request.", existing, transcript)

		raw, err := h.AI.Complete(r.Context(), h.Prompts.Collaborator, request)
		if err != nil {
			log.Printf("chat update: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
			return
		}
		updated, err := ai.ParseItinerary(raw)
		if err != nil {
			log.Printf("chat update: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
			return
		}
		h.Enrich.Enrich(r.Context(), updated)
		finalItinerary = *updated
	}

	if err := h.Store.UpdateTrip(r.Context(), tripID, &finalItinerary, finalChat); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("chat persist: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI assistant error.")
		return
	}

	response := chatResponse{Itinerary: finalItinerary, ChatHistory: finalChat}
	h.Hub.Emit(tripID, "trip_updated", response)
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func buildTranscript(history []models.ChatMessage, username, prompt string) string {
	var b strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&b, "%s: %s\n", msg.Sender, msg.Text)
	}
	fmt.Fprintf(&b, "%s: %s", username, prompt)
	return b.String()
}
