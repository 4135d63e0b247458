package trips

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"voyago/ai"
	"voyago/middleware"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// AnalyzePrompt runs profile synthesis and the smart-triage prompt over the
// planner conversation.
func (h *Handler) AnalyzePrompt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := middleware.UsernameFromContext(r.Context())

	var input promptRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	profile := h.userProfile(r.Context(), username)
	augmented := fmt.Sprintf("User Profile:\n%s\n\nConversation History:\n%s", profile, input.Prompt)

	raw, err := h.AI.Complete(r.Context(), h.Prompts.SmartTriage, augmented)
	if err != nil {
		log.Printf("prompt analysis: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to analyze prompt.")
		return
	}

	analysis, err := ai.ParseAnalysis(raw)
	if err != nil {
		log.Printf("prompt analysis: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to analyze prompt.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, analysis)
}

// PlanTrip runs the architect prompt and pipes the parsed plan through
// enrichment before returning it.
func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input promptRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	raw, err := h.AI.Complete(r.Context(), h.Prompts.Architect, input.Prompt)
	if err != nil {
		log.Printf("trip planning: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to plan trip.")
		return
	}

	itinerary, err := ai.ParseItinerary(raw)
	if err != nil {
		log.Printf("trip planning: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to plan trip.")
		return
	}

	h.Enrich.Enrich(r.Context(), itinerary)
	utils.RespondWithJSON(w, http.StatusOK, itinerary)
}
