package trips

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"voyago/db"
	"voyago/mailer"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type emailRequest struct {
	RecipientEmail string `json:"recipient_email"`
}

// EmailItinerary renders a saved trip to HTML and mails it.
func (h *Handler) EmailItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input emailRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.RecipientEmail == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Recipient email is required")
		return
	}

	trip, err := h.Store.GetTrip(r.Context(), ps.ByName("id"))
	if errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if err != nil {
		log.Printf("email fetch: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send email.")
		return
	}

	subject := "Your Trip Plan: " + trip.Itinerary.TripDetails.Title
	if err := h.Mail.Send(input.RecipientEmail, subject, mailer.RenderHTML(trip)); err != nil {
		log.Printf("smtp send: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send email.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Email sent!"})
}

// DownloadPDF renders a saved trip as a PDF attachment.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	trip, err := h.Store.GetTrip(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if err != nil {
		log.Printf("pdf fetch: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, trip.Itinerary.TripDetails.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	details := trip.Itinerary.TripDetails
	pdf.Cell(0, 10, fmt.Sprintf("%s, %s - %d days", details.DestinationCity, details.DestinationCountry, details.TripDurationDays))
	pdf.Ln(10)

	for _, day := range trip.Itinerary.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 10, fmt.Sprintf("Day %d: %s", day.DayNumber, day.Theme))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, activity := range day.Activities {
			pdf.Cell(0, 8, fmt.Sprintf("%s - %s", activity.TimeOfDay, activity.ActivityName))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("pdf render: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+id+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ShareQR serves a QR code PNG pointing at the shareable trip page.
func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := h.Store.GetTrip(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	png, err := qrcode.Encode(h.PublicBaseURL+"/trips/"+id, qrcode.Medium, 256)
	if err != nil {
		log.Printf("qr encode: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
