package mailer

import (
	"fmt"
	"html"
	"strings"

	"voyago/models"
)

// RenderHTML turns a saved trip into the email body: a title heading, then
// one section per day with its activities.
func RenderHTML(trip *models.Trip) string {
	var b strings.Builder

	title := trip.Itinerary.TripDetails.Title
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title))

	for _, day := range trip.Itinerary.Days {
		fmt.Fprintf(&b, "<h3>Day %d: %s</h3><ul>", day.DayNumber, html.EscapeString(day.Theme))
		for _, activity := range day.Activities {
			fmt.Fprintf(&b, "<li><strong>%s</strong>: %s</li>",
				html.EscapeString(activity.ActivityName),
				html.EscapeString(activity.Description))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}
