package routes

import (
	"fmt"
	"net/http"

	"voyago/auth"
	"voyago/middleware"
	"voyago/places"
	"voyago/ratelim"
	"voyago/realtime"
	"voyago/trips"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *auth.Handler) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, am *middleware.Auth, h *trips.Handler) {
	router.POST("/api/analyze-prompt", rl.Limit(am.Authenticate(h.AnalyzePrompt)))
	router.POST("/api/plan-trip", rl.Limit(am.Authenticate(h.PlanTrip)))

	router.POST("/api/itineraries", am.Authenticate(h.SaveItinerary))
	router.GET("/api/itineraries", am.Authenticate(h.ListItineraries))
	// shareable by link, so no auth on reads
	router.GET("/api/itineraries/:id", h.GetItinerary)
	router.POST("/api/itineraries/:id/chat", rl.Limit(am.Authenticate(h.CollaborateChat)))

	router.POST("/api/itineraries/:id/email", rl.Limit(am.Authenticate(h.EmailItinerary)))
	router.GET("/api/itineraries/:id/pdf", rl.Limit(am.Authenticate(h.DownloadPDF)))
	router.GET("/api/itineraries/:id/share-qr", rl.Limit(h.ShareQR))
}

func AddImageRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, client *places.Client) {
	router.GET("/api/image-proxy/:ref", rl.Limit(places.ImageProxy(client)))
}

func AddRealtimeRoutes(router *httprouter.Router, hub *realtime.Hub) {
	router.GET("/ws/trips", realtime.WebSocketHandler(hub))
}

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		fmt.Fprint(w, "200")
	})
}
