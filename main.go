package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/ai"
	"voyago/auth"
	"voyago/config"
	"voyago/db"
	"voyago/enrich"
	"voyago/mailer"
	"voyago/middleware"
	"voyago/places"
	"voyago/ratelim"
	"voyago/rdx"
	"voyago/realtime"
	"voyago/routes"
	"voyago/trips"
	"voyago/utils"
	"voyago/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func setupRouter(cfg *config.Config, store *db.Store, cache *rdx.Cache, hub *realtime.Hub) *httprouter.Router {
	rateLimiter := ratelim.NewRateLimiter()
	authMW := &middleware.Auth{Secret: cfg.JWTSecret}

	placesClient := places.NewClient(cfg.PlacesKey, cfg.ExternalTimeout)
	weatherClient := weather.NewClient(cfg.OpenWeatherKey, cfg.ExternalTimeout, cache)

	tripHandler := &trips.Handler{
		Store:   store,
		AI:      ai.NewClient(cfg.OpenAIKey),
		Prompts: ai.DefaultPrompts(),
		Enrich:  &enrich.Enricher{Places: placesClient, Weather: weatherClient},
		Hub:     hub,
		Mail: &mailer.Service{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Sender:   cfg.SenderEmail,
			Password: cfg.SenderPassword,
		},
		PublicBaseURL: cfg.PublicBaseURL,
	}
	authHandler := &auth.Handler{Store: store, Tokens: authMW}

	router := httprouter.New()
	routes.AddHealthRoutes(router)
	routes.AddAuthRoutes(router, rateLimiter, authHandler)
	routes.AddTripRoutes(router, rateLimiter, authMW, tripHandler)
	routes.AddImageRoutes(router, rateLimiter, placesClient)
	routes.AddRealtimeRoutes(router, hub)
	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}
	log.Println("✅ Connected to MongoDB")

	cache := rdx.New(cfg.RedisAddr)
	if err := cache.Ping(context.Background()); err != nil {
		log.Printf("⚠️ Redis unavailable, caching disabled: %v", err)
		cache.Close()
		cache = nil
	}

	hub := realtime.NewHub()
	go hub.Run()

	router := setupRouter(cfg, store, cache, hub)

	// middleware chain: request id → logging → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := utils.WithRequestID(loggingMiddleware(securityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Shutting down realtime hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	if err := store.Close(context.Background()); err != nil {
		log.Printf("⚠️ Mongo disconnect: %v", err)
	}
	if err := cache.Close(); err != nil {
		log.Printf("⚠️ Redis close: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
