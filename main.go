package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripforge/dashboard"
	"tripforge/db"
	"tripforge/editor"
	"tripforge/extract"
	"tripforge/keywords"
	"tripforge/livefeed"
	"tripforge/preview"
	"tripforge/ratelim"
	"tripforge/rdx"
	"tripforge/repo"
	"tripforge/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
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

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, itineraries *repo.ItineraryRepo, templates *repo.TemplateRepo, extractor *extract.Extractor) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, rateLimiter)
	routes.AddItineraryRoutes(router, dashboard.NewHandler(itineraries), rateLimiter)
	routes.AddEditorRoutes(router, editor.NewHandler(itineraries), rateLimiter)
	routes.AddTemplateRoutes(router, keywords.NewHandler(templates), rateLimiter)
	routes.AddPreviewRoutes(router, preview.NewHandler(itineraries), rateLimiter)
	routes.AddExtractRoutes(router, extract.NewHandler(extractor), rateLimiter)
	routes.AddImageRoutes(router, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	rdx.Init()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rateLimiter := ratelim.NewRateLimiter()

	itineraries := repo.NewItineraryRepo(db.ItinerariesCollection, repo.NewWatcher())
	templates := repo.NewTemplateRepo(db.TemplatesCollection, repo.NewWatcher())

	extractor, err := extract.NewExtractor(context.Background())
	if err != nil {
		log.Printf("Document extraction disabled: %v", err)
	}

	// live itinerary feed over websocket
	hub := livefeed.NewHub()
	go hub.Run()
	feed := livefeed.NewFeed(hub, itineraries)
	feedCtx, stopFeed := context.WithCancel(context.Background())
	go feed.Run(feedCtx)

	router := setupRouter(rateLimiter, itineraries, templates, extractor)
	routes.AddLiveFeedRoute(router, feed)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Shutting down live feed...")
		stopFeed()
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
