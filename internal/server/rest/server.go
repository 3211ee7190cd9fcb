// Package rest is the public HTTP surface: photo uploads, photo listings
// and itinerary planning, protected by bearer tokens.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/travelpath/server/internal/logging"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	photos    *PhotoHandler
	trips     *TripHandler
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, ph *PhotoHandler, th *TripHandler, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		photos:    ph,
		trips:     th,
		jwtSecret: []byte(secretKey),
	}
}

// Router assembles the chi router. Health is open; everything under /api
// requires a bearer token.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(bearerAuth(s.jwtSecret))

		r.Post("/photos", s.photos.Upload)
		r.Delete("/photos/{id}", s.photos.Delete)
		r.Get("/places/{placeID}/photos", s.photos.ListByPlace)

		r.Post("/trips/generate", s.trips.Generate)
		r.Post("/trips", s.trips.Save)
		r.Get("/trips", s.trips.List)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
