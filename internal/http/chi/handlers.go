package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-console/catalog"
	"github.com/marcelsud/library-console/catalog/remote"
	"github.com/marcelsud/library-console/metrics"
	"github.com/rs/zerolog"
)

// Handlers sets up the console API. logger is the application logger; collector and prom may be nil.
func Handlers(ctx context.Context, svc catalog.UseCase, logger zerolog.Logger, collector metrics.Collector, prom http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if prom != nil {
		r.Method(http.MethodGet, "/metrics", prom)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/books", getBooks(svc))
		r.Method(http.MethodGet, "/books/{id}", getBook(svc))
		r.Method(http.MethodPost, "/books", postBook(svc))
		r.Method(http.MethodPut, "/books/{id}", putBook(svc))
		r.Method(http.MethodDelete, "/books/{id}", deleteBook(svc))

		r.Method(http.MethodGet, "/authors", getAuthors(svc))
		r.Method(http.MethodGet, "/authors/{id}", getAuthor(svc))
		r.Method(http.MethodPost, "/authors", postAuthor(svc))
		r.Method(http.MethodPut, "/authors/{id}", putAuthor(svc))
		r.Method(http.MethodDelete, "/authors/{id}", deleteAuthor(svc))

		r.Method(http.MethodGet, "/genres", getGenres(svc))
		r.Method(http.MethodGet, "/genres/{id}", getGenre(svc))
		r.Method(http.MethodPost, "/genres", postGenre(svc))
		r.Method(http.MethodPut, "/genres/{id}", putGenre(svc))
		r.Method(http.MethodDelete, "/genres/{id}", deleteGenre(svc))

		r.Method(http.MethodGet, "/mutations", getMutations(svc))
		r.Method(http.MethodGet, "/stats", getStats(svc))
		if collector != nil {
			r.Method(http.MethodGet, "/metrics", getMetrics(collector))
		}
	})

	return r
}

// requestID echoes or assigns X-Request-Id and hands it to backend calls
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(remote.RequestIDHeader)
		if id == "" {
			id = remote.RequestID(r.Context())
		}
		w.Header().Set(remote.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(remote.ContextWithRequestID(r.Context(), id)))
	})
}
