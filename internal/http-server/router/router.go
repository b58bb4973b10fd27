// Package router assembles the HTTP surface of the shortener.
package router

import (
	"context"
	"log/slog"
	"net/http"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/http-server/handlers/alias/delete"
	"shortener-service/internal/http-server/handlers/alias/list"
	"shortener-service/internal/http-server/handlers/alias/shorten"
	"shortener-service/internal/http-server/handlers/redirect"
	mwLogger "shortener-service/internal/http-server/middleware/logger"
	mwMetrics "shortener-service/internal/http-server/middleware/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// AliasPattern is the URL parameter pattern for aliases.
const AliasPattern = "/{alias:[A-Za-z0-9_-]+}"

// AliasService is everything the routes need from the shortening service.
type AliasService interface {
	Shorten(ctx context.Context, req *domain.ShortenRequest, baseURL string) (domain.ShortenResponse, error)
	StoredURLs(ctx context.Context, baseURL string) ([]domain.StoredAlias, error)
	ForwardedURL(ctx context.Context, alias string) (string, error)
	DeleteStoredAlias(ctx context.Context, alias string) error
}

type Options struct {
	AllowedOrigins []string
}

// New returns the router serving POST /shorten, GET /urls, GET /{alias} and DELETE /{alias}.
func New(log *slog.Logger, svc AliasService, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwMetrics.New())
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post("/shorten", shorten.New(log, svc))
	router.Get("/urls", list.New(log, svc))
	router.Get(AliasPattern, redirect.New(log, svc))
	router.Delete(AliasPattern, delete.New(log, svc))

	return router
}
