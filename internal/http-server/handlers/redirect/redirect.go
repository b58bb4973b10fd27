package redirect

import (
	"context"
	"log/slog"
	"net/http"

	resp "shortener-service/internal/lib/api/response"
	"shortener-service/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type URLForwarder interface {
	ForwardedURL(ctx context.Context, alias string) (string, error)
}

func New(log *slog.Logger, forwarder URLForwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.redirect.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		alias := chi.URLParam(r, "alias")
		if alias == "" {
			log.Error("alias parameter is missing")
			err := resp.RenderJSON(w, http.StatusBadRequest, resp.Error("alias parameter is required"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		originalURL, err := forwarder.ForwardedURL(r.Context(), alias)
		if err != nil {
			status, body := resp.FromDomainError(err)
			if status == http.StatusNotFound {
				log.Info("alias not found", slog.String("alias", alias))
			} else {
				log.Error("failed to get original URL", slog.String("error", err.Error()))
			}

			err = resp.RenderJSON(w, status, body)
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		http.Redirect(w, r, originalURL, http.StatusFound)
		log.Info("redirected", slog.String("alias", alias), slog.String("original_url", originalURL))

		metrics.RedirectsTotal.Inc()
	}
}
