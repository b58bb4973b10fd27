package delete

import (
	"context"
	"log/slog"
	"net/http"

	resp "shortener-service/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type AliasDeleter interface {
	DeleteStoredAlias(ctx context.Context, alias string) error
}

func New(log *slog.Logger, deleter AliasDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.alias.delete.New"

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

		log = log.With(slog.String("alias", alias))

		err := deleter.DeleteStoredAlias(r.Context(), alias)
		if err != nil {
			status, body := resp.FromDomainError(err)
			if status == http.StatusNotFound {
				log.Info("alias not found")
			} else {
				log.Error("failed to delete alias", slog.String("error", err.Error()))
			}

			err = resp.RenderJSON(w, status, body)
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("alias deleted")

		w.WriteHeader(http.StatusNoContent)
	}
}
