package list

import (
	"context"
	"log/slog"
	"net/http"

	domain "shortener-service/internal/domain/alias"
	resp "shortener-service/internal/lib/api/response"
	"shortener-service/internal/lib/api/requesturl"

	"github.com/go-chi/chi/v5/middleware"
)

// Item is one entry of the GET /urls array.
type Item struct {
	Alias    string `json:"alias"`
	FullURL  string `json:"fullUrl"`
	ShortURL string `json:"shortUrl"`
}

//go:generate go run github.com/vektra/mockery/v3
type URLLister interface {
	StoredURLs(ctx context.Context, baseURL string) ([]domain.StoredAlias, error)
}

func New(log *slog.Logger, lister URLLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.alias.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stored, err := lister.StoredURLs(r.Context(), requesturl.Base(r))
		if err != nil {
			log.Error("failed to list urls", slog.String("error", err.Error()))

			status, body := resp.FromDomainError(err)
			if err = resp.RenderJSON(w, status, body); err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		items := make([]Item, 0, len(stored))
		for _, s := range stored {
			items = append(items, Item{
				Alias:    s.Alias,
				FullURL:  s.FullURL,
				ShortURL: s.ShortURL,
			})
		}

		log.Debug("urls listed", slog.Int("count", len(items)))

		if err = resp.RenderJSON(w, http.StatusOK, items); err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
