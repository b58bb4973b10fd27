package shorten

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	domain "shortener-service/internal/domain/alias"
	resp "shortener-service/internal/lib/api/response"
	"shortener-service/internal/lib/api/requesturl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Request is the POST /shorten body. Missing fields are left to the service's
// validation so every reason is reported together.
type Request struct {
	FullURL     *string `json:"fullUrl" validate:"omitnil,http_url"`
	CustomAlias *string `json:"customAlias"`
}

type Response struct {
	resp.Response
	ShortURL string `json:"shortUrl,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v3
type AliasShortener interface {
	Shorten(ctx context.Context, req *domain.ShortenRequest, baseURL string) (domain.ShortenResponse, error)
}

func New(log *slog.Logger, shortener AliasShortener) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.alias.shorten.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req *Request

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", slog.String("error", err.Error()))
			render(log, w, http.StatusBadRequest, resp.Error("invalid request body"))
			return
		}

		log.Info("request decoded", slog.Any("req", req))

		var shortenReq *domain.ShortenRequest
		if req != nil {
			if err = validate.Struct(req); err != nil {
				var validateErrs validator.ValidationErrors
				if !errors.As(err, &validateErrs) {
					log.Error("failed to validate request", slog.String("error", err.Error()))
					render(log, w, http.StatusInternalServerError, resp.Error("internal error"))
					return
				}

				log.Info("invalid request", slog.String("error", err.Error()))
				render(log, w, http.StatusBadRequest, resp.ValidationError(validateErrs))
				return
			}

			shortenReq, err = toDomain(req)
			if err != nil {
				log.Info("invalid full url", slog.String("error", err.Error()))
				render(log, w, http.StatusBadRequest, resp.Error("field FullURL is not a valid URL"))
				return
			}
		}

		res, err := shortener.Shorten(r.Context(), shortenReq, requesturl.Base(r))
		if err != nil {
			status, body := resp.FromDomainError(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to shorten url", slog.String("error", err.Error()))
			} else {
				log.Info("shorten request rejected", slog.String("reason", body.Error))
			}

			render(log, w, status, body)
			return
		}

		log.Info("url shortened", slog.String("short_url", res.ShortURL))

		render(log, w, http.StatusOK, Response{
			Response: resp.OK(),
			ShortURL: res.ShortURL,
		})
	}
}

func toDomain(req *Request) (*domain.ShortenRequest, error) {
	out := &domain.ShortenRequest{CustomAlias: req.CustomAlias}

	if req.FullURL != nil {
		u, err := url.Parse(*req.FullURL)
		if err != nil {
			return nil, err
		}
		out.FullURL = u
	}

	return out, nil
}

func render(log *slog.Logger, w http.ResponseWriter, status int, body any) {
	if err := resp.RenderJSON(w, status, body); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
