package redirect_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/http-server/handlers/redirect"
	"shortener-service/internal/http-server/handlers/redirect/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedirectHandler(t *testing.T) {
	cases := []struct {
		name       string
		alias      string
		url        string
		mockError  error
		called     bool
		statusCode int
	}{
		{
			name:       "Success",
			alias:      "test_alias",
			url:        "https://www.google.com/search?q=go",
			called:     true,
			statusCode: http.StatusFound,
		},
		{
			name:       "Unknown alias",
			alias:      "missing",
			mockError:  domain.NoSuchAlias("missing"),
			called:     true,
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Storage failure",
			alias:      "test_alias",
			mockError:  domain.Internal("failed to get alias", errors.New("database error")),
			called:     true,
			statusCode: http.StatusInternalServerError,
		},
		{
			name:       "Empty alias",
			alias:      "",
			statusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			forwarderMock := mocks.NewMockURLForwarder(t)
			if tc.called {
				forwarderMock.On("ForwardedURL", mock.Anything, tc.alias).
					Return(tc.url, tc.mockError).
					Once()
			}

			handler := redirect.New(slog.New(slog.NewTextHandler(io.Discard, nil)), forwarderMock)

			req, err := http.NewRequest(http.MethodGet, "/"+tc.alias, nil)
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("alias", tc.alias)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			if tc.statusCode == http.StatusFound {
				assert.Equal(t, tc.url, rr.Header().Get("Location"))
			}
		})
	}
}
