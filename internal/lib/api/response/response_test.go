package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	resp "shortener-service/internal/lib/api/response"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	type request struct {
		FullURL *string `json:"fullUrl" validate:"required,http_url"`
		Note    string  `validate:"max=3"`
	}

	notURL := "not a url"

	cases := []struct {
		name    string
		req     request
		wantMsg string
	}{
		{
			name:    "missing field",
			req:     request{},
			wantMsg: "field FullURL is a required field",
		},
		{
			name:    "invalid url",
			req:     request{FullURL: &notURL},
			wantMsg: "field FullURL is not a valid URL",
		},
		{
			name:    "several failures",
			req:     request{FullURL: &notURL, Note: "too long"},
			wantMsg: "field FullURL is not a valid URL, field Note is not valid",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validator.New().Struct(tc.req)
			require.Error(t, err)

			var validateErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validateErrs)

			got := resp.ValidationError(validateErrs)
			assert.Equal(t, resp.StatusError, got.Status)
			assert.Equal(t, tc.wantMsg, got.Error)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, resp.RenderJSON(rr, http.StatusNotFound, resp.Error("the alias x does not exist")))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "Error", "error": "the alias x does not exist"}, body)
}

func TestOK_OmitsError(t *testing.T) {
	raw, err := json.Marshal(resp.OK())
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"OK"}`, string(raw))
}
