package alias_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/service/alias"
	"shortener-service/internal/storage"
	"shortener-service/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u
}

func TestValidator_Validate(t *testing.T) {
	const maxSize = 10

	cases := []struct {
		name        string
		fullURL     string
		customAlias *string
		// lookup is the store result for the duplicate check; nil means no lookup is expected.
		lookup   error
		taken    bool
		wantErrs []string
	}{
		{
			name:    "generated alias",
			fullURL: "http://example.com",
		},
		{
			name:        "free custom alias",
			fullURL:     "http://example.com",
			customAlias: ptr("my-alias"),
			lookup:      storage.ErrAliasNotFound,
		},
		{
			name:        "underscores and upper case are allowed",
			fullURL:     "http://example.com",
			customAlias: ptr("My_Alias"),
			lookup:      storage.ErrAliasNotFound,
		},
		{
			name:        "alias already stored",
			fullURL:     "http://example.com",
			customAlias: ptr("taken"),
			taken:       true,
			wantErrs:    []string{"the alias taken is already mapped to a URL"},
		},
		{
			name:        "empty alias",
			fullURL:     "http://example.com",
			customAlias: ptr(""),
			wantErrs:    []string{"aliases cannot be blank"},
		},
		{
			name:        "whitespace alias",
			fullURL:     "http://example.com",
			customAlias: ptr("   "),
			wantErrs:    []string{"aliases cannot be blank"},
		},
		{
			name:        "disallowed character",
			fullURL:     "http://example.com",
			customAlias: ptr("Bad!"),
			wantErrs:    []string{"alias must only contain lowercase letters, numbers and dashes"},
		},
		{
			name:        "non ascii letter",
			fullURL:     "http://example.com",
			customAlias: ptr("café"),
			wantErrs:    []string{"alias must only contain lowercase letters, numbers and dashes"},
		},
		{
			name:        "too long",
			fullURL:     "http://example.com",
			customAlias: ptr("abcdefghijk"),
			wantErrs:    []string{"the max size for any alias is 10 characters"},
		},
		{
			name:        "reserved urls",
			fullURL:     "http://example.com",
			customAlias: ptr("urls"),
			wantErrs:    []string{"The alias urls is not permitted as it clashes with other paths"},
		},
		{
			name:        "reserved error",
			fullURL:     "http://example.com",
			customAlias: ptr("error"),
			wantErrs:    []string{"The alias error is not permitted as it clashes with other paths"},
		},
		{
			name:     "missing full url",
			wantErrs: []string{"full url must be provided"},
		},
		{
			name:        "errors accumulate in check order",
			customAlias: ptr("bad alias!!"),
			wantErrs: []string{
				"alias must only contain lowercase letters, numbers and dashes",
				"the max size for any alias is 10 characters",
				"full url must be provided",
			},
		},
		{
			name:        "blank and too long",
			fullURL:     "http://example.com",
			customAlias: ptr(strings.Repeat(" ", 11)),
			wantErrs: []string{
				"aliases cannot be blank",
				"the max size for any alias is 10 characters",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			storageMock := mocks.NewMockStorage(t)

			if tc.taken {
				storageMock.On("AliasByName", mock.Anything, *tc.customAlias).
					Return(domain.Record{ID: 1, Alias: *tc.customAlias, OriginalURL: "http://other.com"}, nil).
					Once()
			} else if tc.lookup != nil {
				storageMock.On("AliasByName", mock.Anything, *tc.customAlias).
					Return(domain.Record{}, tc.lookup).
					Once()
			}

			req := &domain.ShortenRequest{CustomAlias: tc.customAlias}
			if tc.fullURL != "" {
				req.FullURL = mustURL(t, tc.fullURL)
			}

			v := alias.NewValidator(maxSize, storageMock)

			result, err := v.Validate(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tc.wantErrs, result.Errors)
			assert.Equal(t, len(tc.wantErrs) == 0, result.Valid())
		})
	}
}

func TestValidator_NilRequest(t *testing.T) {
	v := alias.NewValidator(10, mocks.NewMockStorage(t))

	result, err := v.Validate(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"request cannot be null"}, result.Errors)
}

func TestValidator_StoreFailure(t *testing.T) {
	storageMock := mocks.NewMockStorage(t)
	storageMock.On("AliasByName", mock.Anything, "my-alias").
		Return(domain.Record{}, errors.New("database is locked")).
		Once()

	v := alias.NewValidator(10, storageMock)

	_, err := v.Validate(context.Background(), &domain.ShortenRequest{
		FullURL:     mustURL(t, "http://example.com"),
		CustomAlias: ptr("my-alias"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestValidator_LengthCountsUTF16Units(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  []string
	}{
		{
			name:  "astral characters count twice",
			alias: "😀😀😀",
			want: []string{
				"alias must only contain lowercase letters, numbers and dashes",
				"the max size for any alias is 5 characters",
			},
		},
		{
			name:  "astral characters within limit",
			alias: "😀😀",
			want:  []string{"alias must only contain lowercase letters, numbers and dashes"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := alias.NewValidator(5, mocks.NewMockStorage(t))

			result, err := v.Validate(context.Background(), &domain.ShortenRequest{
				FullURL:     mustURL(t, "http://example.com"),
				CustomAlias: ptr(tc.alias),
			})
			require.NoError(t, err)

			assert.Equal(t, tc.want, result.Errors)
		})
	}
}
