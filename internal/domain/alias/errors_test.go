package alias

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "Validation failure",
			err:  ValidationFailed([]string{"aliases cannot be blank"}),
			want: KindValidationFailed,
		},
		{
			name: "Wrapped no such alias",
			err:  fmt.Errorf("alias.Service.DeleteStoredAlias: %w", NoSuchAlias("abc")),
			want: KindNoSuchAlias,
		},
		{
			name: "Internal",
			err:  Internal("boom", errors.New("disk full")),
			want: KindInternal,
		},
		{
			name: "Plain error",
			err:  errors.New("database is locked"),
			want: KindInternal,
		},
		{
			name: "Nil",
			err:  nil,
			want: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationFailed_JoinsReasons(t *testing.T) {
	err := ValidationFailed([]string{
		"alias must only contain lowercase letters, numbers and dashes",
		"the max size for any alias is 5 characters",
	})

	want := "alias must only contain lowercase letters, numbers and dashes, the max size for any alias is 5 characters"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("op: %w", NoSuchAlias("gone"))

	if got := MessageOf(wrapped); got != "the alias gone does not exist" {
		t.Errorf("MessageOf() = %q", got)
	}
	if got := MessageOf(errors.New("plain")); got != "" {
		t.Errorf("MessageOf(plain) = %q, want empty", got)
	}
}

func TestInternal_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("op: %w", Internal("could not allocate a free alias", cause))

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got != "op: could not allocate a free alias: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRecord_Display(t *testing.T) {
	r := Record{ID: 7, Alias: "a1", OriginalURL: "http://one"}

	got := r.Display("http://localhost:8080/")
	want := StoredAlias{Alias: "a1", FullURL: "http://one", ShortURL: "http://localhost:8080/a1"}

	if got != want {
		t.Errorf("Display() = %+v, want %+v", got, want)
	}
}

func TestValidationResult_Valid(t *testing.T) {
	if !(ValidationResult{}).Valid() {
		t.Error("empty result should be valid")
	}
	if (ValidationResult{Errors: []string{"full url must be provided"}}).Valid() {
		t.Error("result with errors should be invalid")
	}
}
