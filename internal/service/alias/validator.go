package alias

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/storage"
)

const (
	msgNilRequest     = "request cannot be null"
	msgBlankAlias     = "aliases cannot be blank"
	msgAliasCharset   = "alias must only contain lowercase letters, numbers and dashes"
	msgAliasTooLong   = "the max size for any alias is %d characters"
	msgAliasReserved  = "The alias %s is not permitted as it clashes with other paths"
	msgAliasTaken     = "the alias %s is already mapped to a URL"
	msgFullURLMissing = "full url must be provided"
)

var allowedAlias = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// reservedAliases are path segments served by the API itself.
var reservedAliases = map[string]struct{}{
	"urls":  {},
	"error": {},
}

// AliasProvider looks an alias up in the store.
type AliasProvider interface {
	AliasByName(ctx context.Context, alias string) (domain.Record, error)
}

// Validator checks shorten requests. Errors accumulate in check order; the store is
// only consulted for a custom alias that passed every syntactic check.
type Validator struct {
	maxAliasSize int
	provider     AliasProvider
}

func NewValidator(maxAliasSize int, provider AliasProvider) *Validator {
	return &Validator{
		maxAliasSize: maxAliasSize,
		provider:     provider,
	}
}

// Validate returns the validation result for req. The error is non-nil only when the
// store lookup itself failed.
func (v *Validator) Validate(ctx context.Context, req *domain.ShortenRequest) (domain.ValidationResult, error) {
	const op = "alias.Validator.Validate"

	var errs []string

	if req == nil {
		return domain.ValidationResult{Errors: []string{msgNilRequest}}, nil
	}

	if req.CustomAlias != nil {
		customAlias := *req.CustomAlias

		if strings.TrimSpace(customAlias) == "" {
			errs = append(errs, msgBlankAlias)
		} else if !allowedAlias.MatchString(customAlias) {
			errs = append(errs, msgAliasCharset)
		}

		if aliasLength(customAlias) > v.maxAliasSize {
			errs = append(errs, fmt.Sprintf(msgAliasTooLong, v.maxAliasSize))
		}

		if _, reserved := reservedAliases[customAlias]; reserved {
			errs = append(errs, fmt.Sprintf(msgAliasReserved, customAlias))
		}

		if len(errs) == 0 {
			taken, err := v.exists(ctx, customAlias)
			if err != nil {
				return domain.ValidationResult{}, fmt.Errorf("%s: %w", op, err)
			}
			if taken {
				errs = append(errs, fmt.Sprintf(msgAliasTaken, customAlias))
			}
		}
	}

	if req.FullURL == nil {
		errs = append(errs, msgFullURLMissing)
	}

	return domain.ValidationResult{Errors: errs}, nil
}

func (v *Validator) exists(ctx context.Context, alias string) (bool, error) {
	_, err := v.provider.AliasByName(ctx, alias)
	if errors.Is(err, storage.ErrAliasNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// aliasLength counts UTF-16 code units, so a character outside the BMP counts as two.
func aliasLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
