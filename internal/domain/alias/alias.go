// Package alias holds the core types of the shortener: stored alias records,
// shorten requests and their results.
package alias

import (
	"net/url"
	"strings"
)

// Record is a persisted mapping from an alias to the original URL.
// Records are write-once: there is no update, only create and hard delete.
type Record struct {
	ID          int64
	Alias       string
	OriginalURL string
}

// ShortenRequest asks for FullURL to be shortened. A nil CustomAlias means
// the alias is generated.
type ShortenRequest struct {
	FullURL     *url.URL
	CustomAlias *string
}

type ShortenResponse struct {
	ShortURL string
}

// StoredAlias is the display form of a Record.
type StoredAlias struct {
	Alias    string
	FullURL  string
	ShortURL string
}

// ValidationResult lists the reasons a request was rejected, in check order.
// An empty list means the request is valid.
type ValidationResult struct {
	Errors []string
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ShortURL joins the externally observed base URL (scheme://host[:port]) and an alias.
func ShortURL(baseURL, alias string) string {
	return strings.TrimRight(baseURL, "/") + "/" + alias
}

// Display converts r to its listing form relative to baseURL.
func (r Record) Display(baseURL string) StoredAlias {
	return StoredAlias{
		Alias:    r.Alias,
		FullURL:  r.OriginalURL,
		ShortURL: ShortURL(baseURL, r.Alias),
	}
}
