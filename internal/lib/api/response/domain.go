package response

import (
	"net/http"

	"shortener-service/internal/domain/alias"
)

const msgInternal = "internal error"

// FromDomainError picks the status code and body for a service error. Messages of
// internal errors are never exposed.
func FromDomainError(err error) (int, Response) {
	switch alias.KindOf(err) {
	case alias.KindValidationFailed:
		return http.StatusBadRequest, Error(alias.MessageOf(err))
	case alias.KindNoSuchAlias:
		return http.StatusNotFound, Error(alias.MessageOf(err))
	default:
		return http.StatusInternalServerError, Error(msgInternal)
	}
}
