// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/numerals.space/internal/platform/errors"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the structured localization key when available.
// Domain errors are keyed by their code in the errors catalog.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return strings.TrimSpace(appErr.Key)
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		return string(domainErr.Code)
	}
	return ""
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case KindInvalidInput:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		case KindUnavailable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusInternalServerError
		}
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		status := domainErr.Code.HTTPStatus()
		if status < http.StatusBadRequest {
			// A failure carrying a sentinel code is still a failure.
			return http.StatusUnprocessableEntity
		}
		return status
	}
	return http.StatusInternalServerError
}
