// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"
	// CodeInternal marks a failure recovered inside the conversion boundary.
	CodeInternal Code = "INTERNAL"

	// Conversion errors
	CodeSystemNotFound   Code = "SYSTEM_NOT_FOUND"
	CodeInvalidNumber    Code = "INVALID_NUMBER"
	CodeUnsupportedValue Code = "UNSUPPORTED_VALUE"
	CodeInvalidCharacter Code = "INVALID_CHARACTER"
	CodeNotImplemented   Code = "NOT_IMPLEMENTED"
	CodeInvalidDirection Code = "INVALID_DIRECTION"

	// Practice errors
	CodeProblemNotFound   Code = "PROBLEM_NOT_FOUND"
	CodeInvalidDifficulty Code = "INVALID_DIFFICULTY"

	// Library errors
	CodeInvalidFilter Code = "INVALID_FILTER"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// BadRequest - validation failures, bad input
	case CodeInvalidNumber,
		CodeInvalidCharacter,
		CodeInvalidDirection,
		CodeInvalidDifficulty,
		CodeInvalidFilter:
		return http.StatusBadRequest

	// NotFound - resource doesn't exist
	case CodeSystemNotFound,
		CodeProblemNotFound:
		return http.StatusNotFound

	// Sentinel conversions still render successfully.
	case CodeUnsupportedValue,
		CodeNotImplemented:
		return http.StatusOK

	default:
		return http.StatusInternalServerError
	}
}
