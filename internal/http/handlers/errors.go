// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. Codes are lowercase snake_case; handlers select the most specific
// matching code and pass it to fail() with the corresponding status.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeGenerationFailed   = "generation_failed"
	ErrCodeExtractionFailed   = "extraction_failed"
	ErrCodeCreateFailed       = "create_failed"
	ErrCodeListFailed         = "list_failed"
	ErrCodeImportFailed       = "import_failed"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
