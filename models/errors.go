package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	// ErrCodePrimaryIncomplete marks a primary-library attempt that ran but
	// returned missing or empty fields. Non-fatal: it triggers the fallback
	// path and never reaches callers.
	ErrCodePrimaryIncomplete = "PRIMARY_INCOMPLETE"

	// ErrCodeFetchFailed marks a transport failure (DNS, timeout, non-2xx,
	// decompression) during the fallback fetch. Fatal for the call.
	ErrCodeFetchFailed = "FETCH_FAILED"

	// ErrCodeIncomplete marks a fallback extraction that ran but still left
	// one or more fields empty. Fatal for the call.
	ErrCodeIncomplete = "EXTRACTION_INCOMPLETE"

	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ExtractError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ExtractError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError creates a new ExtractError.
func NewExtractError(code, message string, err error) *ExtractError {
	return &ExtractError{Code: code, Message: message, Err: err}
}

// ErrorMessage normalizes any error into the flat string carried by an
// ErrorResult. For an ExtractError the wrapped cause is included so callers
// see e.g. the HTTP status that failed the fetch.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if ee, ok := err.(*ExtractError); ok {
		if ee.Err != nil {
			return fmt.Sprintf("%s: %v", ee.Message, ee.Err)
		}
		return ee.Message
	}
	return err.Error()
}
