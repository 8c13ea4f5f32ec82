package common

import (
	"errors"
	"net/http"
)

// ErrorResponse is the API error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code, a user-facing message and an HTTP status.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError signals that the subject is not a valid member of the
// requested category (not a food / not an alcoholic drink). The message
// comes from the model and is surfaced to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Predefined error codes.
const (
	// client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeInvalidSubject   = "INVALID_SUBJECT"    // 400
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"       // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"  // 503
	ErrCodeModelsExhausted    = "ALL_MODELS_EXHAUSTED" // 503
)

// Predefined errors. User-facing messages are Korean, matching the
// application locale.
var (
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "잘못된 요청입니다.", http.StatusBadRequest, nil)
	ErrInvalidSubject   = NewError(ErrCodeInvalidSubject, "음식 또는 술 이름을 입력해주세요.", http.StatusBadRequest, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "요청하신 리소스를 찾을 수 없습니다.", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "지원하지 않는 요청 방식입니다.", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "요청 시간이 초과되었습니다.", http.StatusRequestTimeout, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "서버 내부 오류가 발생했습니다.", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "서비스를 일시적으로 사용할 수 없습니다.", http.StatusServiceUnavailable, nil)

	// Every configured model failed with a transient condition.
	ErrAllModelsExhausted = NewError(ErrCodeModelsExhausted, "문제가 발생했습니다. 잠시 후 다시 시도해주세요.", http.StatusServiceUnavailable, nil)
)
