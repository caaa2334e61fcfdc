package schedule

import "fmt"

// Validation error codes for rejected query parameters.
const (
	CodeInvalidRange  = "invalidRange"
	CodeRangeTooLarge = "rangeTooLarge"
)

// ValidationError indicates a client-supplied query window was rejected.
// The message is safe to return verbatim in a 400 body.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewInvalidRangeError(msg string) error {
	return &ValidationError{Code: CodeInvalidRange, Message: msg}
}

func NewRangeTooLargeError(msg string) error {
	return &ValidationError{Code: CodeRangeTooLarge, Message: msg}
}

// Upstream error codes distinguishing a degraded provider from an
// unreachable one.
const (
	CodeUpstreamUnavailable = "upstreamUnavailable"
	CodeUpstreamUnreachable = "upstreamUnreachable"
)

// UpstreamError indicates the booking provider could not serve the request.
// Both variants degrade to the fallback envelope rather than a bare 5xx.
type UpstreamError struct {
	Code    string
	Status  int // upstream HTTP status when Code is CodeUpstreamUnavailable
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

func NewUpstreamUnavailableError(status int) error {
	return &UpstreamError{
		Code:    CodeUpstreamUnavailable,
		Status:  status,
		Message: fmt.Sprintf("upstream returned status %d", status),
	}
}

func NewUpstreamUnreachableError(cause error) error {
	return &UpstreamError{
		Code:    CodeUpstreamUnreachable,
		Message: "upstream request failed",
		Cause:   cause,
	}
}
