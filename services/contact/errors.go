package contact

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no relay endpoint is configured.
var ErrNotConfigured = errors.New("contact relay endpoint not configured")

// Relay failure reasons, echoed back to the contact page as a query param.
const (
	ReasonUpstream = "upstream"
	ReasonNetwork  = "network"
)

// RelayError indicates the submission could not be delivered to the form
// service.
type RelayError struct {
	Reason string
	Cause  error
}

func (e *RelayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("contact relay failed (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("contact relay failed (%s)", e.Reason)
}

func (e *RelayError) Unwrap() error {
	return e.Cause
}
