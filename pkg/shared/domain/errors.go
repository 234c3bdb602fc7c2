package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResearcherNotFound returned when a researcher id is absent from local storage
var ErrResearcherNotFound = errors.New("Researcher not found")

// UpstreamError remote profile service unreachable or responded non-2xx,
// StatusCode holds the upstream status when known, 503 for transport failures
type UpstreamError struct {
	StatusCode int
	Message    string
}

// NewUpstreamError constructor
func NewUpstreamError(statusCode int, message string) *UpstreamError {
	if statusCode <= 0 {
		statusCode = http.StatusServiceUnavailable
	}
	return &UpstreamError{StatusCode: statusCode, Message: message}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.StatusCode, e.Message)
}

// HTTPStatusFromError map domain error to http status code
func HTTPStatusFromError(err error) int {
	if errors.Is(err, ErrResearcherNotFound) {
		return http.StatusNotFound
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}

	return http.StatusInternalServerError
}
