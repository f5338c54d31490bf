package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch matches any failed upstream request (transport error or non-200 status).
	ErrFetch = errors.New("upstream fetch failed")
	// ErrDecode matches any upstream body that is not valid JSON for the expected shape.
	ErrDecode = errors.New("upstream decode failed")
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// FetchError captures a failed request. StatusCode is 0 for transport failures.
type FetchError struct {
	Provider   string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	prefix := e.Provider
	if prefix == "" {
		prefix = "provider"
	}
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: GET %s: unexpected status %d: %s", prefix, e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: GET %s: unexpected status %d", prefix, e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: GET %s: %v", prefix, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: GET %s failed", prefix, e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// DecodeError captures a response body that could not be parsed.
type DecodeError struct {
	Provider string
	URL      string
	Err      error
}

func (e *DecodeError) Error() string {
	prefix := e.Provider
	if prefix == "" {
		prefix = "provider"
	}
	return fmt.Sprintf("%s: decode %s: %v", prefix, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// Reason returns a short, user-facing classification of a provider error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDecode):
		return "bad response"
	case errors.Is(err, ErrFetch):
		if fe, ok := AsFetchError(err); ok && fe.StatusCode > 0 {
			return fmt.Sprintf("status %d", fe.StatusCode)
		}
		return "network error"
	case errors.Is(err, ErrProviderUnavailable):
		return "no provider"
	default:
		return "error"
	}
}
