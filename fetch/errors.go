package fetch

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrNoAPIKey is returned before any remote call when the fetch cycle has no
// YouTube API key to work with.
var ErrNoAPIKey = errors.New("missing YouTube API key")

// RequestError is a non-success response from a remote endpoint, carrying
// the message the endpoint reported.
type RequestError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed: %s", e.Endpoint, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(endpoint string, err error) *RequestError {
	return &RequestError{
		Endpoint: endpoint,
		Message:  remoteMessage(err),
		Err:      err,
	}
}

// remoteMessage prefers the API's own error message over the transport
// error text.
func remoteMessage(err error) string {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Message != "" {
		return gErr.Message
	}

	return err.Error()
}
