package httpclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/url"
)

// StatusError reports a response whose status is outside 200-299.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("Fetch error status: %d", e.Code)
}

// Kind names the error class for metrics.
func (e *StatusError) Kind() string { return "status" }

// ClientError reports a 4xx status.
func (e *StatusError) ClientError() bool { return e.Code >= 400 && e.Code < 500 }

// ServerError reports a 5xx status.
func (e *StatusError) ServerError() bool { return e.Code >= 500 }

// ClassifyStatus returns nil for a 2xx code and a *StatusError otherwise.
func ClassifyStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{Code: code}
}

// IsStatus reports whether err is a *StatusError.
func IsStatus(err error) bool {
	var se *StatusError
	return stderrors.As(err, &se)
}

// StatusCode returns the status carried by a *StatusError in err's chain.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// IsTransport reports whether err came from the network layer rather than
// from an HTTP response.
func IsTransport(err error) bool {
	if err == nil || IsStatus(err) {
		return false
	}
	var ue *url.Error
	if stderrors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return stderrors.As(err, &ne)
}

// IsTimeout reports whether err is a deadline or network timeout.
func IsTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(err, &ne) && ne.Timeout()
}
