package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized means the control plane rejected the cluster secret.
	// Workers stop polling when they see it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrJobTimeout means the caller's context expired before the job
	// reached a terminal status. The job itself keeps running.
	ErrJobTimeout = errors.New("job timed out waiting for a result")
	// ErrTooManyNetworkErrors means consecutive control-plane calls kept
	// failing and the SDK gave up.
	ErrTooManyNetworkErrors = errors.New("too many consecutive network errors")
)

// APIError is a non-2xx control-plane response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("control plane returned %d: %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("control plane returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// RejectionError carries the failure a handler returned (or the stall
// payload the control plane synthesized). Callers unwrap it from Call.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

// retryableStatus reports whether a status code is worth retrying.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		525: // TLS handshake failure seen from some proxies
		return true
	}
	return false
}
