package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitializedAccess is returned when headers, serialization or
	// resource handles are used before initialization has succeeded.
	ErrUninitializedAccess = errors.New("api facade is not initialized")

	// ErrNetwork matches any *NetworkError.
	ErrNetwork = errors.New("network error")

	// ErrProtocol matches any *ProtocolError.
	ErrProtocol = errors.New("protocol error")
)

// NetworkError is a handshake transport failure (connection refused,
// timeout, cancelled context).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("handshake %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// ProtocolError is a handshake response that is not the expected
// {"csrftoken": "..."} document.
type ProtocolError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("handshake %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("handshake %s: %s", e.URL, e.Reason)
}

func (e *ProtocolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProtocol}
	}
	return []error{ErrProtocol, e.Err}
}
