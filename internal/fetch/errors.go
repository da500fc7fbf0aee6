package fetch

import (
	"errors"
	"fmt"
)

// Kind tags the variant carried by an Error.
type Kind int

const (
	// KindNetwork is a transport-level failure carrying a free-text message.
	KindNetwork Kind = iota
	// KindServer is a remote failure carrying an HTTP-style status code.
	KindServer
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Values carried by simulated failures.
const (
	NetworkFailureMessage = "Connection failed"
	ServerFailureStatus   = 500
)

// Error is the typed failure of a simulated fetch. Exactly one of Message
// (KindNetwork) or StatusCode (KindServer) is meaningful.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
}

// NewNetworkError returns a KindNetwork failure.
func NewNetworkError(message string) *Error {
	return &Error{Kind: KindNetwork, Message: message}
}

// NewServerError returns a KindServer failure.
func NewServerError(statusCode int) *Error {
	return &Error{Kind: KindServer, StatusCode: statusCode}
}

// Error renders the failure for display.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return "Network Error: " + e.Message
	case KindServer:
		return fmt.Sprintf("Server Error: Status Code %d", e.StatusCode)
	default:
		return fmt.Sprintf("fetch error (%s)", e.Kind)
	}
}

// AsError extracts a typed fetch failure from err's chain.
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsNetworkError reports whether err is a KindNetwork failure.
func IsNetworkError(err error) bool {
	fe, ok := AsError(err)
	return ok && fe.Kind == KindNetwork
}

// IsServerError reports whether err is a KindServer failure.
func IsServerError(err error) bool {
	fe, ok := AsError(err)
	return ok && fe.Kind == KindServer
}
