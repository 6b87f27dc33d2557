package chiarpc

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned before any process invocation when a caller
// asks for an RPC category outside the supported set.
var ErrInvalidCategory = errors.New("unsupported RPC category")

// Error represents a domain failure reported by the wallet itself, i.e. a
// response with "success": false. The wallet's message is carried verbatim.
type Error struct {
	Endpoint string
	Message  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wallet %s: %s", e.Endpoint, e.Message)
}

// GatewayError represents a failure of the external wallet process itself:
// it could not be spawned, exited with an error or produced output that is
// not valid JSON.
type GatewayError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("wallet gateway %s: %v", e.Endpoint, e.Err)
}

// Unwrap implements the error wrapper interface.
func (e *GatewayError) Unwrap() error {
	return e.Err
}
