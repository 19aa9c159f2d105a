package rpcerrs

// TransportError represents a stream or codec failure. It is fatal to the
// listener loop: all pending calls observe it through their rendezvous.
type TransportError struct {
	*BaseError
}

// NewTransportError creates a new transport error.
func NewTransportError(
	code ErrorCode,
	message string,
	cause error,
) *TransportError {
	return &TransportError{
		BaseError: NewBaseError(CategoryTransport, code, message, cause),
	}
}

// ConnectionClosedError represents a call failed by connection teardown.
type ConnectionClosedError struct {
	*BaseError
}

// NewConnectionClosedError creates a new connection closed error.
func NewConnectionClosedError(message string, cause error) *ConnectionClosedError {
	return &ConnectionClosedError{
		BaseError: NewBaseError(
			CategoryConnection,
			ErrCodeConnectionClosed,
			message,
			cause,
		),
	}
}

// TimeoutError represents a call that did not complete within its deadline.
type TimeoutError struct {
	*BaseError
}

// NewTimeoutError creates a new timeout error.
func NewTimeoutError(message string, cause error) *TimeoutError {
	return &TimeoutError{
		BaseError: NewBaseError(
			CategoryTimeout,
			ErrCodeCallTimeout,
			message,
			cause,
		),
	}
}

// WithMethod adds method metadata to the error.
func (e *TimeoutError) WithMethod(method string) *TimeoutError {
	_ = e.WithMetadata(MetadataKeyMethod, method)

	return e
}

// ProtocolError represents a JSON-RPC contract violation, such as a
// response carrying neither result nor error.
type ProtocolError struct {
	*BaseError
}

// NewProtocolError creates a new protocol error.
func NewProtocolError(
	code ErrorCode,
	message string,
	cause error,
) *ProtocolError {
	return &ProtocolError{
		BaseError: NewBaseError(CategoryProtocol, code, message, cause),
	}
}
