package rpcerrs

import "errors"

// AsSetupError extracts a SetupError from an error chain.
func AsSetupError(err error) (*SetupError, bool) {
	var target *SetupError
	ok := errors.As(err, &target)

	return target, ok
}

// AsRequestDataError extracts a RequestDataError from an error chain.
func AsRequestDataError(err error) (*RequestDataError, bool) {
	var target *RequestDataError
	ok := errors.As(err, &target)

	return target, ok
}

// AsRemoteError extracts a RemoteError from an error chain.
func AsRemoteError(err error) (*RemoteError, bool) {
	var target *RemoteError
	ok := errors.As(err, &target)

	return target, ok
}

// AsTransportError extracts a TransportError from an error chain.
func AsTransportError(err error) (*TransportError, bool) {
	var target *TransportError
	ok := errors.As(err, &target)

	return target, ok
}

// IsConnectionClosed reports whether the error chain contains a
// ConnectionClosedError.
func IsConnectionClosed(err error) bool {
	var target *ConnectionClosedError

	return errors.As(err, &target)
}

// IsTimeout reports whether the error chain contains a TimeoutError.
func IsTimeout(err error) bool {
	var target *TimeoutError

	return errors.As(err, &target)
}

// CategoryOf returns the category of an error, or an empty category if the
// error is not a streamrpc error.
func CategoryOf(err error) ErrorCategory {
	var rpcErr RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Category()
	}

	return ""
}
