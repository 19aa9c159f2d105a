package rpcerrs

import (
	"encoding/json"
	"fmt"
)

// RemoteError represents a JSON-RPC error object returned by the server.
// RPCCode is the integer code from the wire, distinct from the client-side
// ErrorCode returned by Code().
type RemoteError struct {
	*BaseError
	rpcCode int
	data    json.RawMessage
}

// NewRemoteError creates a new remote error from a server error object.
func NewRemoteError(
	rpcCode int,
	message string,
	data json.RawMessage,
) *RemoteError {
	e := &RemoteError{
		BaseError: NewBaseError(
			CategoryRemote,
			ErrCodeRemoteError,
			fmt.Sprintf("server error %d: %s", rpcCode, message),
			nil,
		),
		rpcCode: rpcCode,
		data:    data,
	}
	_ = e.WithMetadata("rpc_code", rpcCode)

	return e
}

// RPCCode returns the integer error code from the server.
func (e *RemoteError) RPCCode() int {
	return e.rpcCode
}

// Data returns the optional error data from the server, or nil.
func (e *RemoteError) Data() json.RawMessage {
	return e.data
}

// WithMethod adds method metadata to the error.
func (e *RemoteError) WithMethod(method string) *RemoteError {
	_ = e.WithMetadata(MetadataKeyMethod, method)

	return e
}
