// Package rpcerrs provides the error handling framework for the streamrpc
// client. It defines error categories, codes, and typed wrappers so callers
// can distinguish setup mistakes, bad request data, remote faults, and
// transport failures without string matching.
package rpcerrs

// ErrorCategory represents different categories of errors that can occur
// in the streamrpc client.
type ErrorCategory string

const (
	// CategorySetup represents connection setup errors.
	CategorySetup ErrorCategory = "setup"
	// CategoryRequest represents request construction errors.
	CategoryRequest ErrorCategory = "request"
	// CategoryRemote represents JSON-RPC error objects returned by the server.
	CategoryRemote ErrorCategory = "remote"
	// CategoryTransport represents stream and codec failures.
	CategoryTransport ErrorCategory = "transport"
	// CategoryConnection represents connection lifecycle errors.
	CategoryConnection ErrorCategory = "connection"
	// CategoryTimeout represents call deadline errors.
	CategoryTimeout ErrorCategory = "timeout"
	// CategoryProtocol represents JSON-RPC contract violations.
	CategoryProtocol ErrorCategory = "protocol"
)

// ErrorCode represents specific error codes within each category.
type ErrorCode string

// Setup error codes.
const (
	ErrCodeInvalidInput   ErrorCode = "invalid_input"
	ErrCodeInvalidOutput  ErrorCode = "invalid_output"
	ErrCodeInvalidVersion ErrorCode = "invalid_version"
	ErrCodeInvalidOption  ErrorCode = "invalid_option"
)

// Request error codes.
const (
	ErrCodeInvalidMethod ErrorCode = "invalid_method"
	ErrCodeInvalidParams ErrorCode = "invalid_params"
	ErrCodeDuplicateID   ErrorCode = "duplicate_id"
)

// Remote error codes.
const (
	ErrCodeRemoteError ErrorCode = "remote_error"
)

// Transport error codes.
const (
	ErrCodeReadFailed   ErrorCode = "read_failed"
	ErrCodeWriteFailed  ErrorCode = "write_failed"
	ErrCodeDecodeFailed ErrorCode = "decode_failed"
	ErrCodeDialFailed   ErrorCode = "dial_failed"
)

// Connection error codes.
const (
	ErrCodeConnectionClosed ErrorCode = "connection_closed"
)

// Timeout error codes.
const (
	ErrCodeCallTimeout ErrorCode = "call_timeout"
)

// Protocol error codes.
const (
	ErrCodeMalformedResponse ErrorCode = "malformed_response"
	ErrCodeInvalidMessage    ErrorCode = "invalid_message"
)

// Metadata keys shared across error types.
const (
	MetadataKeyConnID   = "conn_id"
	MetadataKeyMethod   = "method"
	MetadataKeyRequest  = "request_id"
	MetadataKeyArgument = "argument"
)
