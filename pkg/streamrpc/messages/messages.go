// Package messages defines the JSON-RPC 2.0 wire types and the request
// builder used by the streamrpc client.
package messages

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Version is the only protocol version this client speaks.
const Version = "2.0"

// Well-known JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an outbound JSON-RPC request or notification.
// A request with an empty ID is a notification: the server must not reply
// and the caller does not block.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id,omitempty"`
}

// IsNotification reports whether the request carries no identifier.
func (r *Request) IsNotification() bool {
	return r.ID == ""
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Inbound is one decoded server-to-client message. A message with a non-null
// id is a response to an outstanding call; anything else is a broadcast.
type Inbound struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsResponse reports whether the message carries a non-null identifier and
// should be correlated against a pending call.
func (m *Inbound) IsResponse() bool {
	return len(m.ID) != 0 && !bytes.Equal(m.ID, []byte("null"))
}

// HasResult reports whether the result member is present. An explicit JSON
// null result still counts as present.
func (m *Inbound) HasResult() bool {
	return len(m.Result) != 0
}

// IDKey normalizes the message identifier to a registry key. String ids are
// unquoted, numeric ids keep their literal text. Returns false for a missing
// or null id.
func (m *Inbound) IDKey() (string, bool) {
	if !m.IsResponse() {
		return "", false
	}
	if s, err := strconv.Unquote(string(m.ID)); err == nil {
		return s, true
	}

	return string(m.ID), true
}
