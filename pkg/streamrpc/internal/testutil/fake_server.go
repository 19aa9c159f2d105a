// Package testutil provides a scripted JSON-RPC server for hermetic tests.
// It speaks over one side of an in-memory pipe and gives tests direct
// control over reply content and ordering.
package testutil

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/conneroisu/streamrpc/pkg/streamrpc/messages"
)

// FakeServer simulates the remote side of a connection. Tests read requests
// and send replies explicitly, so reply order, stale identifiers, and
// malformed payloads are all expressible.
type FakeServer struct {
	conn net.Conn
	dec  *json.Decoder

	mu  sync.Mutex
	enc *json.Encoder
}

// NewFakeServer wraps the server side of a duplex stream.
func NewFakeServer(conn net.Conn) *FakeServer {
	return &FakeServer{
		conn: conn,
		dec:  json.NewDecoder(conn),
		enc:  json.NewEncoder(conn),
	}
}

// ReadRequest decodes the next request sent by the client under test.
func (s *FakeServer) ReadRequest() (*messages.Request, error) {
	var req messages.Request
	if err := s.dec.Decode(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// Reply sends a success response for the given request identifier.
func (s *FakeServer) Reply(id string, result any) error {
	return s.Send(map[string]any{
		"jsonrpc": messages.Version,
		"id":      id,
		"result":  result,
	})
}

// ReplyError sends an error response for the given request identifier.
func (s *FakeServer) ReplyError(id string, code int, message string) error {
	return s.Send(map[string]any{
		"jsonrpc": messages.Version,
		"id":      id,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

// Send writes an arbitrary message: broadcasts, stale replies, or payloads
// that violate the response contract.
func (s *FakeServer) Send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enc.Encode(v)
}

// SendRaw writes pre-encoded bytes, including ones that are not JSON.
func (s *FakeServer) SendRaw(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Write(data)

	return err
}

// Echo serves n requests, replying to each with its first positional
// parameter (or null), then returns. Notifications do not count toward n.
func (s *FakeServer) Echo(n int) error {
	for served := 0; served < n; {
		req, err := s.ReadRequest()
		if err != nil {
			return err
		}
		if req.IsNotification() {
			continue
		}

		var result any
		if params, ok := req.Params.([]any); ok && len(params) > 0 {
			result = params[0]
		}
		if err := s.Reply(req.ID, result); err != nil {
			return err
		}
		served++
	}

	return nil
}

// Close closes the server side of the stream.
func (s *FakeServer) Close() error {
	return s.conn.Close()
}
