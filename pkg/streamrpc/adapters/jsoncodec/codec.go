// Package jsoncodec provides the encoding/json wire codec adapter.
//
// A single persistent json.Decoder owns all read-side buffering for the
// connection's lifetime, so decoding one value never corrupts the next:
// bytes the decoder reads ahead stay in its buffer for the following
// ReadMessage. Writes go through one json.Encoder guarded by a mutex.
package jsoncodec

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/ports"
)

// Codec implements ports.Codec over an io.Reader / io.Writer pair.
type Codec struct {
	dec *json.Decoder
	enc *json.Encoder

	writeMu sync.Mutex

	input  io.Reader
	output io.Writer
}

// Verify interface compliance at compile time.
var _ ports.Codec = (*Codec)(nil)

// New creates a codec bound to the given streams.
func New(input io.Reader, output io.Writer) *Codec {
	return &Codec{
		dec:    json.NewDecoder(input),
		enc:    json.NewEncoder(output),
		input:  input,
		output: output,
	}
}

// WriteMessage implements ports.Codec. Concurrent callers are serialized so
// two requests never interleave on the output stream.
func (c *Codec) WriteMessage(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.enc.Encode(v); err != nil {
		return rpcerrs.NewTransportError(
			rpcerrs.ErrCodeWriteFailed,
			"encode message",
			err,
		)
	}

	return nil
}

// ReadMessage implements ports.Codec. It returns exactly one JSON value.
// io.EOF passes through unwrapped so the listener can tell a clean close
// from a decode failure.
func (c *Codec) ReadMessage() (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, rpcerrs.NewTransportError(
			rpcerrs.ErrCodeDecodeFailed,
			"decode message",
			err,
		)
	}

	return raw, nil
}

// Close implements ports.Codec. Streams that are not io.Closer are left
// alone; a single duplex stream used for both directions is closed once.
func (c *Codec) Close() error {
	out, _ := c.output.(io.Closer)
	in, _ := c.input.(io.Closer)
	if in == out {
		in = nil
	}

	var firstErr error
	if out != nil {
		if err := out.Close(); err != nil {
			firstErr = err
		}
	}
	if in != nil {
		if err := in.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
