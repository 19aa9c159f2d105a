// Package streamrpc provides the public API for the streamrpc JSON-RPC 2.0
// client. This is the main entry point for library users.
package streamrpc

import (
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/adapters/jsoncodec"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/calling"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/messages"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/options"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/ports"
)

// Public type aliases for convenience.
type (
	Keyword     = messages.Keyword
	ErrorObject = messages.ErrorObject
	Options     = options.Options
)

// Conn is a JSON-RPC 2.0 client connection over a duplex byte stream.
// One background listener goroutine owns the input stream; any number of
// caller goroutines may issue Call and Notify concurrently.
type Conn struct {
	id     string
	opts   *options.Options
	codec  ports.Codec
	calls  *calling.Service
	logger zerolog.Logger

	closeOnce    sync.Once
	closing      chan struct{}
	listenerDone chan struct{}
}

// Open validates the setup parameters, starts the listener loop, and
// returns a live connection. input and output may be the two halves of any
// duplex byte stream: a socket, a pipe pair, or in-memory buffers.
func Open(input io.Reader, output io.Writer, opts *options.Options) (*Conn, error) {
	if input == nil {
		return nil, rpcerrs.NewSetupError(
			rpcerrs.ErrCodeInvalidInput,
			"input", "io.Reader", "nil",
		)
	}
	if output == nil {
		return nil, rpcerrs.NewSetupError(
			rpcerrs.ErrCodeInvalidOutput,
			"output", "io.Writer", "nil",
		)
	}

	return NewConn(jsoncodec.New(input, output), opts)
}

// NewConn starts a connection over a custom codec. Most callers want Open;
// NewConn exists for transports that are not plain byte streams.
func NewConn(codec ports.Codec, opts *options.Options) (*Conn, error) {
	if codec == nil {
		return nil, rpcerrs.NewSetupError(
			rpcerrs.ErrCodeInvalidInput,
			"codec", "ports.Codec", "nil",
		)
	}
	if opts == nil {
		opts = &options.Options{}
	}
	if v := opts.EffectiveVersion(); v != messages.Version {
		return nil, rpcerrs.NewSetupError(
			rpcerrs.ErrCodeInvalidVersion,
			"version", `"`+messages.Version+`"`, `"`+v+`"`,
		)
	}

	connID := uuid.NewString()
	logger := opts.EffectiveLogger().With().Str("conn_id", connID).Logger()

	c := &Conn{
		id:           connID,
		opts:         opts,
		codec:        codec,
		calls:        calling.NewService(logger),
		logger:       logger,
		closing:      make(chan struct{}),
		listenerDone: make(chan struct{}),
	}

	go c.listen()

	return c, nil
}

// ID returns the connection identifier used in log output.
func (c *Conn) ID() string {
	return c.id
}

// Done returns a channel that closes when the listener loop has exited.
func (c *Conn) Done() <-chan struct{} {
	return c.listenerDone
}

// Close tears the connection down: every pending call resolves with a
// ConnectionClosedError and the underlying streams are closed, which in
// turn terminates the listener loop. Safe to call multiple times.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closing)
		c.calls.Fail(rpcerrs.NewConnectionClosedError("connection closed", nil))
		err = c.codec.Close()
	})

	return err
}

// listen is the listener loop: a tight read/dispatch cycle for the
// connection's lifetime. It exits only when the input stream closes or a
// message cannot be decoded, at which point every still-pending call is
// resolved with the terminal error.
func (c *Conn) listen() {
	defer close(c.listenerDone)

	for {
		raw, err := c.codec.ReadMessage()
		if err != nil {
			c.terminate(err)

			return
		}
		if err := c.dispatch(raw); err != nil {
			c.terminate(err)

			return
		}
	}
}

// dispatch routes one decoded message: responses to the pending-call
// registry, everything else to the broadcast handler. A message that is
// valid JSON but not a JSON-RPC object is a fatal protocol violation.
func (c *Conn) dispatch(raw json.RawMessage) error {
	var msg messages.Inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		return rpcerrs.NewProtocolError(
			rpcerrs.ErrCodeInvalidMessage,
			"inbound message is not a JSON-RPC object",
			err,
		)
	}

	if key, ok := msg.IDKey(); ok {
		c.calls.Resolve(key, raw, &msg)

		return nil
	}

	if c.opts.BroadcastHandler != nil {
		c.opts.BroadcastHandler(raw)

		return nil
	}

	c.logger.Debug().
		Str("method", msg.Method).
		Msg("broadcast dropped: no handler configured")

	return nil
}

// terminate resolves all pending calls with the terminal error derived from
// why the listener stopped, then records it so later calls fail fast.
func (c *Conn) terminate(cause error) {
	var term error
	switch {
	case c.isClosing():
		term = rpcerrs.NewConnectionClosedError("connection closed", nil)
	case errors.Is(cause, io.EOF):
		c.logger.Info().Msg("server closed the stream")
		term = rpcerrs.NewConnectionClosedError("server closed the stream", cause)
	default:
		c.logger.Error().Err(cause).Msg("listener terminated")
		if _, ok := rpcerrs.AsTransportError(cause); ok {
			term = cause
		} else if rpcerrs.CategoryOf(cause) == rpcerrs.CategoryProtocol {
			term = cause
		} else {
			term = rpcerrs.NewTransportError(
				rpcerrs.ErrCodeReadFailed,
				"read from input stream",
				cause,
			)
		}
	}

	c.calls.Fail(term)
}

func (c *Conn) isClosing() bool {
	select {
	case <-c.closing:
		return true
	default:
		return false
	}
}
