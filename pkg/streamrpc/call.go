package streamrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/xid"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/calling"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/messages"
)

// Call invokes a remote method and blocks until the listener loop delivers
// its reply, the context ends, or the connection is torn down.
//
// Arguments are positional unless the first is a Keyword, in which case
// they must alternate Keyword, value pairs. The result is the response's
// result member, or the full response object when Options.FullData is set.
// A server-side error surfaces as *rpcerrs.RemoteError. In TestMode the
// request is written and Call returns (nil, nil) without blocking.
func (c *Conn) Call(
	ctx context.Context,
	method string,
	args ...any,
) (json.RawMessage, error) {
	id := xid.New().String()

	req, err := messages.NewRequest(method, args, id)
	if err != nil {
		return nil, err
	}

	if c.opts.TestMode {
		if err := c.codec.WriteMessage(ctx, req); err != nil {
			return nil, err
		}

		return nil, nil
	}

	ch, err := c.calls.Register(id)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("request_id", id).
		Str("method", method).
		Msg("sending request")

	if err := c.codec.WriteMessage(ctx, req); err != nil {
		c.calls.Cancel(id)

		return nil, err
	}

	return c.await(ctx, id, method, ch)
}

// Notify sends a notification: a request without an identifier. The server
// must not reply and Notify returns as soon as the request is written.
func (c *Conn) Notify(ctx context.Context, method string, args ...any) error {
	req, err := messages.NewRequest(method, args, "")
	if err != nil {
		return err
	}

	return c.codec.WriteMessage(ctx, req)
}

// await blocks the caller on its rendezvous channel until the listener
// delivers an outcome or the call deadline passes. An abandoned call is
// removed from the registry so a late reply cannot revive a stale waiter.
func (c *Conn) await(
	ctx context.Context,
	id, method string,
	ch <-chan calling.Outcome,
) (json.RawMessage, error) {
	if c.opts.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.CallTimeout)
		defer cancel()
	}

	select {
	case out := <-ch:
		return c.mapOutcome(method, out)

	case <-ctx.Done():
		c.calls.Cancel(id)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, rpcerrs.NewTimeoutError(
				fmt.Sprintf("call %q timed out", method),
				ctx.Err(),
			).WithMethod(method)
		}

		return nil, ctx.Err()
	}
}

// mapOutcome turns one delivered outcome into the caller-visible result,
// per the response contract: result, or error, or a protocol violation.
func (c *Conn) mapOutcome(
	method string,
	out calling.Outcome,
) (json.RawMessage, error) {
	if out.Err != nil {
		return nil, out.Err
	}

	if c.opts.FullData {
		return out.Raw, nil
	}

	switch {
	case out.Msg.HasResult():
		return out.Msg.Result, nil
	case out.Msg.Error != nil:
		return nil, rpcerrs.NewRemoteError(
			out.Msg.Error.Code,
			out.Msg.Error.Message,
			out.Msg.Error.Data,
		).WithMethod(method)
	default:
		return nil, rpcerrs.NewProtocolError(
			rpcerrs.ErrCodeMalformedResponse,
			"response carries neither result nor error",
			nil,
		)
	}
}
