package streamrpc

import (
	"context"

	"github.com/conneroisu/streamrpc/pkg/streamrpc/adapters/stream"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/adapters/ws"
)

// Dial connects to a network endpoint and opens a connection over it.
// network is any value net.Dial accepts, typically "tcp" or "unix".
func Dial(
	ctx context.Context,
	network, addr string,
	opts *Options,
) (*Conn, error) {
	conn, err := stream.Dial(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	return Open(conn, conn, opts)
}

// DialWebSocket connects to a ws:// or wss:// endpoint and opens a
// connection over it, one JSON-RPC message per text frame.
func DialWebSocket(ctx context.Context, url string, opts *Options) (*Conn, error) {
	conn, err := ws.Dial(ctx, url)
	if err != nil {
		return nil, err
	}

	return Open(conn, conn, opts)
}
