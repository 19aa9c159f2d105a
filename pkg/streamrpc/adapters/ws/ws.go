// Package ws provides a WebSocket transport for streamrpc. Each JSON-RPC
// message rides in one text frame; websocket.NetConn flattens the frames
// into the byte stream the codec expects.
package ws

import (
	"context"
	"net"

	"github.com/coder/websocket"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
)

// Dial opens a WebSocket connection to url and returns it as a duplex byte
// stream. ctx bounds the handshake only; the returned connection outlives it.
func Dial(ctx context.Context, url string) (net.Conn, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, rpcerrs.NewTransportError(
			rpcerrs.ErrCodeDialFailed,
			"dial websocket "+url,
			err,
		)
	}

	return websocket.NetConn(context.Background(), conn, websocket.MessageText), nil
}
