// Package stream provides duplex byte-stream helpers for streamrpc:
// network dialers and an in-memory pipe pair for tests. Anything that
// satisfies io.Reader and io.Writer works as a transport; this package only
// covers the common cases.
package stream

import (
	"context"
	"net"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
)

// Dial connects to a network endpoint and returns the duplex stream.
// network is any value net.Dial accepts, typically "tcp" or "unix".
func Dial(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, rpcerrs.NewTransportError(
			rpcerrs.ErrCodeDialFailed,
			"dial "+network+" "+addr,
			err,
		)
	}

	return conn, nil
}

// Pipe returns two connected in-memory duplex streams. Writes on one side
// become reads on the other, with no buffering. Used to run a client and a
// fake server inside one process.
func Pipe() (net.Conn, net.Conn) {
	return net.Pipe()
}
