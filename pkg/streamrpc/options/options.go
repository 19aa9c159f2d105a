// Package options holds the connection configuration for streamrpc.
package options

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// BroadcastHandler receives server-initiated messages that carry no
// identifier. The payload is the full decoded message. The handler runs on
// the listener goroutine: a slow handler delays dispatch of later messages.
type BroadcastHandler func(msg json.RawMessage)

// Options configures a streamrpc connection.
type Options struct {
	// === Protocol Settings ===

	// Version is the JSON-RPC protocol version. Empty defaults to "2.0";
	// any other value is rejected at Open.
	Version string

	// FullData makes Call return the full decoded response object instead
	// of the unwrapped result member.
	FullData bool

	// TestMode makes Call return immediately after transmission without
	// registering a pending call. Used for testing without a live server.
	TestMode bool

	// === Dispatch Settings ===

	// BroadcastHandler receives messages with no identifier (optional).
	// When nil, broadcasts are dropped.
	BroadcastHandler BroadcastHandler

	// CallTimeout bounds how long a Call waits for its reply. Zero means
	// no default timeout; a context deadline still applies either way.
	CallTimeout time.Duration

	// === Infrastructure Settings ===

	// Logger receives connection diagnostics (optional).
	Logger *zerolog.Logger
}

// EffectiveVersion returns the configured version with the default applied.
func (o *Options) EffectiveVersion() string {
	if o == nil || o.Version == "" {
		return "2.0"
	}

	return o.Version
}

// EffectiveLogger returns the configured logger, or a no-op logger.
func (o *Options) EffectiveLogger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}

	return *o.Logger
}
