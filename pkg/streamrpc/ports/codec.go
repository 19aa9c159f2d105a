// Package ports defines interfaces that the client core needs from
// infrastructure. These are "ports" in hexagonal architecture - contracts
// defined by the core's needs, not by external systems.
package ports

import (
	"context"
	"encoding/json"
)

// Codec defines what the client core needs from a wire codec bound to a
// duplex byte stream. One WriteMessage or ReadMessage moves exactly one
// logical JSON value; a ReadMessage must never consume bytes belonging to
// the next message.
type Codec interface {
	// WriteMessage encodes one value to the output stream. Implementations
	// must serialize concurrent writers.
	WriteMessage(ctx context.Context, v any) error

	// ReadMessage decodes the next value from the input stream, blocking
	// until one is available. Only the listener loop calls this.
	ReadMessage() (json.RawMessage, error)

	// Close releases the underlying streams where they support it.
	Close() error
}
