// Package calling provides the pending-call registry: the rendezvous between
// caller goroutines blocked in Call and the listener loop draining the input
// stream. The registry is the only mutable state the two sides share.
package calling

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/messages"
)

// Outcome is the single value delivered to a waiting caller: either one
// decoded response or a terminal error, never both.
type Outcome struct {
	// Raw is the full decoded response message.
	Raw json.RawMessage
	// Msg is the parsed view of Raw.
	Msg *messages.Inbound
	// Err is set when the call failed before a response arrived
	// (connection closed, transport failure).
	Err error
}

// Service tracks outstanding requests awaiting a reply, keyed by request
// identifier. Each entry is a one-shot buffered channel, so the listener
// never blocks on delivery and every caller observes exactly one outcome.
type Service struct {
	logger zerolog.Logger

	mu      sync.Mutex
	pending map[string]chan Outcome
	failed  error
}

// NewService creates an empty registry.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger:  logger,
		pending: make(map[string]chan Outcome),
	}
}

// Register adds a pending call for id and returns the channel its caller
// blocks on. It fails fast on a duplicate identifier, since duplicate ids
// make correlation ambiguous, and on a connection that has already failed.
func (s *Service) Register(id string) (<-chan Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed != nil {
		return nil, s.failed
	}
	if _, exists := s.pending[id]; exists {
		return nil, rpcerrs.NewRequestDataError(
			rpcerrs.ErrCodeDuplicateID,
			"request identifier already in flight: "+id,
			"id",
		)
	}

	ch := make(chan Outcome, 1)
	s.pending[id] = ch

	return ch, nil
}

// Resolve delivers a response to the waiter for id and removes the entry.
// A stale or duplicate reply has no waiter; it is logged and dropped rather
// than crashing the listener loop.
func (s *Service) Resolve(id string, raw json.RawMessage, msg *messages.Inbound) {
	s.mu.Lock()
	ch, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mu.Unlock()

	if !ok {
		s.logger.Warn().
			Str("request_id", id).
			Msg("reply for unknown request identifier dropped")

		return
	}

	ch <- Outcome{Raw: raw, Msg: msg}
}

// Cancel removes the entry for id without delivering anything. Used when a
// call times out or its context is cancelled, so a late reply cannot revive
// a stale waiter.
func (s *Service) Cancel(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// Fail resolves every pending call with err and marks the registry failed:
// later Register calls return the same error. Called exactly once per
// connection, on teardown or on a fatal listener error.
func (s *Service) Fail(err error) {
	s.mu.Lock()
	if s.failed != nil {
		s.mu.Unlock()

		return
	}
	s.failed = err
	pending := s.pending
	s.pending = make(map[string]chan Outcome)
	s.mu.Unlock()

	for id, ch := range pending {
		s.logger.Debug().
			Str("request_id", id).
			Msg("failing pending call on teardown")
		ch <- Outcome{Err: err}
	}
}

// Len returns the number of outstanding calls.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}
