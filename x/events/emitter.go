package events

import (
	"sync"

	"github.com/iov-one/quorum"
	"github.com/tendermint/tendermint/libs/log"
)

// Emitter consumes committed events.
type Emitter interface {
	Emit(ctx quorum.Context, e Event)
}

// Buffer collects events of a single operation.
type Buffer struct {
	events []Event
}

// Add appends an event.
func (b *Buffer) Add(e Event) {
	b.events = append(b.events, e)
}

// Events returns all collected events.
func (b *Buffer) Events() []Event {
	return b.events
}

// Flush hands all collected events to the emitter, in order, and clears the
// buffer.
func (b *Buffer) Flush(ctx quorum.Context, em Emitter) {
	if em != nil {
		for _, e := range b.events {
			em.Emit(ctx, e)
		}
	}
	b.events = nil
}

// Nop drops all events.
type Nop struct{}

// Emit discards e.
func (Nop) Emit(quorum.Context, Event) {}

// Multi fans out every event to all emitters.
type Multi []Emitter

// Emit hands e to every emitter, in order.
func (m Multi) Emit(ctx quorum.Context, e Event) {
	for _, em := range m {
		em.Emit(ctx, e)
	}
}

// Recorder keeps all events in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends e to the recorded events.
func (r *Recorder) Emit(_ quorum.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Event, len(r.events))
	copy(res, r.events)
	return res
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// LogEmitter writes every event to a logger. When no logger is set the one
// carried by the context is used.
type LogEmitter struct {
	Logger log.Logger
}

// Emit logs e at info level, using the event name as the message.
func (l LogEmitter) Emit(ctx quorum.Context, e Event) {
	logger := l.Logger
	if logger == nil {
		logger = quorum.GetLogger(ctx)
	}
	logger.Info(e.EventName(), e.KeyVals()...)
}
