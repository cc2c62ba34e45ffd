package battle

import "github.com/battlekit/engine/metrics"

// Origin distinguishes who produced an event prototype: a client
// (subject to server-only and rights checks) or the server itself
// (trusted, including every follow-up event generated during apply).
type Origin uint8

const (
	// OriginServer marks a trusted, authoritative event.
	OriginServer Origin = iota
	// OriginClient marks an event a client attempted to fire, subject to
	// server-only and rights checks before it is verified.
	OriginClient
)

// VerifyContext is passed to Event.Verify. It carries read-only access
// to battle state and the origin/player of the firing attempt, for
// events whose own verify logic needs it (most don't).
type VerifyContext struct {
	Battle *Battle
	Origin Origin
	Player *PlayerID
}

// ApplyContext is passed to Event.Apply. Mutation of the entity store
// flows only through the concrete Store methods reachable from Battle;
// Queue accumulates follow-up events for the kernel to drain after the
// current event finishes applying.
type ApplyContext struct {
	Battle  *Battle
	Queue   *EventQueue
	Entropy Entropy
	Metrics *metrics.Registry
}

// Event is the capability set every event variant implements: report
// its kind, validate itself against current state, mutate state, and
// clone itself (events are values; once applied they are copied into
// history and must not alias mutable fields with their trigger).
type Event interface {
	// Kind reports which variant this is.
	Kind() Kind

	// Verify checks the event-specific preconditions (referenced
	// entities exist, ids are unique, and so on) against current state.
	// It must not mutate anything.
	Verify(ctx VerifyContext) error

	// Apply mutates state. Apply-phase failures are programming errors;
	// the kernel treats a non-nil return here as fatal.
	Apply(ctx ApplyContext) error

	// Clone returns an independent copy suitable for storing in history.
	Clone() Event

	// TargetTeam reports the team authorization should be checked
	// against for a client-origin firing of this event, if one can be
	// derived from the event and current state.
	TargetTeam(b *Battle) (TeamID, bool)
}

// EventQueue is the FIFO work list threaded through apply. Rule hooks
// append follow-up events here; the kernel drains it after the
// triggering event commits, in the order items were enqueued,
// including items enqueued by previously-drained follow-ups.
type EventQueue struct {
	items []Event
}

// Enqueue appends e to the back of the queue.
func (q *EventQueue) Enqueue(e Event) {
	q.items = append(q.items, e)
}

func (q *EventQueue) pop() (Event, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e, true
}

// ClientEventPrototype is an unapplied event plus the player attempting
// to fire it, submitted by a client to the server sink.
type ClientEventPrototype struct {
	Event  Event
	Player *PlayerID
}

// VersionedEventWrapper is the wire form of an applied event: its
// sequential id, the rules version it was produced under, and the
// event itself.
type VersionedEventWrapper struct {
	EventID int
	Version uint32
	Event   Event
}
