package battle

import "github.com/battlekit/engine/battleerr"

// History is the append-only, contiguously-id'd log of applied events.
// Ids start at 0 and increase by exactly one per entry.
type History struct {
	events []Event
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of events recorded so far; it also doubles as
// the id the next appended event will receive.
func (h *History) Len() int {
	return len(h.events)
}

// Events returns every recorded event, in id order. The returned slice
// is a copy.
func (h *History) Events() []Event {
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}

// Range returns the events in [start, end). It does not validate the
// range; callers that need InvalidEventRange semantics check first (see
// battle.ValidateRange).
func (h *History) Range(start, end int) []Event {
	out := make([]Event, end-start)
	copy(out, h.events[start:end])
	return out
}

// At returns the event recorded under id.
func (h *History) At(id int) (Event, bool) {
	if id < 0 || id >= len(h.events) {
		return nil, false
	}
	return h.events[id], true
}

func (h *History) append(e Event) int {
	id := len(h.events)
	h.events = append(h.events, e)
	return id
}

// ValidateRange checks a [start, end) range against a history of the
// given length, matching the InvalidEventRange contract used by sink
// attachment.
func ValidateRange(start, end, historyLen int) error {
	if end > historyLen || start > end {
		return battleerr.InvalidEventRange(start, end, historyLen)
	}
	return nil
}
