package battle

import "github.com/battlekit/engine/battleerr"

// Sink is the capability every downstream or upstream channel shares:
// an id, and a hook called when the fan-out manager (or the client
// replacing its single upstream sink) drops it.
type Sink interface {
	ID() EventSinkID
	OnDisconnect()
}

// ServerSink is how a client ships a fired prototype upstream to the server.
type ServerSink interface {
	Sink
	Send(proto ClientEventPrototype) error
}

// ClientSink is how the server delivers an applied event downstream to one client.
type ClientSink interface {
	Sink
	Send(w VersionedEventWrapper) error
}

// Sinks is the server's fan-out manager: the set of attached client
// sinks, in attachment order. A sink whose Send fails is considered
// broken and is removed; one broken sink never blocks delivery to
// others.
type Sinks struct {
	byID  map[EventSinkID]ClientSink
	order []EventSinkID
}

// NewSinks returns an empty fan-out manager.
func NewSinks() *Sinks {
	return &Sinks{byID: make(map[EventSinkID]ClientSink)}
}

// Len returns the number of currently attached sinks.
func (s *Sinks) Len() int {
	return len(s.order)
}

// Add attaches sink starting from the next event; no backfill is sent.
func (s *Sinks) Add(sink ClientSink) {
	s.register(sink)
}

// AddFrom attaches sink and immediately replays events [start, history.Len()).
// If replaying any event fails, the sink is not attached.
func (s *Sinks) AddFrom(sink ClientSink, start int, history *History, version uint32) error {
	if start < 0 || start > history.Len() {
		return battleerr.InvalidEventRange(start, history.Len(), history.Len())
	}
	return s.attachWithReplay(sink, start, history.Len(), history, version)
}

// AddRange attaches sink and replays exactly [start, end). Fails with
// InvalidEventRange if end > history.Len() or start > end.
func (s *Sinks) AddRange(sink ClientSink, start, end int, history *History, version uint32) error {
	if err := ValidateRange(start, end, history.Len()); err != nil {
		return err
	}
	return s.attachWithReplay(sink, start, end, history, version)
}

func (s *Sinks) attachWithReplay(sink ClientSink, start, end int, history *History, version uint32) error {
	for id, e := range history.Range(start, end) {
		w := VersionedEventWrapper{EventID: start + id, Version: version, Event: e}
		if err := sink.Send(w); err != nil {
			return battleerr.EventSinkError(err)
		}
	}
	s.register(sink)
	return nil
}

func (s *Sinks) register(sink ClientSink) {
	s.byID[sink.ID()] = sink
	s.order = append(s.order, sink.ID())
}

// Remove detaches the sink under id and calls its OnDisconnect hook.
func (s *Sinks) Remove(id EventSinkID) error {
	sink, ok := s.byID[id]
	if !ok {
		return battleerr.EventSinkNotFound(id)
	}
	s.remove(id)
	sink.OnDisconnect()
	return nil
}

func (s *Sinks) remove(id EventSinkID) {
	delete(s.byID, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SendRange resends a range of already-recorded events to one attached
// sink. A send failure during a resend disconnects the sink the same
// way a broadcast failure would.
func (s *Sinks) SendRange(id EventSinkID, start, end int, history *History, version uint32) error {
	sink, ok := s.byID[id]
	if !ok {
		return battleerr.EventSinkNotFound(id)
	}
	if err := ValidateRange(start, end, history.Len()); err != nil {
		return err
	}
	for i, e := range history.Range(start, end) {
		w := VersionedEventWrapper{EventID: start + i, Version: version, Event: e}
		if err := sink.Send(w); err != nil {
			s.remove(id)
			sink.OnDisconnect()
			return nil
		}
	}
	return nil
}

// Broadcast delivers w to every attached sink. A sink whose Send fails
// is removed and disconnected; Broadcast never surfaces a sink failure
// to its caller, per the propagation policy in spec.md §7.
func (s *Sinks) Broadcast(w VersionedEventWrapper) {
	for _, id := range append([]EventSinkID(nil), s.order...) {
		sink, ok := s.byID[id]
		if !ok {
			continue
		}
		if err := sink.Send(w); err != nil {
			s.remove(id)
			sink.OnDisconnect()
		}
	}
}
