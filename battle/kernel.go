package battle

import (
	"fmt"

	"github.com/battlekit/engine/battleerr"
)

// Apply verifies and applies a trusted, server-origin event: a rule
// hook driving its own follow-ups, or any event the authoritative code
// path fires directly (not via a client). It returns every event
// appended to history as a result, the triggering event first.
func Apply(b *Battle, e Event) ([]Event, error) {
	if err := e.Verify(VerifyContext{Battle: b, Origin: OriginServer}); err != nil {
		return nil, err
	}
	return commit(b, e)
}

// ProcessClientOrigin verifies and applies an event a client attempted
// to fire. It runs the cross-cutting client-origin checks (server-only,
// authentication, rights) before the event's own Verify.
func ProcessClientOrigin(b *Battle, authEnforced bool, player *PlayerID, e Event) ([]Event, error) {
	if e.Kind().ServerOnly() {
		return nil, battleerr.ServerOnlyEvent(e.Kind())
	}
	if authEnforced {
		if player == nil {
			return nil, battleerr.MissingAuthentication()
		}
		if team, ok := e.TargetTeam(b); ok {
			if !b.Rights.Has(*player, team) {
				return nil, battleerr.AuthenticationError(*player, team)
			}
		}
	}
	if err := e.Verify(VerifyContext{Battle: b, Origin: OriginClient, Player: player}); err != nil {
		return nil, err
	}
	return commit(b, e)
}

// Receive is the client-side counterpart to Apply: it checks the
// incoming wrapper's version and id-contiguity before verifying and
// applying the event locally.
func Receive(b *Battle, w VersionedEventWrapper) ([]Event, error) {
	if w.Version != b.Rules.Version {
		return nil, battleerr.IncompatibleVersions(b.Rules.Version, w.Version)
	}
	expected := b.History.Len()
	if w.EventID != expected {
		return nil, battleerr.NonContiguousEventID(w.EventID, expected)
	}
	if err := w.Event.Verify(VerifyContext{Battle: b, Origin: OriginServer}); err != nil {
		return nil, err
	}
	return commit(b, w.Event)
}

// commit applies e, appends a clone of it to history, then drains every
// follow-up event its apply (and each follow-up's own apply) enqueues,
// in FIFO order, before running the once-per-call objective check and
// draining whatever that produces. History stores clones, never the
// caller's own pointer, so a caller mutating or refiring the event it
// just fired can never retroactively alter an already-recorded entry.
func commit(b *Battle, e Event) ([]Event, error) {
	queue := &EventQueue{}
	applyOne(b, e, queue)
	recorded := e.Clone()
	appended := []Event{recorded}
	b.History.append(recorded)

	drainFollowups(b, queue, &appended)
	enqueueObjectiveConclusions(b, queue)
	drainFollowups(b, queue, &appended)

	return appended, nil
}

func drainFollowups(b *Battle, queue *EventQueue, appended *[]Event) {
	for {
		next, ok := queue.pop()
		if !ok {
			return
		}
		if err := next.Verify(VerifyContext{Battle: b, Origin: OriginServer}); err != nil {
			panic(fmt.Sprintf("battle: follow-up event %s failed verify against its own producer's state: %v", next.Kind(), err))
		}
		applyOne(b, next, queue)
		recorded := next.Clone()
		*appended = append(*appended, recorded)
		b.History.append(recorded)
	}
}

func applyOne(b *Battle, e Event, queue *EventQueue) {
	ctx := ApplyContext{Battle: b, Queue: queue, Entropy: b.Rules.Entropy, Metrics: b.Metrics}
	if err := e.Apply(ctx); err != nil {
		panic(fmt.Sprintf("battle: apply invariant violated applying %s: %v", e.Kind(), err))
	}
}

// enqueueObjectiveConclusions runs TeamRules.CheckObjectivesOnEvent for
// every team without a conclusion yet, once per top-level Process or
// Receive call, queuing a ConcludeObjectives follow-up for any team it
// concludes.
func enqueueObjectiveConclusions(b *Battle, queue *EventQueue) {
	if b.Rules.Team == nil {
		return
	}
	for _, team := range b.Store.Teams() {
		if _, concluded := team.Conclusion(); concluded {
			continue
		}
		if c := b.Rules.Team.CheckObjectivesOnEvent(b, team, b.Metrics); c != nil {
			queue.Enqueue(&ConcludeObjectives{TeamID: team.ID(), Outcome: *c})
		}
	}
}
