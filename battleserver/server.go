// Package battleserver hosts the authoritative side of a battle: the
// single source of truth clients mirror via sink replay.
package battleserver

import "github.com/battlekit/engine/battle"

// Server owns the authoritative battle state and fans out every applied
// event to its attached client sinks.
type Server struct {
	battle       *battle.Battle
	sinks        *battle.Sinks
	authEnforced bool
}

// Builder constructs a Server by method chaining, mirroring how this
// codebase's other configurable types accumulate options before a
// terminal Build call.
type Builder struct {
	battle       *battle.Battle
	authEnforced bool
}

// NewBuilder starts building a Server around b.
func NewBuilder(b *battle.Battle) *Builder {
	return &Builder{battle: b}
}

// EnforceAuthentication turns on rights checking for client-origin events.
func (bd *Builder) EnforceAuthentication() *Builder {
	bd.authEnforced = true
	return bd
}

// Build returns the configured Server.
func (bd *Builder) Build() *Server {
	return &Server{
		battle:       bd.battle,
		sinks:        battle.NewSinks(),
		authEnforced: bd.authEnforced,
	}
}

// Battle returns the server's underlying battle state.
func (s *Server) Battle() *battle.Battle { return s.battle }

// ClientSinks returns the fan-out manager for attaching and removing
// downstream client sinks.
func (s *Server) ClientSinks() *battle.Sinks { return s.sinks }

// Rights returns the authorization set a caller may mutate to grant or
// revoke a player's standing on a team.
func (s *Server) Rights() *battle.Rights { return s.battle.Rights }

// Process verifies and applies a client-origin prototype: server-only
// and rights checks, then verify, apply, append, and broadcast. The
// player is nil when authentication is not enforced.
func (s *Server) Process(player *battle.PlayerID, e battle.Event) ([]battle.Event, error) {
	appended, err := battle.ProcessClientOrigin(s.battle, s.authEnforced, player, e)
	if err != nil {
		return nil, err
	}
	s.broadcast(appended)
	return appended, nil
}

// FireServerEvent applies a trusted, server-origin prototype: the path
// internal rule machinery and game logic use, bypassing client checks.
func (s *Server) FireServerEvent(e battle.Event) ([]battle.Event, error) {
	appended, err := battle.Apply(s.battle, e)
	if err != nil {
		return nil, err
	}
	s.broadcast(appended)
	return appended, nil
}

// broadcast wraps every newly appended event with its sequential id and
// the server's rules version, then fans it out. Per the propagation
// policy, a broken client sink is recovered locally and never surfaces
// to the firing caller.
func (s *Server) broadcast(appended []battle.Event) {
	if len(appended) == 0 {
		return
	}
	startID := s.battle.History.Len() - len(appended)
	for i, e := range appended {
		w := battle.VersionedEventWrapper{
			EventID: startID + i,
			Version: s.battle.Rules.Version,
			Event:   e,
		}
		s.sinks.Broadcast(w)
	}
}
