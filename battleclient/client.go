// Package battleclient mirrors a server's battle state by replaying
// the events it receives through its client sink.
package battleclient

import (
	"github.com/battlekit/engine/battle"
	"github.com/battlekit/engine/battleerr"
)

// Client owns a mirror battle and a single upstream server sink it ships
// its own fired prototypes through.
type Client struct {
	battle      *battle.Battle
	upstream    battle.ServerSink
	player      *battle.PlayerID
	authEnabled bool
}

// Builder constructs a Client by method chaining.
type Builder struct {
	battle      *battle.Battle
	upstream    battle.ServerSink
	player      *battle.PlayerID
	authEnabled bool
}

// NewBuilder starts building a Client around b, shipping fired
// prototypes through upstream.
func NewBuilder(b *battle.Battle, upstream battle.ServerSink) *Builder {
	return &Builder{battle: b, upstream: upstream}
}

// EnableAuthentication attaches player to every prototype this client fires.
func (bd *Builder) EnableAuthentication(player battle.PlayerID) *Builder {
	bd.player = &player
	bd.authEnabled = true
	return bd
}

// Build returns the configured Client.
func (bd *Builder) Build() *Client {
	return &Client{
		battle:      bd.battle,
		upstream:    bd.upstream,
		player:      bd.player,
		authEnabled: bd.authEnabled,
	}
}

// Battle returns the client's mirror battle state.
func (c *Client) Battle() *battle.Battle { return c.battle }

// SetServerSink replaces the upstream sink, disconnecting the old one.
func (c *Client) SetServerSink(sink battle.ServerSink) {
	if c.upstream != nil {
		c.upstream.OnDisconnect()
	}
	c.upstream = sink
}

// Receive applies one incoming wrapper to the local mirror, in the same
// order the server applied it.
func (c *Client) Receive(w battle.VersionedEventWrapper) ([]battle.Event, error) {
	return battle.Receive(c.battle, w)
}

// Fire builds a prototype from e and this client's player (if
// authentication is enabled), then ships it upstream. The local mirror
// is not updated optimistically; it only advances once the server
// echoes the event back through Receive.
func (c *Client) Fire(e battle.Event) error {
	if c.upstream == nil {
		return battleerr.EventSinkNotFound("")
	}
	proto := battle.ClientEventPrototype{Event: e, Player: c.player}
	return c.upstream.Send(proto)
}
