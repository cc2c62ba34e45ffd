package battle

import "github.com/battlekit/engine/metrics"

// Battle is the complete state a kernel operates on: the rules binding,
// the entity store, the rights table, the round state machine, and the
// metrics registry. A server owns one authoritative Battle; a client
// owns one mirror Battle built from the same Binding.
type Battle struct {
	Rules   *Binding
	Store   *Store
	Rights  *Rights
	Round   *Round
	Metrics *metrics.Registry
	History *History
}

// NewBattle constructs an empty battle bound to the given rules.
func NewBattle(rules *Binding) *Battle {
	store := NewStore()
	return &Battle{
		Rules:   rules,
		Store:   store,
		Rights:  NewRights(store),
		Round:   NewRound(),
		Metrics: metrics.NewRegistry(),
		History: NewHistory(),
	}
}
