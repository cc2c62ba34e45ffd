package battle

// Relation describes how two distinct teams regard one another.
type Relation uint8

const (
	// RelationEnemy is the default relation between any two distinct teams.
	RelationEnemy Relation = iota
	// RelationAlly marks two teams as cooperating.
	RelationAlly
	// RelationKin is reserved for the implicit self-relation; it can never
	// be set explicitly between two distinct teams.
	RelationKin
)

// String renders the relation for logs and test failure messages.
func (r Relation) String() string {
	switch r {
	case RelationAlly:
		return "Ally"
	case RelationEnemy:
		return "Enemy"
	case RelationKin:
		return "Kin"
	default:
		return "Unknown"
	}
}

// teamPair is the order-independent key under which a relation between
// two distinct teams is stored: (a, b) and (b, a) canonicalize to the
// same key so a single map entry represents both directions.
type teamPair struct {
	lo, hi TeamID
}

func newTeamPair(a, b TeamID) teamPair {
	if a <= b {
		return teamPair{lo: a, hi: b}
	}
	return teamPair{lo: b, hi: a}
}

// relationTable holds the symmetric relation between every pair of
// distinct teams the store has seen an explicit or synthesized entry
// for. Store.Relation answers Kin for a team and itself without
// consulting this table, and defaults a missing entry to Enemy.
type relationTable map[teamPair]Relation

func (t relationTable) set(a, b TeamID, rel Relation) {
	t[newTeamPair(a, b)] = rel
}

func (t relationTable) get(a, b TeamID) (Relation, bool) {
	rel, ok := t[newTeamPair(a, b)]
	return rel, ok
}

func (t relationTable) removeTeam(id TeamID) {
	for pair := range t {
		if pair.lo == id || pair.hi == id {
			delete(t, pair)
		}
	}
}
