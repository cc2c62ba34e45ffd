package battle

import "github.com/battlekit/engine/battleerr"

// Store holds every team and creature in a battle and enforces the
// referential invariants between them: a creature's team_id always
// names a team in the store, and its id always appears in that team's
// member list. The battle that owns a Store is the only mutator; rule
// hooks never touch it directly (see ApplyContext).
type Store struct {
	teamOrder []TeamID
	teams     map[TeamID]*Team
	creatures map[CreatureID]*Creature
	relations relationTable
}

// NewStore returns an empty entity store.
func NewStore() *Store {
	return &Store{
		teams:     make(map[TeamID]*Team),
		creatures: make(map[CreatureID]*Creature),
		relations: make(relationTable),
	}
}

// AddTeam inserts a new team with the given objectives.
func (s *Store) AddTeam(id TeamID, objectives Objectives) (*Team, error) {
	if _, ok := s.teams[id]; ok {
		return nil, battleerr.DuplicatedTeam(id)
	}
	t := newTeam(id, objectives)
	s.teams[id] = t
	s.teamOrder = append(s.teamOrder, id)
	return t, nil
}

// Team looks up a team by id.
func (s *Store) Team(id TeamID) (*Team, bool) {
	t, ok := s.teams[id]
	return t, ok
}

// Teams returns every team, in insertion order.
func (s *Store) Teams() []*Team {
	out := make([]*Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, s.teams[id])
	}
	return out
}

// RemoveTeam removes a team. The caller must have already verified it
// has no members; this is a precondition, not re-checked here.
func (s *Store) RemoveTeam(id TeamID) error {
	if _, ok := s.teams[id]; !ok {
		return battleerr.TeamNotFound(id)
	}
	delete(s.teams, id)
	s.relations.removeTeam(id)
	for i, tid := range s.teamOrder {
		if tid == id {
			s.teamOrder = append(s.teamOrder[:i], s.teamOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AddCreature inserts a new creature and appends its id to the owning
// team's member list.
func (s *Store) AddCreature(id CreatureID, teamID TeamID) (*Creature, error) {
	if _, ok := s.creatures[id]; ok {
		return nil, battleerr.DuplicatedCreature(id)
	}
	team, ok := s.teams[teamID]
	if !ok {
		return nil, battleerr.TeamNotFound(teamID)
	}
	c := newCreature(id, teamID)
	s.creatures[id] = c
	team.addMember(id)
	return c, nil
}

// Creature looks up a creature by id.
func (s *Store) Creature(id CreatureID) (*Creature, bool) {
	c, ok := s.creatures[id]
	return c, ok
}

// Actor resolves an EntityID to a *Creature. It fails with NotAnActor
// if the entity kind cannot act, and EntityNotFound if the underlying
// id does not exist.
func (s *Store) Actor(id EntityID) (*Creature, error) {
	if !id.IsActor() {
		return nil, battleerr.NotAnActor(id)
	}
	c, ok := s.creatures[id.Creature]
	if !ok {
		return nil, battleerr.EntityNotFound(id)
	}
	return c, nil
}

// RemoveCreature removes a creature from the store and from its team's
// member list.
func (s *Store) RemoveCreature(id CreatureID) error {
	c, ok := s.creatures[id]
	if !ok {
		return battleerr.CreatureNotFound(id)
	}
	if team, ok := s.teams[c.teamID]; ok {
		team.removeMember(id)
	}
	delete(s.creatures, id)
	return nil
}

// RelationUpdate is one entry of a batch passed to UpdateRelations.
type RelationUpdate struct {
	A, B     TeamID
	Relation Relation
}

// UpdateRelations upserts a batch of relation entries. Entries for the
// same unordered pair later in the slice win over earlier ones.
func (s *Store) UpdateRelations(updates []RelationUpdate) {
	for _, u := range updates {
		s.relations.set(u.A, u.B, u.Relation)
	}
}

// Relation reports the relation between two teams. A team's relation to
// itself is always Kin; any unset pair of distinct teams defaults to
// Enemy.
func (s *Store) Relation(a, b TeamID) Relation {
	if a == b {
		return RelationKin
	}
	if rel, ok := s.relations.get(a, b); ok {
		return rel
	}
	return RelationEnemy
}
