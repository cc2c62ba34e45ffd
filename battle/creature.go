package battle

// Creature holds one actor's statistics and abilities, keyed by their
// rulebook-defined ids. The entity store is the only owner.
type Creature struct {
	id         CreatureID
	teamID     TeamID
	statistics map[StatisticID]Statistic
	abilities  map[AbilityID]Ability
}

func newCreature(id CreatureID, teamID TeamID) *Creature {
	return &Creature{
		id:         id,
		teamID:     teamID,
		statistics: make(map[StatisticID]Statistic),
		abilities:  make(map[AbilityID]Ability),
	}
}

// ID returns the creature's id.
func (c *Creature) ID() CreatureID { return c.id }

// EntityID returns the creature's id wrapped as an EntityID.
func (c *Creature) EntityID() EntityID { return NewCreatureEntityID(c.id) }

// TeamID returns the id of the team this creature belongs to.
func (c *Creature) TeamID() TeamID { return c.teamID }

// Statistic returns the statistic under id, if present.
func (c *Creature) Statistic(id StatisticID) (Statistic, bool) {
	s, ok := c.statistics[id]
	return s, ok
}

// Statistics returns every statistic currently on the creature. The
// returned map is a copy; mutating it has no effect on the creature.
func (c *Creature) Statistics() map[StatisticID]Statistic {
	out := make(map[StatisticID]Statistic, len(c.statistics))
	for k, v := range c.statistics {
		out[k] = v
	}
	return out
}

// Ability returns the ability under id, if present.
func (c *Creature) Ability(id AbilityID) (Ability, bool) {
	a, ok := c.abilities[id]
	return a, ok
}

// Abilities returns every ability currently on the creature. The
// returned map is a copy.
func (c *Creature) Abilities() map[AbilityID]Ability {
	out := make(map[AbilityID]Ability, len(c.abilities))
	for k, v := range c.abilities {
		out[k] = v
	}
	return out
}

// SetStatistic overwrites (or adds) one statistic by its id. Rulebook
// implementations of CharacterRules.Alter use this to mutate a
// character in place rather than rebuilding its whole statistic set.
func (c *Creature) SetStatistic(s Statistic) {
	c.statistics[s.StatisticID()] = s
}

// SetAbility overwrites (or adds) one ability by its id. Rulebook
// implementations of ActorRules.Alter use this to mutate an actor in
// place rather than rebuilding its whole ability set.
func (c *Creature) SetAbility(a Ability) {
	c.abilities[a.AbilityID()] = a
}

func (c *Creature) setStatistics(set []Statistic) {
	m := make(map[StatisticID]Statistic, len(set))
	for _, s := range set {
		m[s.StatisticID()] = s
	}
	c.statistics = m
}

func (c *Creature) setAbilities(set []Ability) {
	m := make(map[AbilityID]Ability, len(set))
	for _, a := range set {
		m[a.AbilityID()] = a
	}
	c.abilities = m
}

// regenerateStatistics applies the keep/remove/add reconciliation: ids
// shared between the current set and next are kept unchanged; ids only
// in the current set are dropped; ids only in next are added.
func (c *Creature) regenerateStatistics(next []Statistic) {
	wanted := make(map[StatisticID]Statistic, len(next))
	for _, s := range next {
		wanted[s.StatisticID()] = s
	}
	merged := make(map[StatisticID]Statistic, len(wanted))
	for id, cur := range c.statistics {
		if _, ok := wanted[id]; ok {
			merged[id] = cur
		}
	}
	for id, s := range wanted {
		if _, ok := merged[id]; !ok {
			merged[id] = s
		}
	}
	c.statistics = merged
}

// regenerateAbilities is the Ability-set analogue of regenerateStatistics.
func (c *Creature) regenerateAbilities(next []Ability) {
	wanted := make(map[AbilityID]Ability, len(next))
	for _, a := range next {
		wanted[a.AbilityID()] = a
	}
	merged := make(map[AbilityID]Ability, len(wanted))
	for id, cur := range c.abilities {
		if _, ok := wanted[id]; ok {
			merged[id] = cur
		}
	}
	for id, a := range wanted {
		if _, ok := merged[id]; !ok {
			merged[id] = a
		}
	}
	c.abilities = merged
}
