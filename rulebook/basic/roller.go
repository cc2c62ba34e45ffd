package basic

import (
	"fmt"

	"github.com/battlekit/engine/battle"
)

// entropyRoller rolls individual dice off the kernel's deterministic,
// seedable battle.Entropy rather than a crypto/rand-backed source, so
// replaying the same seed reproduces the same rolls.
type entropyRoller struct {
	entropy battle.Entropy
}

// roll returns a random number from 1 to size (inclusive).
func (r entropyRoller) roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("rulebook/basic: invalid die size %d", size)
	}
	return r.entropy.Intn(size) + 1, nil
}

// pool describes count dice of the given size plus a flat modifier, e.g.
// 2d6+3. It is this rulebook's entire dice surface: nothing here parses
// notation strings, mocks rolls, or lazily memoizes results, because
// nothing in the rulebook needs those features.
type pool struct {
	count    int
	size     int
	modifier int
}

// simplePool builds a pool of count dice of the given size plus modifier.
func simplePool(count, size, modifier int) pool {
	return pool{count: count, size: size, modifier: modifier}
}

// roll sums count independent rolls of size and adds the modifier.
func (p pool) roll(r entropyRoller) int {
	total := p.modifier
	for i := 0; i < p.count; i++ {
		v, err := r.roll(p.size)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}
