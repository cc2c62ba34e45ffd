package metrics_test

import (
	"testing"

	"github.com/battlekit/engine/metrics"
	"github.com/stretchr/testify/assert"
)

func TestSystemCounters(t *testing.T) {
	r := metrics.NewRegistry()
	assert.Zero(t, r.SystemU64(metrics.TeamsCreated))

	r.AddSystemU64(metrics.TeamsCreated, 1)
	r.AddSystemU64(metrics.TeamsCreated, 2)
	assert.EqualValues(t, 3, r.SystemU64(metrics.TeamsCreated))
}

func TestUserCounters(t *testing.T) {
	r := metrics.NewRegistry()
	r.AddUserU64("creature-1", 5)
	r.AddUserU64("creature-2", 1)

	assert.EqualValues(t, 5, r.UserU64("creature-1"))
	assert.EqualValues(t, 1, r.UserU64("creature-2"))
	assert.Zero(t, r.UserU64("creature-3"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	r := metrics.NewRegistry()
	r.AddSystemU64(metrics.RoundsStarted, 1)

	snap := r.SystemSnapshot()
	snap[metrics.RoundsStarted] = 99

	assert.EqualValues(t, 1, r.SystemU64(metrics.RoundsStarted), "snapshot mutation must not affect the registry")
}
