package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/inhibition"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

func newState(t *testing.T) *game.State {
	t.Helper()
	g := galaxy.NewGalaxy()
	sys, err := galaxy.NewStarSystem("alpha", 3)
	require.NoError(t, err)
	require.NoError(t, g.AddSystem(sys))

	s := game.NewState(g)
	for i := 1; i <= 2; i++ {
		p, err := ledger.NewPlayer(shared.MustNewPlayerID(i), "P", "", false, 0, 0, 0)
		require.NoError(t, err)
		require.NoError(t, s.AddPlayer(p))
	}
	return s
}

func spawn(t *testing.T, s *game.State, player int) *unit.Unit {
	t.Helper()
	u, err := s.SpawnUnit(shared.MustNewPlayerID(player), "Scout", unit.HullTiny, nil,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)})
	require.NoError(t, err)
	return u
}

func TestState_SpawnUnit_CreationOrderIDs(t *testing.T) {
	s := newState(t)

	a := spawn(t, s, 1)
	b := spawn(t, s, 2)
	c := spawn(t, s, 1)

	assert.Equal(t, []int{a.ID(), b.ID(), c.ID()}, []int{1, 2, 3})

	units := s.Units()
	require.Len(t, units, 3)
	assert.Equal(t, 1, units[0].ID())
	assert.Equal(t, 3, units[2].ID())

	mine := s.UnitsOf(shared.MustNewPlayerID(1))
	require.Len(t, mine, 2)
	assert.Equal(t, []int{1, 3}, []int{mine[0].ID(), mine[1].ID()})
}

func TestState_RemoveUnit_CleansInhibition(t *testing.T) {
	s := newState(t)
	u := spawn(t, s, 1)
	s.Inhibition().Activate("alpha", shared.NewHexCoord(0, 0), u.ID(), u.Owner())

	s.RemoveUnit(u.ID())

	assert.Nil(t, s.Unit(u.ID()))
	assert.False(t, s.Inhibition().IsInhibited("alpha", shared.NewHexCoord(0, 0)))
}

func TestState_UnitsInSector(t *testing.T) {
	s := newState(t)
	a := spawn(t, s, 1)
	b := spawn(t, s, 2)
	b.SetLocation("alpha", shared.NewHexCoord(1, 0), shared.Position{})

	here := s.UnitsInSector("alpha", shared.NewHexCoord(0, 0))
	require.Len(t, here, 1)
	assert.Equal(t, a.ID(), here[0].ID())
}

func TestState_CheckInvariants(t *testing.T) {
	t.Run("clean state passes", func(t *testing.T) {
		s := newState(t)
		spawn(t, s, 1)
		assert.NoError(t, s.CheckInvariants())
	})

	t.Run("destroyed unit in play fails", func(t *testing.T) {
		s := newState(t)
		u := spawn(t, s, 1)
		u.TakeDamage(1000)
		assert.Error(t, s.CheckInvariants())
	})

	t.Run("unit outside system radius fails", func(t *testing.T) {
		s := newState(t)
		u := spawn(t, s, 1)
		u.SetLocation("alpha", shared.NewHexCoord(9, 0), shared.Position{})
		assert.Error(t, s.CheckInvariants())
	})

	t.Run("orphan inhibition field fails", func(t *testing.T) {
		s := newState(t)
		s.Inhibition().Activate("alpha", shared.NewHexCoord(0, 0), 42, shared.MustNewPlayerID(1))
		assert.Error(t, s.CheckInvariants())
	})
}

func TestReconstructState(t *testing.T) {
	g := galaxy.NewGalaxy()
	sys, err := galaxy.NewStarSystem("alpha", 3)
	require.NoError(t, err)
	require.NoError(t, g.AddSystem(sys))

	p, err := ledger.NewPlayer(shared.MustNewPlayerID(1), "Ada", "", true, 100, 0, 0)
	require.NoError(t, err)
	u, err := unit.ReconstructUnit(7, p.ID(), "Scout", unit.HullTiny, nil,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)}, 20, nil)
	require.NoError(t, err)

	s, err := game.ReconstructState(g, []*ledger.Player{p}, []*unit.Unit{u},
		inhibition.NewTracker(), 12, 8)
	require.NoError(t, err)

	assert.Equal(t, 12, s.Turn())
	assert.Equal(t, 8, s.NextUnitID())
	assert.NotNil(t, s.Unit(7))

	// The next spawned unit continues the creation sequence.
	next, err := s.SpawnUnit(p.ID(), "New", unit.HullTiny, nil,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 8, next.ID())

	// Duplicate ids in a snapshot are rejected.
	dup, err := unit.ReconstructUnit(7, p.ID(), "Dup", unit.HullTiny, nil,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)}, 20, nil)
	require.NoError(t, err)
	_, err = game.ReconstructState(g, []*ledger.Player{p}, []*unit.Unit{u, dup},
		inhibition.NewTracker(), 0, 0)
	assert.Error(t, err)
}
