package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/application/setup"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

func TestNewSkirmish(t *testing.T) {
	s, err := setup.NewSkirmish(1)
	require.NoError(t, err)

	players := s.Players()
	require.Len(t, players, 2)
	assert.True(t, players[0].IsHuman())
	assert.False(t, players[1].IsHuman())
	for _, p := range players {
		assert.Equal(t, int64(setup.StartingCredits), p.Credits())
	}

	// Each player starts with a scout and a colony ship at their homeworld.
	for _, p := range players {
		units := s.UnitsOf(p.ID())
		require.Len(t, units, 2)
		assert.NotNil(t, units[0].Hyperdrive())
		colony := units[1].Component(unit.ComponentColony)
		require.NotNil(t, colony)
		assert.Equal(t, int64(25), colony.PopulationCargo)
	}

	// Two connected systems.
	assert.ElementsMatch(t, []string{"alpha", "beta"}, s.Galaxy().SystemIDs())
	neighbors := s.Galaxy().Neighbors("alpha")
	require.Len(t, neighbors, 1)
	assert.Equal(t, "beta", neighbors[0].System)

	// Homeworlds are colonized, expansion targets are not.
	home := s.Galaxy().Body(1)
	require.NotNil(t, home)
	assert.True(t, home.Owner.Equals(shared.MustNewPlayerID(1)))
	assert.Equal(t, int64(50), home.Population)

	assert.NoError(t, s.CheckInvariants())
}

func TestNewSkirmish_PlayerCountBounds(t *testing.T) {
	_, err := setup.NewSkirmish(-1)
	assert.Error(t, err)
	_, err = setup.NewSkirmish(4)
	assert.Error(t, err)

	s, err := setup.NewSkirmish(0)
	require.NoError(t, err)
	assert.Len(t, s.Players(), 1)
}

func TestNewSkirmish_Deterministic(t *testing.T) {
	a, err := setup.NewSkirmish(2)
	require.NoError(t, err)
	b, err := setup.NewSkirmish(2)
	require.NoError(t, err)

	require.Len(t, a.Units(), len(b.Units()))
	for i, u := range a.Units() {
		assert.Equal(t, u.ID(), b.Units()[i].ID())
		assert.Equal(t, u.Name(), b.Units()[i].Name())
		assert.Equal(t, u.Location(), b.Units()[i].Location())
	}
}
