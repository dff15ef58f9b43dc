package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/adapters/persistence"
	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
	"github.com/sdudley/hexfront-go/test/helpers"
)

func newRepo(t *testing.T) *persistence.GormSnapshotRepository {
	t.Helper()
	return persistence.NewGormSnapshotRepository(helpers.NewTestDB(t))
}

// richState builds a state exercising every persisted aspect: colonized
// bodies, units with stateful components and queued orders, active
// inhibition fields, and a non-zero turn counter.
func richState(t *testing.T) *game.State {
	t.Helper()
	s := helpers.NewTestState(t)

	moon := galaxy.NewBody(100, galaxy.BodyMoon, "alpha", shared.NewHexCoord(1, 0), shared.Position{X: 25})
	moon.Name = "Kite"
	require.NoError(t, s.Galaxy().System("alpha").AddBody(moon))
	require.NoError(t, moon.Colonize(shared.MustNewPlayerID(1), 30))

	drive := helpers.AdvancedDrive(t)
	drive.CooldownRemaining = 2
	liner := helpers.SpawnShip(t, s, 1, "Liner", unit.HullMedium, drive, unit.NewEngine(100))
	liner.Queue().Enqueue(order.NewJumpWormhole("gamma"))
	liner.Queue().Enqueue(order.NewMove(shared.NewPosition(50, -25)))

	inh := unit.NewInhibitor(0)
	inh.Active = true
	jammer := helpers.SpawnShip(t, s, 2, "Jammer", unit.HullLarge, inh, unit.NewWeapon(10, 150, 1))
	jammer.TakeDamage(40)
	s.Inhibition().Activate("alpha", shared.NewHexCoord(0, 0), jammer.ID(), jammer.Owner())

	s.AdvanceTurn()
	s.AdvanceTurn()
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := richState(t)

	require.NoError(t, repo.Save(ctx, "campaign", s))
	restored, err := repo.Load(ctx, "campaign")
	require.NoError(t, err)

	assert.Equal(t, s.Turn(), restored.Turn())
	assert.Equal(t, s.NextUnitID(), restored.NextUnitID())

	// Galaxy topology survives, edges included.
	assert.ElementsMatch(t, s.Galaxy().SystemIDs(), restored.Galaxy().SystemIDs())
	assert.Equal(t, s.Galaxy().Neighbors("beta"), restored.Galaxy().Neighbors("beta"))
	wh := restored.Galaxy().WormholeFrom("alpha", "beta")
	require.NotNil(t, wh)
	assert.Equal(t, shared.NewHexCoord(3, 0), wh.Sector)

	// Colonized body keeps its owner and population.
	moon := restored.Galaxy().Body(100)
	require.NotNil(t, moon)
	assert.Equal(t, "Kite", moon.Name)
	assert.True(t, moon.Owner.Equals(shared.MustNewPlayerID(1)))
	assert.Equal(t, int64(30), moon.Population)

	// Players restore with full balances.
	for _, want := range s.Players() {
		got := restored.Player(want.ID())
		require.NotNil(t, got)
		assert.Equal(t, want.Name(), got.Name())
		assert.Equal(t, want.Credits(), got.Credits())
		assert.Equal(t, want.IsHuman(), got.IsHuman())
	}

	// Units restore with component state and queued orders intact.
	liner := restored.Unit(1)
	require.NotNil(t, liner)
	assert.Equal(t, unit.HullMedium, liner.Hull())
	drive := liner.Component(unit.ComponentHyperdriveAdvanced)
	require.NotNil(t, drive)
	assert.Equal(t, 2, drive.CooldownRemaining)
	orders := liner.Queue().Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, order.TypeJumpWormhole, orders[0].Type)
	assert.Equal(t, "gamma", orders[0].TargetSystem)
	assert.Equal(t, order.TypeMove, orders[1].Type)
	assert.True(t, orders[1].TargetOffset.Equals(shared.NewPosition(50, -25)))

	jammer := restored.Unit(2)
	require.NotNil(t, jammer)
	assert.Equal(t, unit.HullLarge.HitPoints()-40, jammer.HitPoints())
	assert.True(t, jammer.InhibitorActive())

	// The inhibition index restores and still satisfies the invariants.
	assert.True(t, restored.Inhibition().IsInhibited("alpha", shared.NewHexCoord(0, 0)))
	assert.NoError(t, restored.CheckInvariants())
}

func TestSnapshotSaveReplaces(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	s := helpers.NewTestState(t)
	helpers.SpawnShip(t, s, 1, "First", unit.HullTiny)
	require.NoError(t, repo.Save(ctx, "slot", s))

	s2 := helpers.NewTestState(t)
	helpers.SpawnShip(t, s2, 1, "Second", unit.HullSmall)
	helpers.SpawnShip(t, s2, 2, "Third", unit.HullSmall)
	require.NoError(t, repo.Save(ctx, "slot", s2))

	restored, err := repo.Load(ctx, "slot")
	require.NoError(t, err)
	require.Len(t, restored.Units(), 2)
	assert.Equal(t, "Second", restored.Unit(1).Name())
}

func TestSnapshotNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, persistence.ErrSnapshotNotFound)
}

func TestSnapshotListAndDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := helpers.NewTestState(t)

	require.NoError(t, repo.Save(ctx, "zulu", s))
	require.NoError(t, repo.Save(ctx, "alpha", s))

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zulu"}, names)

	require.NoError(t, repo.Delete(ctx, "alpha"))
	names, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu"}, names)

	_, err = repo.Load(ctx, "alpha")
	assert.ErrorIs(t, err, persistence.ErrSnapshotNotFound)
}
