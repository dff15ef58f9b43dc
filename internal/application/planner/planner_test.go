package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
	"github.com/sdudley/hexfront-go/test/helpers"
)

func requireValidationReason(t *testing.T, err error, reason shared.ValidationReason) {
	t.Helper()
	var vErr *shared.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, reason, vErr.Reason)
}

func TestPlanMove(t *testing.T) {
	p := planner.NewPlanner(0)
	s := helpers.NewTestState(t)

	t.Run("requires an engine", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Buoy", unit.HullTiny)
		_, err := p.PlanMove(u, shared.NewPosition(100, 0))
		requireValidationReason(t, err, shared.ReasonMissingComponent)
	})

	t.Run("rejects targets outside the sector boundary", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Tug", unit.HullTiny, unit.NewEngine(100))
		_, err := p.PlanMove(u, shared.NewPosition(1200, 0))
		requireValidationReason(t, err, shared.ReasonIllegalTarget)
	})

	t.Run("estimates turns at engine speed", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Freighter", unit.HullTiny, unit.NewEngine(100))
		plan, err := p.PlanMove(u, shared.NewPosition(250, 0))
		require.NoError(t, err)
		assert.Equal(t, 3, plan.Turns)
		assert.Equal(t, 100.0, plan.Speed)
	})
}

func TestPlanJumpHex(t *testing.T) {
	p := planner.NewPlanner(0)
	s := helpers.NewTestState(t)

	t.Run("requires a hyperdrive", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Raft", unit.HullTiny, unit.NewEngine(100))
		_, err := p.PlanJumpHex(s, u, shared.NewHexCoord(2, -1))
		requireValidationReason(t, err, shared.ReasonMissingComponent)
	})

	t.Run("basic drive suffices", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Hopper", unit.HullSmall, helpers.BasicDrive(t))
		plan, err := p.PlanJumpHex(s, u, shared.NewHexCoord(2, -1))
		require.NoError(t, err)
		require.Len(t, plan.Waypoints, 1)
		assert.Equal(t, shared.NewHexCoord(2, -1), plan.Waypoints[0])
	})

	t.Run("long jumps split into in-range legs", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Strider", unit.HullSmall, helpers.BasicDrive(t))
		u.SetLocation("alpha", shared.NewHexCoord(-5, 0), shared.Position{})

		plan, err := p.PlanJumpHex(s, u, shared.NewHexCoord(5, 0))
		require.NoError(t, err)
		require.Len(t, plan.Waypoints, 2)
		assert.Equal(t, shared.NewHexCoord(5, 0), plan.Waypoints[1])
		assert.LessOrEqual(t,
			shared.NewHexCoord(-5, 0).DistanceTo(plan.Waypoints[0]), unit.DefaultJumpRange)
	})

	t.Run("rejects targets outside the system", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Edge", unit.HullSmall, helpers.BasicDrive(t))
		_, err := p.PlanJumpHex(s, u, shared.NewHexCoord(9, 0))
		requireValidationReason(t, err, shared.ReasonIllegalTarget)
	})

	t.Run("rejects the current sector", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Anchor", unit.HullSmall, helpers.BasicDrive(t))
		_, err := p.PlanJumpHex(s, u, shared.NewHexCoord(0, 0))
		requireValidationReason(t, err, shared.ReasonIllegalTarget)
	})
}

func TestPlanJumpWormhole(t *testing.T) {
	p := planner.NewPlanner(0)
	s := helpers.NewTestState(t)

	t.Run("requires an advanced hyperdrive", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Basic", unit.HullSmall, helpers.BasicDrive(t))
		_, err := p.PlanJumpWormhole(s, u, "beta")
		requireValidationReason(t, err, shared.ReasonMissingComponent)
	})

	t.Run("routes across intermediate systems", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Liner", unit.HullSmall, helpers.AdvancedDrive(t))
		plan, err := p.PlanJumpWormhole(s, u, "gamma")
		require.NoError(t, err)
		assert.Equal(t, []string{"beta", "gamma"}, plan.Hops)
		assert.Equal(t, 2.0, plan.TotalCost)
	})

	t.Run("unknown destination", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Lost", unit.HullSmall, helpers.AdvancedDrive(t))
		_, err := p.PlanJumpWormhole(s, u, "delta")
		requireValidationReason(t, err, shared.ReasonIllegalTarget)
	})

	t.Run("disconnected destination reports NO_PATH", func(t *testing.T) {
		g := galaxy.NewGalaxy()
		for _, id := range []string{"alpha", "island"} {
			sys, err := galaxy.NewStarSystem(id, 2)
			require.NoError(t, err)
			require.NoError(t, g.AddSystem(sys))
		}
		island := game.NewState(g)
		player, err := ledger.NewPlayer(shared.MustNewPlayerID(1), "Ada", "", true, 0, 0, 0)
		require.NoError(t, err)
		require.NoError(t, island.AddPlayer(player))
		u, err := island.SpawnUnit(player.ID(), "Marooned", unit.HullSmall,
			[]*unit.Component{helpers.AdvancedDrive(t)},
			unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)})
		require.NoError(t, err)

		_, err = p.PlanJumpWormhole(island, u, "island")
		var pErr *shared.PathfindingError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, shared.ReasonNoPath, pErr.Reason)
	})

	t.Run("search budget exceeded", func(t *testing.T) {
		tight := planner.NewPlanner(1)
		u := helpers.SpawnShip(t, s, 1, "Budget", unit.HullSmall, helpers.AdvancedDrive(t))
		_, err := tight.PlanJumpWormhole(s, u, "gamma")
		var pErr *shared.PathfindingError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, shared.ReasonSearchBudgetExceeded, pErr.Reason)
	})

	t.Run("deterministic route", func(t *testing.T) {
		u := helpers.SpawnShip(t, s, 1, "Repeat", unit.HullSmall, helpers.AdvancedDrive(t))
		first, err := p.PlanJumpWormhole(s, u, "gamma")
		require.NoError(t, err)
		second, err := p.PlanJumpWormhole(s, u, "gamma")
		require.NoError(t, err)
		assert.Equal(t, first.Hops, second.Hops)
	})
}
