package helpers

import (
	"testing"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// NewTestGalaxy builds a three system chain: alpha - beta - gamma, with unit
// jump costs. Radii are small to keep tests readable.
func NewTestGalaxy(t *testing.T) *galaxy.Galaxy {
	t.Helper()

	g := galaxy.NewGalaxy()
	for _, id := range []string{"alpha", "beta", "gamma"} {
		sys, err := galaxy.NewStarSystem(id, 5)
		if err != nil {
			t.Fatalf("failed to build system %s: %v", id, err)
		}
		if err := g.AddSystem(sys); err != nil {
			t.Fatalf("failed to add system %s: %v", id, err)
		}
	}
	if err := g.Connect(
		1, "alpha", shared.NewHexCoord(3, 0), shared.Position{X: 100},
		2, "beta", shared.NewHexCoord(-3, 0), shared.Position{X: -100},
		1.0,
	); err != nil {
		t.Fatalf("failed to connect alpha-beta: %v", err)
	}
	if err := g.Connect(
		3, "beta", shared.NewHexCoord(3, 0), shared.Position{X: 100},
		4, "gamma", shared.NewHexCoord(-3, 0), shared.Position{X: -100},
		1.0,
	); err != nil {
		t.Fatalf("failed to connect beta-gamma: %v", err)
	}
	return g
}

// NewTestState builds a game state over NewTestGalaxy with two players.
func NewTestState(t *testing.T) *game.State {
	t.Helper()

	s := game.NewState(NewTestGalaxy(t))
	for i, name := range []string{"Ada", "Brix"} {
		p, err := ledger.NewPlayer(shared.MustNewPlayerID(i+1), name, "", i == 0, 1000, 0, 0)
		if err != nil {
			t.Fatalf("failed to create player %s: %v", name, err)
		}
		if err := s.AddPlayer(p); err != nil {
			t.Fatalf("failed to add player %s: %v", name, err)
		}
	}
	return s
}

// SpawnShip spawns a unit with the given components for the player, at the
// origin sector of alpha.
func SpawnShip(t *testing.T, s *game.State, player int, name string, hull unit.HullClass, components ...*unit.Component) *unit.Unit {
	t.Helper()

	u, err := s.SpawnUnit(
		shared.MustNewPlayerID(player),
		name,
		hull,
		components,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)},
	)
	if err != nil {
		t.Fatalf("failed to spawn %s: %v", name, err)
	}
	return u
}

// BasicDrive returns a basic hyperdrive with default range and cooldown.
func BasicDrive(t *testing.T) *unit.Component {
	t.Helper()
	c, err := unit.NewHyperdrive(unit.ComponentHyperdriveBasic, 0, 0)
	if err != nil {
		t.Fatalf("failed to create basic hyperdrive: %v", err)
	}
	return c
}

// AdvancedDrive returns an advanced hyperdrive with default range and cooldown.
func AdvancedDrive(t *testing.T) *unit.Component {
	t.Helper()
	c, err := unit.NewHyperdrive(unit.ComponentHyperdriveAdvanced, 0, 0)
	if err != nil {
		t.Fatalf("failed to create advanced hyperdrive: %v", err)
	}
	return c
}
