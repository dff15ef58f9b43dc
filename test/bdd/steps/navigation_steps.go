package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/application/turn"
	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// navigationContext drives the turn engine through hyperspace navigation
// scenarios: hex jumps, wormhole routes, cooldowns, and inhibition fields.
type navigationContext struct {
	state  *game.State
	ship   *unit.Unit
	report *game.TurnReport
}

func (nc *navigationContext) reset() {
	nc.state = nil
	nc.ship = nil
	nc.report = nil
}

// newSkirmishState builds the standard three system chain used across the
// navigation features: alpha - beta - gamma, unit jump costs, two players.
func newSkirmishState() (*game.State, error) {
	g := galaxy.NewGalaxy()
	for _, id := range []string{"alpha", "beta", "gamma"} {
		sys, err := galaxy.NewStarSystem(id, 5)
		if err != nil {
			return nil, err
		}
		if err := g.AddSystem(sys); err != nil {
			return nil, err
		}
	}
	if err := g.Connect(
		1, "alpha", shared.NewHexCoord(3, 0), shared.Position{X: 100},
		2, "beta", shared.NewHexCoord(-3, 0), shared.Position{X: -100},
		1.0,
	); err != nil {
		return nil, err
	}
	if err := g.Connect(
		3, "beta", shared.NewHexCoord(3, 0), shared.Position{X: 100},
		4, "gamma", shared.NewHexCoord(-3, 0), shared.Position{X: -100},
		1.0,
	); err != nil {
		return nil, err
	}

	s := game.NewState(g)
	for i, name := range []string{"Ada", "Brix"} {
		p, err := ledger.NewPlayer(shared.MustNewPlayerID(i+1), name, "", i == 0, 1000, 0, 0)
		if err != nil {
			return nil, err
		}
		if err := s.AddPlayer(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (nc *navigationContext) aGameWithTwoPlayers() error {
	s, err := newSkirmishState()
	if err != nil {
		return err
	}
	nc.state = s
	return nil
}

func (nc *navigationContext) playerHasAShipWithDrive(player int, name, driveKind string) error {
	var components []*unit.Component
	switch driveKind {
	case "basic":
		drive, err := unit.NewHyperdrive(unit.ComponentHyperdriveBasic, 0, 0)
		if err != nil {
			return err
		}
		components = append(components, drive)
	case "advanced":
		drive, err := unit.NewHyperdrive(unit.ComponentHyperdriveAdvanced, 0, 0)
		if err != nil {
			return err
		}
		components = append(components, drive)
	case "no":
		// engine only, no hyperdrive
		components = append(components, unit.NewEngine(unit.DefaultEngineSpeed))
	default:
		return fmt.Errorf("unknown drive kind %q", driveKind)
	}

	ship, err := nc.state.SpawnUnit(
		shared.MustNewPlayerID(player), name, unit.HullSmall, components,
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)},
	)
	if err != nil {
		return err
	}
	nc.ship = ship
	return nil
}

func (nc *navigationContext) anEnemyInhibitorIsActiveInTheShipsSector() error {
	loc := nc.ship.Location()
	inh := unit.NewInhibitor(0)
	inh.Active = true
	jammer, err := nc.state.SpawnUnit(
		shared.MustNewPlayerID(2), "Jammer", unit.HullMedium,
		[]*unit.Component{inh},
		unit.Location{System: loc.System, Sector: loc.Sector},
	)
	if err != nil {
		return err
	}
	nc.state.Inhibition().Activate(loc.System, loc.Sector, jammer.ID(), jammer.Owner())
	return nil
}

func (nc *navigationContext) theShipIsOrderedToJumpToSector(q, r int) error {
	nc.ship.Queue().Enqueue(order.NewJumpHex(shared.NewHexCoord(q, r)))
	return nil
}

func (nc *navigationContext) theShipIsOrderedToJumpToSystem(system string) error {
	nc.ship.Queue().Enqueue(order.NewJumpWormhole(system))
	return nil
}

func (nc *navigationContext) theTurnEnds() error {
	handler := turn.NewEndTurnHandler(nc.state, planner.NewPlanner(0))
	resp, err := handler.Handle(context.Background(), &turn.EndTurnCommand{})
	if err != nil {
		return err
	}
	nc.report = resp.(*turn.EndTurnResponse).Report
	return nil
}

func (nc *navigationContext) turnsEnd(n int) error {
	for i := 0; i < n; i++ {
		if err := nc.theTurnEnds(); err != nil {
			return err
		}
	}
	return nil
}

func (nc *navigationContext) theShipShouldBeInSector(q, r int) error {
	got := nc.ship.Location().Sector
	if !got.Equals(shared.NewHexCoord(q, r)) {
		return fmt.Errorf("expected sector (%d,%d) but ship is in %s", q, r, got)
	}
	return nil
}

func (nc *navigationContext) theShipShouldBeInSystem(system string) error {
	if got := nc.ship.Location().System; got != system {
		return fmt.Errorf("expected system %q but ship is in %q", system, got)
	}
	return nil
}

func (nc *navigationContext) theShipsHyperdriveShouldBeOnCooldown() error {
	drive := nc.ship.Hyperdrive()
	if drive == nil {
		return fmt.Errorf("ship has no hyperdrive")
	}
	if !drive.OnCooldown() {
		return fmt.Errorf("expected hyperdrive on cooldown, remaining %d", drive.CooldownRemaining)
	}
	return nil
}

func (nc *navigationContext) theOrderShouldFailWithReason(reason string) error {
	if nc.report == nil {
		return fmt.Errorf("no turn report recorded")
	}
	for _, o := range nc.report.Outcomes {
		if o.UnitID != nc.ship.ID() {
			continue
		}
		if o.Status != order.StatusFailed {
			return fmt.Errorf("expected failed order, got status %s", o.Status)
		}
		if o.Reason != reason {
			return fmt.Errorf("expected reason %s, got %s", reason, o.Reason)
		}
		return nil
	}
	return fmt.Errorf("no outcome recorded for unit %d", nc.ship.ID())
}

func (nc *navigationContext) theOrderShouldComplete() error {
	if nc.report == nil {
		return fmt.Errorf("no turn report recorded")
	}
	for _, o := range nc.report.Outcomes {
		if o.UnitID == nc.ship.ID() && o.Status == order.StatusCompleted {
			return nil
		}
	}
	return fmt.Errorf("no completed outcome for unit %d", nc.ship.ID())
}

// InitializeNavigationScenario registers the navigation step definitions.
func InitializeNavigationScenario(sc *godog.ScenarioContext) {
	nc := &navigationContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		nc.reset()
		return ctx, nil
	})

	sc.Step(`^a game with two players$`, nc.aGameWithTwoPlayers)
	sc.Step(`^player (\d+) has a ship "([^"]*)" with (?:a |an )?(basic|advanced|no) hyperdrive$`, nc.playerHasAShipWithDrive)
	sc.Step(`^an enemy inhibitor is active in the ship's sector$`, nc.anEnemyInhibitorIsActiveInTheShipsSector)
	sc.Step(`^the ship is ordered to jump to sector (-?\d+),(-?\d+)$`, nc.theShipIsOrderedToJumpToSector)
	sc.Step(`^the ship is ordered to jump to system "([^"]*)"$`, nc.theShipIsOrderedToJumpToSystem)
	sc.Step(`^the turn ends$`, nc.theTurnEnds)
	sc.Step(`^(\d+) turns end$`, nc.turnsEnd)
	sc.Step(`^the ship should be in sector (-?\d+),(-?\d+)$`, nc.theShipShouldBeInSector)
	sc.Step(`^the ship should be in system "([^"]*)"$`, nc.theShipShouldBeInSystem)
	sc.Step(`^the ship's hyperdrive should be on cooldown$`, nc.theShipsHyperdriveShouldBeOnCooldown)
	sc.Step(`^the order should fail with reason "([^"]*)"$`, nc.theOrderShouldFailWithReason)
	sc.Step(`^the order should complete$`, nc.theOrderShouldComplete)
}
