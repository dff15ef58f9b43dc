package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/application/turn"
	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// turnContext drives construction and economy scenarios through full turns.
type turnContext struct {
	state   *game.State
	builder *unit.Unit
	report  *game.TurnReport
	spawned []int
}

func (tc *turnContext) reset() {
	tc.state = nil
	tc.builder = nil
	tc.report = nil
	tc.spawned = nil
}

func (tc *turnContext) aGameWithTwoPlayers() error {
	s, err := newSkirmishState()
	if err != nil {
		return err
	}
	tc.state = s
	return nil
}

func (tc *turnContext) playerHasAConstructorShip(player int) error {
	builder, err := tc.state.SpawnUnit(
		shared.MustNewPlayerID(player), "Forge", unit.HullMedium,
		[]*unit.Component{unit.NewConstructor()},
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)},
	)
	if err != nil {
		return err
	}
	tc.builder = builder
	return nil
}

func (tc *turnContext) playerHasAColonyShipWithColonists(player int, cargo int) error {
	colony := unit.NewColony(0)
	colony.PopulationCargo = int64(cargo)
	builder, err := tc.state.SpawnUnit(
		shared.MustNewPlayerID(player), "Seeder", unit.HullMedium,
		[]*unit.Component{colony},
		unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)},
	)
	if err != nil {
		return err
	}
	tc.builder = builder
	return nil
}

func (tc *turnContext) anUncolonizedMoonInTheSector(bodyID int) error {
	moon := galaxy.NewBody(bodyID, galaxy.BodyMoon, "alpha", shared.NewHexCoord(0, 0), shared.Position{X: 10})
	return tc.state.Galaxy().System("alpha").AddBody(moon)
}

func (tc *turnContext) theShipIsOrderedToBuild(template string) error {
	tc.builder.Queue().Enqueue(order.NewConstruct(template, shared.NewPosition(50, 0)))
	return nil
}

func (tc *turnContext) theShipIsOrderedToColonizeBody(bodyID int) error {
	tc.builder.Queue().Enqueue(order.NewColonize(bodyID))
	return nil
}

func (tc *turnContext) turnsEnd(n int) error {
	handler := turn.NewEndTurnHandler(tc.state, planner.NewPlanner(0))
	for i := 0; i < n; i++ {
		resp, err := handler.Handle(context.Background(), &turn.EndTurnCommand{})
		if err != nil {
			return err
		}
		tc.report = resp.(*turn.EndTurnResponse).Report
		tc.spawned = append(tc.spawned, tc.report.SpawnedUnits...)
	}
	return nil
}

func (tc *turnContext) theTurnCounterShouldBe(n int) error {
	if got := tc.state.Turn(); got != n {
		return fmt.Errorf("expected turn %d, got %d", n, got)
	}
	return nil
}

func (tc *turnContext) playerShouldHaveCredits(player int, credits int) error {
	p := tc.state.Player(shared.MustNewPlayerID(player))
	if p == nil {
		return fmt.Errorf("unknown player %d", player)
	}
	if p.Credits() != int64(credits) {
		return fmt.Errorf("expected %d credits, got %d", credits, p.Credits())
	}
	return nil
}

func (tc *turnContext) aNewUnitShouldHaveSpawned() error {
	if len(tc.spawned) == 0 {
		return fmt.Errorf("no units spawned")
	}
	if tc.state.Unit(tc.spawned[0]) == nil {
		return fmt.Errorf("spawned unit %d not in play", tc.spawned[0])
	}
	return nil
}

func (tc *turnContext) noUnitShouldHaveSpawned() error {
	if len(tc.spawned) > 0 {
		return fmt.Errorf("unexpected spawned units %v", tc.spawned)
	}
	return nil
}

func (tc *turnContext) bodyShouldBeOwnedByPlayer(bodyID, player int) error {
	b := tc.state.Galaxy().Body(bodyID)
	if b == nil {
		return fmt.Errorf("unknown body %d", bodyID)
	}
	if !b.Owner.Equals(shared.MustNewPlayerID(player)) {
		return fmt.Errorf("body %d owned by %s, expected player %d", bodyID, b.Owner, player)
	}
	return nil
}

func (tc *turnContext) playerCrystalShouldBeAtLeast(player, amount int) error {
	p := tc.state.Player(shared.MustNewPlayerID(player))
	if p == nil {
		return fmt.Errorf("unknown player %d", player)
	}
	if p.Crystal() < int64(amount) {
		return fmt.Errorf("expected at least %d crystal, got %d", amount, p.Crystal())
	}
	return nil
}

// InitializeTurnScenario registers the construction and economy steps.
func InitializeTurnScenario(sc *godog.ScenarioContext) {
	tc := &turnContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a fresh game with two players$`, tc.aGameWithTwoPlayers)
	sc.Step(`^player (\d+) has a constructor ship$`, tc.playerHasAConstructorShip)
	sc.Step(`^player (\d+) has a colony ship carrying (\d+) colonists$`, tc.playerHasAColonyShipWithColonists)
	sc.Step(`^an uncolonized moon with id (\d+) in the sector$`, tc.anUncolonizedMoonInTheSector)
	sc.Step(`^the ship is ordered to build "([^"]*)"$`, tc.theShipIsOrderedToBuild)
	sc.Step(`^the ship is ordered to colonize body (\d+)$`, tc.theShipIsOrderedToColonizeBody)
	sc.Step(`^(\d+) turns pass$`, tc.turnsEnd)
	sc.Step(`^the turn counter should be (\d+)$`, tc.theTurnCounterShouldBe)
	sc.Step(`^player (\d+) should have (\d+) credits$`, tc.playerShouldHaveCredits)
	sc.Step(`^a new unit should have spawned$`, tc.aNewUnitShouldHaveSpawned)
	sc.Step(`^no unit should have spawned$`, tc.noUnitShouldHaveSpawned)
	sc.Step(`^body (\d+) should be owned by player (\d+)$`, tc.bodyShouldBeOwnedByPlayer)
	sc.Step(`^player (\d+) crystal should be at least (\d+)$`, tc.playerCrystalShouldBeAtLeast)
}
