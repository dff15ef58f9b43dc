// Package planner turns navigation intents into executable plans. Planning
// is read-only over the game state so the turn executor can run it for many
// units concurrently.
package planner

import (
	"math"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// DefaultSearchBudget caps the number of nodes a wormhole route search may
// expand before giving up.
const DefaultSearchBudget = 10000

// MovePlan is a validated sub-light move within the unit's current sector.
type MovePlan struct {
	Target shared.Position
	Speed  float64
	// Turns is the whole number of turns the move will take at Speed.
	Turns int
}

// JumpHexPlan is a validated intra-system hyperspace jump, split into legs
// no longer than the drive's jump range.
type JumpHexPlan struct {
	Waypoints []shared.HexCoord
}

// JumpWormholePlan is a validated inter-system route. Hops lists the systems
// on the shortest path, starting with the first hop (the current system is
// excluded).
type JumpWormholePlan struct {
	Hops      []string
	TotalCost float64
}

// Planner validates navigation orders against unit capabilities and galaxy
// topology.
type Planner struct {
	searchBudget int
}

// NewPlanner creates a planner with the given route search budget. A budget
// of zero or less falls back to the default.
func NewPlanner(searchBudget int) *Planner {
	if searchBudget <= 0 {
		searchBudget = DefaultSearchBudget
	}
	return &Planner{searchBudget: searchBudget}
}

func (p *Planner) SearchBudget() int { return p.searchBudget }

// PlanMove validates a sub-light move for the unit. The target must lie
// within the sector boundary and the unit must have an engine.
func (p *Planner) PlanMove(u *unit.Unit, target shared.Position) (*MovePlan, error) {
	engine := u.Component(unit.ComponentEngine)
	if engine == nil {
		return nil, shared.NewMissingComponentError("move requires an engine")
	}
	boundary := shared.Circle{Center: shared.Position{}, Radius: galaxy.SectorRadius}
	if !boundary.Contains(target) {
		return nil, shared.NewIllegalTargetError("move target outside sector boundary")
	}

	dist := u.Location().Offset.DistanceTo(target)
	turns := int(math.Ceil(dist / engine.Speed))
	if turns < 1 {
		turns = 1
	}
	return &MovePlan{Target: target, Speed: engine.Speed, Turns: turns}, nil
}

// PlanJumpHex validates an intra-system jump and splits it into legs within
// the drive's range. Either hyperdrive variant powers hex jumps.
func (p *Planner) PlanJumpHex(s *game.State, u *unit.Unit, target shared.HexCoord) (*JumpHexPlan, error) {
	drive := u.Hyperdrive()
	if drive == nil {
		return nil, shared.NewMissingComponentError("hex jump requires a hyperdrive")
	}

	loc := u.Location()
	sys := s.Galaxy().System(loc.System)
	if sys == nil {
		return nil, shared.NewInvariantViolationError("unit in unknown system " + loc.System)
	}
	if !sys.Contains(target) {
		return nil, shared.NewIllegalTargetError("jump target outside system")
	}
	if target.Equals(loc.Sector) {
		return nil, shared.NewIllegalTargetError("jump target is the current sector")
	}

	waypoints := loc.Sector.JumpWaypoints(target, drive.JumpRange)
	return &JumpHexPlan{Waypoints: waypoints}, nil
}

// PlanJumpWormhole validates an inter-system jump and finds the cheapest
// wormhole route to the target system. Only an advanced hyperdrive powers
// wormhole transit.
func (p *Planner) PlanJumpWormhole(s *game.State, u *unit.Unit, targetSystem string) (*JumpWormholePlan, error) {
	if !u.HasComponent(unit.ComponentHyperdriveAdvanced) {
		return nil, shared.NewMissingComponentError("wormhole jump requires an advanced hyperdrive")
	}

	loc := u.Location()
	g := s.Galaxy()
	if g.System(targetSystem) == nil {
		return nil, shared.NewIllegalTargetError("unknown destination system " + targetSystem)
	}
	if targetSystem == loc.System {
		return nil, shared.NewIllegalTargetError("already in destination system")
	}

	hops, cost, err := shortestRoute(g, loc.System, targetSystem, p.searchBudget)
	if err != nil {
		return nil, err
	}
	return &JumpWormholePlan{Hops: hops, TotalCost: cost}, nil
}
