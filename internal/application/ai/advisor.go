// Package ai proposes orders for computer players. The advisor is a pure
// function of the game state: same state, same proposals. It never mutates
// state; proposals go through the normal submission path.
package ai

import (
	"sort"

	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// Proposal pairs a unit with the order the advisor wants queued on it.
type Proposal struct {
	UnitID int
	Order  *order.Order
}

// Propose returns one order per idle unit of the player, in unit creation
// order. Units with queued work are left alone.
//
// Rules, first match wins:
//  1. Weapon + enemy in sector: attack the lowest id enemy
//  2. Colony with cargo + colonizable body in sector: colonize it
//  3. Colony without cargo + owned populated body in sector: load colonists
//  4. Inactive inhibitor: switch it on
//  5. Hyperdrive + off-center sector: jump back toward the origin sector
func Propose(s *game.State, player shared.PlayerID) []Proposal {
	var out []Proposal
	for _, u := range s.UnitsOf(player) {
		if u.Queue().Len() > 0 {
			continue
		}
		if o := proposeFor(s, u); o != nil {
			out = append(out, Proposal{UnitID: u.ID(), Order: o})
		}
	}
	return out
}

func proposeFor(s *game.State, u *unit.Unit) *order.Order {
	loc := u.Location()

	if u.HasComponent(unit.ComponentWeapon) {
		if enemy := nearestEnemy(s, u); enemy != nil {
			return order.NewAttack(enemy.ID())
		}
	}

	if colony := u.Component(unit.ComponentColony); colony != nil {
		if colony.PopulationCargo > 0 {
			if b := bodyInSector(s, loc, func(b bodyView) bool { return b.colonizable }); b != nil {
				return order.NewColonize(b.id)
			}
		} else {
			owner := u.Owner().Value()
			if b := bodyInSector(s, loc, func(b bodyView) bool {
				return b.ownerID == owner && b.population > 1
			}); b != nil {
				return order.NewLoadColonists(b.id, colony.CargoCapacity)
			}
		}
	}

	if inh := u.Component(unit.ComponentInhibitor); inh != nil && !inh.Active {
		return order.NewToggleInhibitor(true)
	}

	if u.Hyperdrive() != nil && !loc.Sector.Equals(shared.NewHexCoord(0, 0)) {
		sys := s.Galaxy().System(loc.System)
		origin := shared.NewHexCoord(0, 0)
		if sys != nil && sys.Contains(origin) {
			return order.NewJumpHex(origin)
		}
	}

	return nil
}

func nearestEnemy(s *game.State, u *unit.Unit) *unit.Unit {
	loc := u.Location()
	var best *unit.Unit
	for _, other := range s.UnitsInSector(loc.System, loc.Sector) {
		if other.Owner().Equals(u.Owner()) {
			continue
		}
		if best == nil || other.ID() < best.ID() {
			best = other
		}
	}
	return best
}

type bodyView struct {
	id          int
	colonizable bool
	ownerID     int
	population  int64
}

func bodyInSector(s *game.State, loc unit.Location, match func(bodyView) bool) *bodyView {
	sys := s.Galaxy().System(loc.System)
	if sys == nil {
		return nil
	}
	sec := sys.Sector(loc.Sector)
	if sec == nil {
		return nil
	}

	var candidates []bodyView
	for _, b := range sec.Bodies {
		view := bodyView{
			id:          b.ID,
			colonizable: b.IsColonizable(),
			population:  b.Population,
		}
		if b.IsColonized() {
			view.ownerID = b.Owner.Value()
		}
		candidates = append(candidates, view)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].id < candidates[j].id })
	for i := range candidates {
		if match(candidates[i]) {
			return &candidates[i]
		}
	}
	return nil
}
