// Package game holds the root aggregate tying the world together: galaxy
// topology, player accounts, live units, and the inhibition index.
package game

import (
	"fmt"
	"sort"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/inhibition"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// State is the authoritative game state between turns. All mutation happens
// through the turn executor's serial write phase; readers may share it freely
// during the parallel read phase.
//
// Invariants:
// - Unit ids are unique and assigned in creation order
// - Destroyed units are removed before the turn ends; State never holds a
//   unit at zero hit points across a turn boundary
// - The inhibition tracker mirrors exactly the live units with active fields
type State struct {
	galaxy     *galaxy.Galaxy
	players    map[int]*ledger.Player
	units      map[int]*unit.Unit
	inhibition *inhibition.Tracker
	turn       int
	nextUnitID int
}

// NewState creates a fresh game state over the given galaxy, starting at
// turn zero.
func NewState(g *galaxy.Galaxy) *State {
	return &State{
		galaxy:     g,
		players:    make(map[int]*ledger.Player),
		units:      make(map[int]*unit.Unit),
		inhibition: inhibition.NewTracker(),
		turn:       0,
		nextUnitID: 1,
	}
}

// ReconstructState restores a state from persistence.
func ReconstructState(
	g *galaxy.Galaxy,
	players []*ledger.Player,
	units []*unit.Unit,
	tracker *inhibition.Tracker,
	turn int,
	nextUnitID int,
) (*State, error) {
	s := &State{
		galaxy:     g,
		players:    make(map[int]*ledger.Player),
		units:      make(map[int]*unit.Unit),
		inhibition: tracker,
		turn:       turn,
		nextUnitID: nextUnitID,
	}
	for _, p := range players {
		if _, exists := s.players[p.ID().Value()]; exists {
			return nil, shared.NewInvariantViolationError(
				fmt.Sprintf("duplicate player id %s in snapshot", p.ID()))
		}
		s.players[p.ID().Value()] = p
	}
	for _, u := range units {
		if _, exists := s.units[u.ID()]; exists {
			return nil, shared.NewInvariantViolationError(
				fmt.Sprintf("duplicate unit id %d in snapshot", u.ID()))
		}
		if u.ID() >= s.nextUnitID {
			s.nextUnitID = u.ID() + 1
		}
		s.units[u.ID()] = u
	}
	return s, nil
}

func (s *State) Galaxy() *galaxy.Galaxy            { return s.galaxy }
func (s *State) Inhibition() *inhibition.Tracker   { return s.inhibition }
func (s *State) Turn() int                         { return s.turn }
func (s *State) NextUnitID() int                   { return s.nextUnitID }

// AdvanceTurn increments the turn counter. Called once by the turn executor
// after all phases complete.
func (s *State) AdvanceTurn() {
	s.turn++
}

// AddPlayer registers a player account.
func (s *State) AddPlayer(p *ledger.Player) error {
	if _, exists := s.players[p.ID().Value()]; exists {
		return shared.NewDomainError(fmt.Sprintf("duplicate player id: %s", p.ID()))
	}
	s.players[p.ID().Value()] = p
	return nil
}

// Player returns the player with the given id, or nil.
func (s *State) Player(id shared.PlayerID) *ledger.Player {
	return s.players[id.Value()]
}

// Players returns all players ordered by id. Turn scheduling iterates this
// order every turn.
func (s *State) Players() []*ledger.Player {
	out := make([]*ledger.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().Value() < out[j].ID().Value() })
	return out
}

// SpawnUnit creates a unit with the next creation-order id and adds it to
// play.
func (s *State) SpawnUnit(
	owner shared.PlayerID,
	name string,
	hull unit.HullClass,
	components []*unit.Component,
	location unit.Location,
) (*unit.Unit, error) {
	u, err := unit.NewUnit(s.nextUnitID, owner, name, hull, components, location)
	if err != nil {
		return nil, err
	}
	s.units[u.ID()] = u
	s.nextUnitID++
	return u, nil
}

// Unit returns the unit with the given id, or nil.
func (s *State) Unit(id int) *unit.Unit {
	return s.units[id]
}

// Units returns all live units in creation order.
func (s *State) Units() []*unit.Unit {
	out := make([]*unit.Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// UnitsOf returns the player's units in creation order.
func (s *State) UnitsOf(owner shared.PlayerID) []*unit.Unit {
	var out []*unit.Unit
	for _, u := range s.units {
		if u.Owner().Equals(owner) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// UnitsInSector returns the units occupying a sector, in creation order.
func (s *State) UnitsInSector(system string, sector shared.HexCoord) []*unit.Unit {
	var out []*unit.Unit
	for _, u := range s.units {
		loc := u.Location()
		if loc.System == system && loc.Sector.Equals(sector) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// RemoveUnit takes a unit out of play and drops any inhibition fields it
// projected.
func (s *State) RemoveUnit(id int) {
	if _, exists := s.units[id]; !exists {
		return
	}
	delete(s.units, id)
	s.inhibition.RemoveUnit(id)
}

// CheckInvariants verifies state consistency after a turn. A violation is
// fatal to the turn that produced it.
func (s *State) CheckInvariants() error {
	for _, u := range s.units {
		if u.IsDestroyed() {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("destroyed unit %d still in play", u.ID()))
		}
		loc := u.Location()
		sys := s.galaxy.System(loc.System)
		if sys == nil {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("unit %d in unknown system %s", u.ID(), loc.System))
		}
		if !sys.Contains(loc.Sector) {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("unit %d in sector %s outside system %s", u.ID(), loc.Sector, loc.System))
		}
	}
	for _, f := range s.inhibition.Fields() {
		u := s.units[f.UnitID]
		if u == nil {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("inhibition field for missing unit %d", f.UnitID))
		}
		loc := u.Location()
		if loc.System != f.System || !loc.Sector.Equals(f.Sector) {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("inhibition field for unit %d out of place", f.UnitID))
		}
		if !u.InhibitorActive() {
			return shared.NewInvariantViolationError(
				fmt.Sprintf("inhibition field for unit %d with inactive emitter", f.UnitID))
		}
	}
	return nil
}
