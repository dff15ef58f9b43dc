package unit

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Location addresses a unit across the three spatial scales: the system it
// occupies, the sector within that system, and the continuous offset within
// the sector.
type Location struct {
	System string          `json:"system"`
	Sector shared.HexCoord `json:"sector"`
	Offset shared.Position `json:"offset"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s %s %s", l.System, l.Sector, l.Offset)
}

// Unit entity - a mobile game object owned by a player.
//
// Invariants:
// - ID must be positive; ids are assigned in creation order and drive
//   deterministic scheduling
// - Owner must be a valid player
// - Hull class must be one of the five tiers
// - Total component hull cost cannot exceed the hull class capacity
// - Hit points stay within [0, hull hit points]; a unit at 0 is destroyed
//   and removed from play
//
// Capability model:
// - A unit can do only what its installed components allow; order validation
//   scans the component list for the required kind
type Unit struct {
	id         int
	owner      shared.PlayerID
	name       string
	hull       HullClass
	components []*Component
	location   Location
	hitPoints  int
	queue      *order.Queue
}

// NewUnit creates a new Unit entity with validation. Hit points start at the
// hull maximum and the order queue starts empty.
func NewUnit(
	id int,
	owner shared.PlayerID,
	name string,
	hull HullClass,
	components []*Component,
	location Location,
) (*Unit, error) {
	u := &Unit{
		id:         id,
		owner:      owner,
		name:       name,
		hull:       hull,
		components: components,
		location:   location,
		queue:      order.NewQueue(),
	}
	if u.hull.Valid() {
		u.hitPoints = hull.HitPoints()
	}

	if err := u.validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// ReconstructUnit restores a Unit from persistence, bypassing the fresh-unit
// defaults but not the invariants.
func ReconstructUnit(
	id int,
	owner shared.PlayerID,
	name string,
	hull HullClass,
	components []*Component,
	location Location,
	hitPoints int,
	queue *order.Queue,
) (*Unit, error) {
	if queue == nil {
		queue = order.NewQueue()
	}
	u := &Unit{
		id:         id,
		owner:      owner,
		name:       name,
		hull:       hull,
		components: components,
		location:   location,
		hitPoints:  hitPoints,
		queue:      queue,
	}

	if err := u.validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *Unit) validate() error {
	if u.id <= 0 {
		return shared.NewInvalidUnitDataError("unit id must be positive")
	}

	if u.owner.IsZero() {
		return shared.NewInvalidUnitDataError("owner must be a valid player")
	}

	if u.name == "" {
		return shared.NewInvalidUnitDataError("unit name cannot be empty")
	}

	if !u.hull.Valid() {
		return shared.NewInvalidUnitDataError(fmt.Sprintf("invalid hull class: %s", u.hull))
	}

	cost := 0
	for _, c := range u.components {
		if c == nil {
			return shared.NewInvalidUnitDataError("component cannot be nil")
		}
		cost += c.HullCost
	}
	if cost > u.hull.Capacity() {
		return shared.NewInvalidUnitDataError(fmt.Sprintf(
			"component hull cost %d exceeds %s capacity %d", cost, u.hull, u.hull.Capacity()))
	}

	if u.location.System == "" {
		return shared.NewInvalidUnitDataError("unit location system cannot be empty")
	}

	if u.hitPoints < 0 || u.hitPoints > u.hull.HitPoints() {
		return shared.NewInvalidUnitDataError(fmt.Sprintf(
			"hit points %d outside [0, %d]", u.hitPoints, u.hull.HitPoints()))
	}

	return nil
}

func (u *Unit) ID() int                  { return u.id }
func (u *Unit) Owner() shared.PlayerID   { return u.owner }
func (u *Unit) Name() string             { return u.name }
func (u *Unit) Hull() HullClass          { return u.hull }
func (u *Unit) Components() []*Component { return u.components }
func (u *Unit) Location() Location       { return u.location }
func (u *Unit) HitPoints() int           { return u.hitPoints }
func (u *Unit) MaxHitPoints() int        { return u.hull.HitPoints() }
func (u *Unit) Queue() *order.Queue      { return u.queue }

// Component returns the first installed component of the given kind, or nil.
func (u *Unit) Component(kind ComponentKind) *Component {
	for _, c := range u.components {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// HasComponent reports whether a component of the given kind is installed.
func (u *Unit) HasComponent(kind ComponentKind) bool {
	return u.Component(kind) != nil
}

// Hyperdrive returns the installed hyperdrive of either variant, or nil.
func (u *Unit) Hyperdrive() *Component {
	for _, c := range u.components {
		if c.IsHyperdrive() {
			return c
		}
	}
	return nil
}

// SetLocation moves the unit to a new system and sector, resetting the
// continuous offset to the given position.
func (u *Unit) SetLocation(system string, sector shared.HexCoord, offset shared.Position) {
	u.location = Location{System: system, Sector: sector, Offset: offset}
}

// SetOffset moves the unit within its current sector.
func (u *Unit) SetOffset(offset shared.Position) {
	u.location.Offset = offset
}

// TakeDamage reduces hit points, clamped at zero.
func (u *Unit) TakeDamage(amount int) {
	if amount < 0 {
		return
	}
	u.hitPoints -= amount
	if u.hitPoints < 0 {
		u.hitPoints = 0
	}
}

// IsDestroyed reports whether the unit has been reduced to zero hit points.
func (u *Unit) IsDestroyed() bool {
	return u.hitPoints <= 0
}

// TickComponents advances per-turn component timers. Runs once per unit per
// turn, before order execution, whether or not the unit has orders.
func (u *Unit) TickComponents() {
	for _, c := range u.components {
		c.Tick()
	}
}

// InhibitorActive reports whether the unit projects an active inhibition
// field.
func (u *Unit) InhibitorActive() bool {
	inh := u.Component(ComponentInhibitor)
	return inh != nil && inh.Active
}

func (u *Unit) String() string {
	return fmt.Sprintf("Unit %d %q (%s) at %s", u.id, u.name, u.hull, u.location)
}
