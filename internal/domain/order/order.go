package order

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Type discriminates the order variants a unit can execute. Each variant is
// tied to a required component kind; the mapping lives in the turn executor's
// dispatch table.
type Type string

const (
	TypeMove            Type = "MOVE"
	TypeJumpHex         Type = "JUMP_HEX"
	TypeJumpWormhole    Type = "JUMP_WORMHOLE"
	TypeToggleInhibitor Type = "TOGGLE_INHIBITOR"
	TypeColonize        Type = "COLONIZE"
	TypeLoadColonists   Type = "LOAD_COLONISTS"
	TypeConstruct       Type = "CONSTRUCT"
	TypeAttack          Type = "ATTACK"
)

// Status represents the lifecycle of an order.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// Order is a tagged variant command queued against a single unit. Only the
// target fields relevant to the order's type are set.
type Order struct {
	ID     string `json:"id"`
	Type   Type   `json:"type"`
	Status Status `json:"status"`

	// Move
	TargetOffset *shared.Position `json:"targetOffset,omitempty"`

	// JumpHex
	TargetSector *shared.HexCoord `json:"targetSector,omitempty"`
	// Remaining waypoint chain for a jump beyond drive range. Filled on
	// first execution; the head is consumed one leg per turn.
	PendingWaypoints []shared.HexCoord `json:"pendingWaypoints,omitempty"`

	// JumpWormhole
	TargetSystem string `json:"targetSystem,omitempty"`

	// ToggleInhibitor
	Activate bool `json:"activate,omitempty"`

	// Colonize / LoadColonists
	TargetBodyID int   `json:"targetBodyId,omitempty"`
	Amount       int64 `json:"amount,omitempty"`

	// Attack
	TargetUnitID int `json:"targetUnitId,omitempty"`

	// Construct
	Template string           `json:"template,omitempty"`
	BuildAt  *shared.Position `json:"buildAt,omitempty"`
}

func newOrder(t Type) *Order {
	return &Order{ID: uuid.NewString(), Type: t, Status: StatusPending}
}

// NewMove creates a sub-light move order to a continuous offset within the
// unit's current sector.
func NewMove(target shared.Position) *Order {
	o := newOrder(TypeMove)
	o.TargetOffset = &target
	return o
}

// NewJumpHex creates a hyperdrive jump order to a sector of the unit's
// current system.
func NewJumpHex(target shared.HexCoord) *Order {
	o := newOrder(TypeJumpHex)
	o.TargetSector = &target
	return o
}

// NewJumpWormhole creates a wormhole jump order toward the given system.
// Only the adjacent edge on the shortest path is traversed per order;
// multi-hop routes are queued as sequential jump orders.
func NewJumpWormhole(targetSystem string) *Order {
	o := newOrder(TypeJumpWormhole)
	o.TargetSystem = targetSystem
	return o
}

// NewToggleInhibitor creates an order switching the unit's inhibition field
// emitter on or off.
func NewToggleInhibitor(activate bool) *Order {
	o := newOrder(TypeToggleInhibitor)
	o.Activate = activate
	return o
}

// NewColonize creates an order unloading the unit's population cargo onto
// the target body, claiming it if unowned.
func NewColonize(targetBodyID int) *Order {
	o := newOrder(TypeColonize)
	o.TargetBodyID = targetBodyID
	return o
}

// NewLoadColonists creates an order loading population from an owned body
// into the unit's colony hold.
func NewLoadColonists(targetBodyID int, amount int64) *Order {
	o := newOrder(TypeLoadColonists)
	o.TargetBodyID = targetBodyID
	o.Amount = amount
	return o
}

// NewConstruct creates an order starting construction of a unit template at
// a position in the constructor's sector.
func NewConstruct(template string, buildAt shared.Position) *Order {
	o := newOrder(TypeConstruct)
	o.Template = template
	o.BuildAt = &buildAt
	return o
}

// NewAttack creates an order engaging the target unit.
func NewAttack(targetUnitID int) *Order {
	o := newOrder(TypeAttack)
	o.TargetUnitID = targetUnitID
	return o
}

// IsFinished reports whether the order reached a terminal status.
func (o *Order) IsFinished() bool {
	return o.Status == StatusCompleted || o.Status == StatusFailed || o.Status == StatusCancelled
}

func (o *Order) String() string {
	switch o.Type {
	case TypeMove:
		return fmt.Sprintf("Move(%s)", o.TargetOffset)
	case TypeJumpHex:
		return fmt.Sprintf("JumpHex(%s)", o.TargetSector)
	case TypeJumpWormhole:
		return fmt.Sprintf("JumpWormhole(%s)", o.TargetSystem)
	case TypeToggleInhibitor:
		if o.Activate {
			return "ToggleInhibitor(on)"
		}
		return "ToggleInhibitor(off)"
	case TypeColonize:
		return fmt.Sprintf("Colonize(body %d)", o.TargetBodyID)
	case TypeLoadColonists:
		return fmt.Sprintf("LoadColonists(body %d, %d)", o.TargetBodyID, o.Amount)
	case TypeConstruct:
		return fmt.Sprintf("Construct(%s)", o.Template)
	case TypeAttack:
		return fmt.Sprintf("Attack(unit %d)", o.TargetUnitID)
	}
	return string(o.Type)
}
