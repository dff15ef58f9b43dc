package game

import (
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/order"
)

// OrderOutcome is one order's result within a turn report.
type OrderOutcome struct {
	UnitID  int          `json:"unitId"`
	OrderID string       `json:"orderId"`
	Type    order.Type   `json:"type"`
	Status  order.Status `json:"status"`
	// Reason carries the validation reason code on failed orders.
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// CombatEvent records one weapon strike resolved during a turn.
type CombatEvent struct {
	AttackerID int  `json:"attackerId"`
	TargetID   int  `json:"targetId"`
	Damage     int  `json:"damage"`
	Destroyed  bool `json:"destroyed"`
}

// PlayerIncome aggregates one player's yields for a turn.
type PlayerIncome struct {
	PlayerID int                `json:"playerId"`
	Yields   []ledger.TurnYield `json:"yields,omitempty"`
	Credits  int64              `json:"credits"`
	Metal    int64              `json:"metal"`
	Crystal  int64              `json:"crystal"`
}

// TurnReport is the structured account of everything a turn resolved, in
// resolution order. It is the engine's only feedback channel to callers.
type TurnReport struct {
	Turn           int            `json:"turn"`
	Outcomes       []OrderOutcome `json:"outcomes,omitempty"`
	Combat         []CombatEvent  `json:"combat,omitempty"`
	Income         []PlayerIncome `json:"income,omitempty"`
	DestroyedUnits []int          `json:"destroyedUnits,omitempty"`
	SpawnedUnits   []int          `json:"spawnedUnits,omitempty"`
}

// AddOutcome appends an order outcome in resolution order.
func (r *TurnReport) AddOutcome(o OrderOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}
