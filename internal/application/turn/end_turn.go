// Package turn implements end-of-turn processing: order validation and
// execution, combat, construction, economy, and the turn report.
package turn

import (
	"context"
	"fmt"
	"sync"

	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// EndTurnCommand advances the game by one turn.
type EndTurnCommand struct{}

// EndTurnResponse carries the turn report for the resolved turn.
type EndTurnResponse struct {
	Report *game.TurnReport
}

// EndTurnHandler resolves one full turn against the game state.
//
// Phases, in order:
//  1. Component tick for every unit (cooldowns recharge even while idle)
//  2. Read phase: head orders are planned concurrently, read-only
//  3. Write phase: one order step per unit, serial, in player id then unit
//     creation order
//  4. Construction progress
//  5. Economy: population growth and yields per player
//  6. Cleanup: destroyed units leave play with their inhibition fields
//  7. Invariant check; a violation aborts the turn with a fatal error
type EndTurnHandler struct {
	state   *game.State
	planner *planner.Planner
	journal *ledger.Journal
}

// NewEndTurnHandler creates the handler over a game state.
func NewEndTurnHandler(state *game.State, p *planner.Planner) *EndTurnHandler {
	return &EndTurnHandler{state: state, planner: p, journal: ledger.NewJournal()}
}

// Journal returns the session's economic journal. Entries accumulate across
// every turn the handler resolves.
func (h *EndTurnHandler) Journal() *ledger.Journal {
	return h.journal
}

// Handle executes the EndTurn command
func (h *EndTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*EndTurnCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *EndTurnCommand")
	}
	logger := common.LoggerFromContext(ctx)

	report := &game.TurnReport{Turn: h.state.Turn() + 1}

	for _, u := range h.state.Units() {
		u.TickComponents()
	}

	plans := h.readPhase(ctx)

	exec := &execution{state: h.state, planner: h.planner, report: report, journal: h.journal}
	for _, p := range h.state.Players() {
		for _, u := range h.state.UnitsOf(p.ID()) {
			if h.state.Unit(u.ID()) == nil {
				continue // destroyed earlier this turn
			}
			exec.stepUnit(u, plans[u.ID()])
		}
	}

	exec.advanceConstruction()
	exec.collectEconomy()
	exec.removeDestroyed()

	if err := h.state.CheckInvariants(); err != nil {
		logger.Log("error", "turn aborted on invariant violation", map[string]interface{}{
			"turn":  report.Turn,
			"error": err.Error(),
		})
		return nil, err
	}

	h.state.AdvanceTurn()
	logger.Log("info", "turn resolved", map[string]interface{}{
		"turn":      h.state.Turn(),
		"orders":    len(report.Outcomes),
		"combat":    len(report.Combat),
		"destroyed": len(report.DestroyedUnits),
	})
	return &EndTurnResponse{Report: report}, nil
}

// plannedStep is the read phase result for one unit: a navigation plan or
// the validation error that order will fail with.
type plannedStep struct {
	move     *planner.MovePlan
	hexJump  *planner.JumpHexPlan
	wormhole *planner.JumpWormholePlan
	err      error
}

// readPhase plans every unit's head navigation order concurrently. Planning
// only reads state; results are applied serially in the write phase.
func (h *EndTurnHandler) readPhase(ctx context.Context) map[int]*plannedStep {
	units := h.state.Units()

	var mu sync.Mutex
	plans := make(map[int]*plannedStep, len(units))

	var wg sync.WaitGroup
	for _, u := range units {
		head := u.Queue().Head()
		if head == nil {
			continue
		}
		wg.Add(1)
		go func(u *unit.Unit, head *order.Order) {
			defer wg.Done()
			step := h.planOrder(u, head)
			if step == nil {
				return
			}
			mu.Lock()
			plans[u.ID()] = step
			mu.Unlock()
		}(u, head)
	}
	wg.Wait()
	return plans
}

func (h *EndTurnHandler) planOrder(u *unit.Unit, head *order.Order) *plannedStep {
	switch head.Type {
	case order.TypeMove:
		plan, err := h.planner.PlanMove(u, *head.TargetOffset)
		return &plannedStep{move: plan, err: err}
	case order.TypeJumpHex:
		if len(head.PendingWaypoints) > 0 {
			return nil // already planned on a previous turn
		}
		plan, err := h.planner.PlanJumpHex(h.state, u, *head.TargetSector)
		return &plannedStep{hexJump: plan, err: err}
	case order.TypeJumpWormhole:
		plan, err := h.planner.PlanJumpWormhole(h.state, u, head.TargetSystem)
		return &plannedStep{wormhole: plan, err: err}
	}
	return nil
}

// failOrder marks the head order failed and records the outcome with its
// validation reason.
func failOrder(report *game.TurnReport, u *unit.Unit, o *order.Order, err error) {
	o.Status = order.StatusFailed
	outcome := game.OrderOutcome{
		UnitID:  u.ID(),
		OrderID: o.ID,
		Type:    o.Type,
		Status:  order.StatusFailed,
		Detail:  err.Error(),
	}
	var vErr *shared.ValidationError
	var pErr *shared.PathfindingError
	switch {
	case asValidationError(err, &vErr):
		outcome.Reason = string(vErr.Reason)
	case asPathfindingError(err, &pErr):
		outcome.Reason = string(pErr.Reason)
	}
	report.AddOutcome(outcome)
}
