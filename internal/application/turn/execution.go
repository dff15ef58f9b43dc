package turn

import (
	"errors"
	"fmt"

	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

func asValidationError(err error, target **shared.ValidationError) bool {
	return errors.As(err, target)
}

func asPathfindingError(err error, target **shared.PathfindingError) bool {
	return errors.As(err, target)
}

// execution is the serial write phase of one turn. All state mutation flows
// through it.
type execution struct {
	state   *game.State
	planner *planner.Planner
	report  *game.TurnReport
	journal *ledger.Journal
}

// record appends a journal entry; journal writes never fail a turn.
func (e *execution) record(
	p *ledger.Player,
	kind ledger.TransactionType,
	credits, metal, crystal int64,
	description string,
) {
	if e.journal == nil {
		return
	}
	t, err := ledger.NewTransaction(
		p.ID(), e.report.Turn, kind, credits, metal, crystal, p.Credits(), description)
	if err != nil {
		return
	}
	e.journal.Append(t)
}

// stepFn advances the head order by one step. It returns the order's status
// after the step, or an error that fails the order.
type stepFn func(e *execution, u *unit.Unit, o *order.Order, plan *plannedStep) (order.Status, error)

// requiredComponents maps each order type to the component kind it needs.
// Hyperdrive-powered orders are checked separately since either variant can
// satisfy a hex jump.
var dispatch = map[order.Type]stepFn{
	order.TypeMove:            (*execution).stepMove,
	order.TypeJumpHex:         (*execution).stepJumpHex,
	order.TypeJumpWormhole:    (*execution).stepJumpWormhole,
	order.TypeToggleInhibitor: (*execution).stepToggleInhibitor,
	order.TypeColonize:        (*execution).stepColonize,
	order.TypeLoadColonists:   (*execution).stepLoadColonists,
	order.TypeConstruct:       (*execution).stepConstruct,
	order.TypeAttack:          (*execution).stepAttack,
}

// stepUnit advances the unit's head order by exactly one step. Units with an
// empty queue idle; a failed order is dropped and the next order waits for
// the following turn.
func (e *execution) stepUnit(u *unit.Unit, plan *plannedStep) {
	head := u.Queue().Head()
	if head == nil {
		return
	}
	if plan != nil && plan.err != nil {
		failOrder(e.report, u, head, plan.err)
		return
	}

	step, ok := dispatch[head.Type]
	if !ok {
		failOrder(e.report, u, head, shared.NewIllegalTargetError(
			fmt.Sprintf("unknown order type %s", head.Type)))
		return
	}

	status, err := step(e, u, head, plan)
	if err != nil {
		failOrder(e.report, u, head, err)
		return
	}
	head.Status = status
	if status == order.StatusCompleted {
		e.report.AddOutcome(game.OrderOutcome{
			UnitID:  u.ID(),
			OrderID: head.ID,
			Type:    head.Type,
			Status:  status,
		})
	}
}

func (e *execution) stepMove(u *unit.Unit, o *order.Order, plan *plannedStep) (order.Status, error) {
	if plan == nil || plan.move == nil {
		// Order enqueued mid-turn; plan synchronously.
		p, err := e.planner.PlanMove(u, *o.TargetOffset)
		if err != nil {
			return "", err
		}
		plan = &plannedStep{move: p}
	}

	next := u.Location().Offset.MoveTowards(plan.move.Target, plan.move.Speed)
	u.SetOffset(next)
	if next.Equals(plan.move.Target) {
		return order.StatusCompleted, nil
	}
	return order.StatusInProgress, nil
}

// jumpBlocked reports the hostile inhibition check for a hyperspace transit
// out of the unit's current sector or into the destination sector.
func (e *execution) jumpBlocked(u *unit.Unit, destSystem string, dest shared.HexCoord) error {
	loc := u.Location()
	if e.state.Inhibition().IsBlockedFor(loc.System, loc.Sector, u.Owner()) {
		return shared.NewInhibitedError(loc.Sector.String())
	}
	if e.state.Inhibition().IsBlockedFor(destSystem, dest, u.Owner()) {
		return shared.NewInhibitedError(dest.String())
	}
	return nil
}

func (e *execution) stepJumpHex(u *unit.Unit, o *order.Order, plan *plannedStep) (order.Status, error) {
	drive := u.Hyperdrive()
	if drive == nil {
		return "", shared.NewMissingComponentError("hex jump requires a hyperdrive")
	}

	if len(o.PendingWaypoints) == 0 {
		if plan == nil || plan.hexJump == nil {
			p, err := e.planner.PlanJumpHex(e.state, u, *o.TargetSector)
			if err != nil {
				return "", err
			}
			plan = &plannedStep{hexJump: p}
		}
		o.PendingWaypoints = plan.hexJump.Waypoints
	}

	if drive.OnCooldown() {
		return order.StatusInProgress, nil // recharging, try again next turn
	}

	next := o.PendingWaypoints[0]
	if err := e.jumpBlocked(u, u.Location().System, next); err != nil {
		return "", err
	}

	e.relocate(u, u.Location().System, next, shared.Position{})
	drive.StartCooldown()
	o.PendingWaypoints = o.PendingWaypoints[1:]

	if len(o.PendingWaypoints) == 0 {
		return order.StatusCompleted, nil
	}
	return order.StatusInProgress, nil
}

func (e *execution) stepJumpWormhole(u *unit.Unit, o *order.Order, plan *plannedStep) (order.Status, error) {
	drive := u.Component(unit.ComponentHyperdriveAdvanced)
	if drive == nil {
		return "", shared.NewMissingComponentError("wormhole jump requires an advanced hyperdrive")
	}

	loc := u.Location()
	if loc.System == o.TargetSystem {
		return order.StatusCompleted, nil
	}

	// Routes are re-planned every turn so mid-route topology reads stay
	// consistent with the live state.
	if plan == nil || plan.wormhole == nil {
		p, err := e.planner.PlanJumpWormhole(e.state, u, o.TargetSystem)
		if err != nil {
			return "", err
		}
		plan = &plannedStep{wormhole: p}
	}

	if drive.OnCooldown() {
		return order.StatusInProgress, nil
	}

	nextSystem := plan.wormhole.Hops[0]
	wh := e.state.Galaxy().WormholeFrom(loc.System, nextSystem)
	if wh == nil {
		return "", shared.NewNoPathError(loc.System, nextSystem)
	}
	exit := e.state.Galaxy().Wormhole(wh.ExitID)

	if err := e.jumpBlocked(u, exit.System, exit.Sector); err != nil {
		return "", err
	}

	e.relocate(u, exit.System, exit.Sector, exit.Position)
	drive.StartCooldown()

	if exit.System == o.TargetSystem {
		return order.StatusCompleted, nil
	}
	return order.StatusInProgress, nil
}

// relocate moves a unit and keeps the inhibition index in step: an active
// field travels with its emitter.
func (e *execution) relocate(u *unit.Unit, system string, sector shared.HexCoord, offset shared.Position) {
	if u.InhibitorActive() {
		loc := u.Location()
		e.state.Inhibition().Deactivate(loc.System, loc.Sector, u.ID())
		e.state.Inhibition().Activate(system, sector, u.ID(), u.Owner())
	}
	u.SetLocation(system, sector, offset)
}

func (e *execution) stepToggleInhibitor(u *unit.Unit, o *order.Order, _ *plannedStep) (order.Status, error) {
	inh := u.Component(unit.ComponentInhibitor)
	if inh == nil {
		return "", shared.NewMissingComponentError("toggle requires an inhibitor")
	}

	loc := u.Location()
	if o.Activate && !inh.Active {
		inh.Active = true
		e.state.Inhibition().Activate(loc.System, loc.Sector, u.ID(), u.Owner())
	} else if !o.Activate && inh.Active {
		inh.Active = false
		e.state.Inhibition().Deactivate(loc.System, loc.Sector, u.ID())
	}
	return order.StatusCompleted, nil
}

func (e *execution) stepColonize(u *unit.Unit, o *order.Order, _ *plannedStep) (order.Status, error) {
	colony := u.Component(unit.ComponentColony)
	if colony == nil {
		return "", shared.NewMissingComponentError("colonize requires a colony transport")
	}
	if colony.PopulationCargo <= 0 {
		return "", shared.NewInsufficientResourcesError(1, 0, "colonists")
	}

	body, err := e.bodyInSector(u, o.TargetBodyID)
	if err != nil {
		return "", err
	}

	if body.IsColonized() && !body.Owner.Equals(u.Owner()) {
		return "", shared.NewIllegalTargetError("body already colonized by another player")
	}

	before := body.Population
	if err := body.Colonize(u.Owner(), colony.PopulationCargo); err != nil {
		return "", err
	}
	colony.PopulationCargo -= body.Population - before
	return order.StatusCompleted, nil
}

func (e *execution) stepLoadColonists(u *unit.Unit, o *order.Order, _ *plannedStep) (order.Status, error) {
	colony := u.Component(unit.ComponentColony)
	if colony == nil {
		return "", shared.NewMissingComponentError("loading colonists requires a colony transport")
	}

	body, err := e.bodyInSector(u, o.TargetBodyID)
	if err != nil {
		return "", err
	}
	room := colony.CargoCapacity - colony.PopulationCargo
	amount := o.Amount
	if amount <= 0 || amount > room {
		amount = room
	}
	if amount <= 0 {
		return "", shared.NewInsufficientResourcesError(1, 0, "cargo space")
	}

	loaded, err := body.LoadPopulation(u.Owner(), amount)
	if err != nil {
		return "", err
	}
	if loaded == 0 {
		return "", shared.NewInsufficientResourcesError(amount, 0, "colonists")
	}
	colony.PopulationCargo += loaded
	return order.StatusCompleted, nil
}

func (e *execution) bodyInSector(u *unit.Unit, bodyID int) (*galaxy.Body, error) {
	body := e.state.Galaxy().Body(bodyID)
	if body == nil {
		return nil, shared.NewIllegalTargetError(fmt.Sprintf("unknown body %d", bodyID))
	}
	loc := u.Location()
	if body.System != loc.System || !body.Sector.Equals(loc.Sector) {
		return nil, shared.NewIllegalTargetError("body not in the unit's sector")
	}
	return body, nil
}

func (e *execution) stepConstruct(u *unit.Unit, o *order.Order, _ *plannedStep) (order.Status, error) {
	ctor := u.Component(unit.ComponentConstructor)
	if ctor == nil {
		return "", shared.NewMissingComponentError("construct requires a constructor")
	}

	if !ctor.IsBuilding() {
		tmpl, err := unit.LookupTemplate(o.Template)
		if err != nil {
			return "", shared.NewIllegalTargetError(err.Error())
		}
		if o.BuildAt == nil {
			return "", shared.NewIllegalTargetError("construct order missing build site")
		}
		if o.BuildAt.DistanceTo(u.Location().Offset) > ctor.BuildRange {
			return "", shared.NewIllegalTargetError("build site outside constructor range")
		}
		owner := e.state.Player(u.Owner())
		if owner == nil {
			return "", shared.NewInvariantViolationError(
				fmt.Sprintf("unit %d owned by missing player %s", u.ID(), u.Owner()))
		}
		if err := owner.Spend(tmpl.CreditCost, 0, 0); err != nil {
			return "", err
		}
		e.record(owner, ledger.TransactionTypeConstruction, -tmpl.CreditCost, 0, 0,
			fmt.Sprintf("construction of %s by unit %d", tmpl.Name, u.ID()))
		ctor.BuildTemplate = o.Template
		ctor.BuildDuration = tmpl.BuildTurns
		ctor.BuildProgress = 0
	}

	// Progress advances in advanceConstruction; the order completes when the
	// build does.
	if ctor.BuildProgress >= ctor.BuildDuration {
		return order.StatusCompleted, nil
	}
	return order.StatusInProgress, nil
}

func (e *execution) stepAttack(u *unit.Unit, o *order.Order, _ *plannedStep) (order.Status, error) {
	weapon := u.Component(unit.ComponentWeapon)
	if weapon == nil {
		return "", shared.NewMissingComponentError("attack requires a weapon")
	}

	target := e.state.Unit(o.TargetUnitID)
	if target == nil || target.IsDestroyed() {
		return "", shared.NewIllegalTargetError(fmt.Sprintf("target unit %d not in play", o.TargetUnitID))
	}
	if target.Owner().Equals(u.Owner()) {
		return "", shared.NewIllegalTargetError("cannot attack an own unit")
	}

	loc, tloc := u.Location(), target.Location()
	if loc.System != tloc.System || !loc.Sector.Equals(tloc.Sector) {
		return "", shared.NewIllegalTargetError("target not in the unit's sector")
	}
	if loc.Offset.DistanceTo(tloc.Offset) > weapon.Range {
		return "", shared.NewIllegalTargetError("target outside weapon range")
	}

	if weapon.WeaponReady > 0 {
		return order.StatusInProgress, nil // turret cycling
	}

	target.TakeDamage(weapon.Damage)
	weapon.WeaponReady = weapon.WeaponCooldown
	e.report.Combat = append(e.report.Combat, game.CombatEvent{
		AttackerID: u.ID(),
		TargetID:   target.ID(),
		Damage:     weapon.Damage,
		Destroyed:  target.IsDestroyed(),
	})
	return order.StatusCompleted, nil
}

// advanceConstruction ticks every in-progress build and spawns finished
// units, in builder creation order.
func (e *execution) advanceConstruction() {
	for _, u := range e.state.Units() {
		ctor := u.Component(unit.ComponentConstructor)
		if ctor == nil || !ctor.IsBuilding() {
			continue
		}
		ctor.BuildProgress++
		if ctor.BuildProgress < ctor.BuildDuration {
			continue
		}

		tmpl, err := unit.LookupTemplate(ctor.BuildTemplate)
		if err != nil {
			continue // template removed from under a persisted build
		}
		loc := u.Location()
		head := u.Queue().Head()
		offset := loc.Offset
		if head != nil && head.Type == order.TypeConstruct && head.BuildAt != nil {
			offset = *head.BuildAt
		}
		name := fmt.Sprintf("%s-%d", tmpl.Name, e.state.NextUnitID())
		spawned, err := e.state.SpawnUnit(u.Owner(), name, tmpl.Hull, tmpl.Components(), unit.Location{
			System: loc.System, Sector: loc.Sector, Offset: offset,
		})
		if err == nil {
			e.report.SpawnedUnits = append(e.report.SpawnedUnits, spawned.ID())
		}
		if head != nil && head.Type == order.TypeConstruct {
			head.Status = order.StatusCompleted
			e.report.AddOutcome(game.OrderOutcome{
				UnitID:  u.ID(),
				OrderID: head.ID,
				Type:    head.Type,
				Status:  order.StatusCompleted,
			})
		}
		ctor.BuildTemplate = ""
		ctor.BuildProgress = 0
		ctor.BuildDuration = 0
	}
}

// collectEconomy grows populations and credits yields, iterating players in
// id order and each player's bodies in body id order.
func (e *execution) collectEconomy() {
	g := e.state.Galaxy()
	for _, p := range e.state.Players() {
		income := game.PlayerIncome{PlayerID: p.ID().Value()}
		for _, sysID := range g.SystemIDs() {
			for _, sec := range g.System(sysID).Sectors() {
				for _, b := range sec.Bodies {
					if !b.IsColonized() || !b.Owner.Equals(p.ID()) {
						continue
					}
					y, err := ledger.CollectYield(p, b)
					if err != nil {
						continue
					}
					income.Yields = append(income.Yields, y)
					income.Credits += y.Credits
					income.Metal += y.Metal
					income.Crystal += y.Crystal
				}
			}
		}
		if len(income.Yields) > 0 {
			e.report.Income = append(e.report.Income, income)
			if income.Credits > 0 {
				e.record(p, ledger.TransactionTypeTaxRevenue, income.Credits, 0, 0,
					fmt.Sprintf("tax from %d colonies", len(income.Yields)))
			}
			if income.Metal > 0 || income.Crystal > 0 {
				e.record(p, ledger.TransactionTypeResourceYield, 0, income.Metal, income.Crystal,
					fmt.Sprintf("yields from %d colonies", len(income.Yields)))
			}
		}
	}
}

// removeDestroyed takes zero hit point units out of play together with their
// inhibition fields and pending orders.
func (e *execution) removeDestroyed() {
	for _, u := range e.state.Units() {
		if !u.IsDestroyed() {
			continue
		}
		u.Queue().Clear()
		e.state.RemoveUnit(u.ID())
		e.report.DestroyedUnits = append(e.report.DestroyedUnits, u.ID())
	}
}
