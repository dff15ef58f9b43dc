// Package orders exposes the order intake surface: submission and
// cancellation commands validated against unit ownership and capabilities.
package orders

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

var knownOrderTypes = map[order.Type]bool{
	order.TypeMove:            true,
	order.TypeJumpHex:         true,
	order.TypeJumpWormhole:    true,
	order.TypeToggleInhibitor: true,
	order.TypeColonize:        true,
	order.TypeLoadColonists:   true,
	order.TypeConstruct:       true,
	order.TypeAttack:          true,
}

// SubmitOrderCommand enqueues an order on a unit the player owns.
type SubmitOrderCommand struct {
	PlayerID int
	UnitID   int
	Order    *order.Order
}

// SubmitOrderResponse reports the queued order's id and queue position.
type SubmitOrderResponse struct {
	OrderID  string
	Position int
}

// SubmitOrderHandler validates and enqueues orders. A token bucket keeps a
// runaway client (usually a misbehaving AI) from flooding a queue between
// turns.
type SubmitOrderHandler struct {
	state   *game.State
	limiter *rate.Limiter
}

// NewSubmitOrderHandler creates the handler. ratePerSec limits sustained
// submissions; burst allows short spikes.
func NewSubmitOrderHandler(state *game.State, ratePerSec float64, burst int) *SubmitOrderHandler {
	if ratePerSec <= 0 {
		ratePerSec = 100
	}
	if burst <= 0 {
		burst = 20
	}
	return &SubmitOrderHandler{
		state:   state,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
}

// Handle executes the SubmitOrder command
func (h *SubmitOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SubmitOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SubmitOrderCommand")
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	playerID, err := shared.NewPlayerID(cmd.PlayerID)
	if err != nil {
		return nil, err
	}
	if cmd.Order == nil {
		return nil, shared.NewIllegalTargetError("order cannot be nil")
	}

	u := h.state.Unit(cmd.UnitID)
	if u == nil {
		return nil, shared.NewIllegalTargetError(fmt.Sprintf("unit %d not in play", cmd.UnitID))
	}
	if !u.Owner().Equals(playerID) {
		return nil, shared.NewIllegalTargetError(
			fmt.Sprintf("unit %d does not belong to player %s", cmd.UnitID, playerID))
	}

	// Submission only checks ownership and shape. Capability and target
	// validation happen at execution so failures land in the turn report
	// with a reason code.
	if !knownOrderTypes[cmd.Order.Type] {
		return nil, shared.NewIllegalTargetError(fmt.Sprintf("unknown order type %s", cmd.Order.Type))
	}

	u.Queue().Enqueue(cmd.Order)
	common.LoggerFromContext(ctx).Log("debug", "order queued", map[string]interface{}{
		"unit":  u.ID(),
		"order": cmd.Order.String(),
	})
	return &SubmitOrderResponse{OrderID: cmd.Order.ID, Position: u.Queue().Len()}, nil
}
