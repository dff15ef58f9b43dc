package orders

import (
	"context"
	"fmt"

	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// CancelOrderCommand cancels a pending or in-progress order on an owned unit.
type CancelOrderCommand struct {
	PlayerID int
	UnitID   int
	OrderID  string
}

// CancelOrderResponse confirms the cancellation.
type CancelOrderResponse struct {
	OrderID string
}

// CancelOrderHandler handles the CancelOrder command
type CancelOrderHandler struct {
	state *game.State
}

func NewCancelOrderHandler(state *game.State) *CancelOrderHandler {
	return &CancelOrderHandler{state: state}
}

// Handle executes the CancelOrder command
func (h *CancelOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CancelOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CancelOrderCommand")
	}

	playerID, err := shared.NewPlayerID(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	u := h.state.Unit(cmd.UnitID)
	if u == nil {
		return nil, shared.NewIllegalTargetError(fmt.Sprintf("unit %d not in play", cmd.UnitID))
	}
	if !u.Owner().Equals(playerID) {
		return nil, shared.NewIllegalTargetError(
			fmt.Sprintf("unit %d does not belong to player %s", cmd.UnitID, playerID))
	}

	if err := u.Queue().Cancel(cmd.OrderID); err != nil {
		return nil, err
	}
	return &CancelOrderResponse{OrderID: cmd.OrderID}, nil
}
