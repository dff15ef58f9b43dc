package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/application/orders"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
	"github.com/sdudley/hexfront-go/test/helpers"
)

func TestSubmitOrder(t *testing.T) {
	ctx := context.Background()
	s := helpers.NewTestState(t)
	u := helpers.SpawnShip(t, s, 1, "Scout", unit.HullSmall, helpers.BasicDrive(t))
	h := orders.NewSubmitOrderHandler(s, 0, 0)

	t.Run("enqueues for the owning player", func(t *testing.T) {
		o := order.NewJumpHex(shared.NewHexCoord(2, 0))
		resp, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: u.ID(), Order: o})
		require.NoError(t, err)

		sub := resp.(*orders.SubmitOrderResponse)
		assert.Equal(t, o.ID, sub.OrderID)
		assert.Equal(t, 1, sub.Position)
		require.Equal(t, 1, u.Queue().Len())
	})

	t.Run("queues behind earlier orders", func(t *testing.T) {
		o := order.NewMove(shared.NewPosition(10, 0))
		resp, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: u.ID(), Order: o})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.(*orders.SubmitOrderResponse).Position)
	})

	t.Run("rejects a foreign unit", func(t *testing.T) {
		o := order.NewMove(shared.NewPosition(10, 0))
		_, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 2, UnitID: u.ID(), Order: o})
		require.Error(t, err)

		var vErr *shared.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, shared.ReasonIllegalTarget, vErr.Reason)
	})

	t.Run("rejects an unknown unit", func(t *testing.T) {
		o := order.NewMove(shared.NewPosition(10, 0))
		_, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: 999, Order: o})
		assert.Error(t, err)
	})

	t.Run("rejects a nil order", func(t *testing.T) {
		_, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: u.ID()})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown order type", func(t *testing.T) {
		o := &order.Order{ID: "x", Type: order.Type("WARP"), Status: order.StatusPending}
		_, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: u.ID(), Order: o})
		assert.Error(t, err)
	})

	t.Run("capability checks wait until execution", func(t *testing.T) {
		// Wormhole jumps need an advanced drive the unit lacks; submission
		// still accepts the order so the failure lands in the turn report.
		o := order.NewJumpWormhole("beta")
		_, err := h.Handle(ctx, &orders.SubmitOrderCommand{PlayerID: 1, UnitID: u.ID(), Order: o})
		assert.NoError(t, err)
	})
}

func TestSubmitOrder_RateLimited(t *testing.T) {
	s := helpers.NewTestState(t)
	u := helpers.SpawnShip(t, s, 1, "Scout", unit.HullSmall)
	h := orders.NewSubmitOrderHandler(s, 1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// First submission spends the burst token; the second blocks until the
	// context deadline kills it.
	_, err := h.Handle(ctx, &orders.SubmitOrderCommand{
		PlayerID: 1, UnitID: u.ID(), Order: order.NewMove(shared.NewPosition(1, 0)),
	})
	require.NoError(t, err)

	_, err = h.Handle(ctx, &orders.SubmitOrderCommand{
		PlayerID: 1, UnitID: u.ID(), Order: order.NewMove(shared.NewPosition(2, 0)),
	})
	assert.Error(t, err)
	assert.Equal(t, 1, u.Queue().Len())
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()
	s := helpers.NewTestState(t)
	u := helpers.SpawnShip(t, s, 1, "Scout", unit.HullSmall, helpers.BasicDrive(t))
	h := orders.NewCancelOrderHandler(s)

	o := order.NewJumpHex(shared.NewHexCoord(1, 0))
	u.Queue().Enqueue(o)

	t.Run("foreign player cannot cancel", func(t *testing.T) {
		_, err := h.Handle(ctx, &orders.CancelOrderCommand{PlayerID: 2, UnitID: u.ID(), OrderID: o.ID})
		assert.Error(t, err)
		assert.Equal(t, 1, u.Queue().Len())
	})

	t.Run("owner cancels", func(t *testing.T) {
		resp, err := h.Handle(ctx, &orders.CancelOrderCommand{PlayerID: 1, UnitID: u.ID(), OrderID: o.ID})
		require.NoError(t, err)
		assert.Equal(t, o.ID, resp.(*orders.CancelOrderResponse).OrderID)
		assert.Equal(t, 0, u.Queue().Len())
	})

	t.Run("unknown order id", func(t *testing.T) {
		_, err := h.Handle(ctx, &orders.CancelOrderCommand{PlayerID: 1, UnitID: u.ID(), OrderID: "missing"})
		assert.Error(t, err)
	})
}
