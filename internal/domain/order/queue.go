package order

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Queue is the FIFO order queue of a single unit. The head order is the only
// one the turn executor advances; orders behind it wait regardless of type.
type Queue struct {
	orders []*Order
}

// NewQueue creates an empty order queue.
func NewQueue() *Queue {
	return &Queue{}
}

// ReconstructQueue restores a queue from persisted orders, preserving order.
func ReconstructQueue(orders []*Order) *Queue {
	return &Queue{orders: orders}
}

// Enqueue appends an order to the back of the queue.
func (q *Queue) Enqueue(o *Order) {
	q.orders = append(q.orders, o)
}

// Head returns the first unfinished order, or nil if the queue is idle.
// Finished orders ahead of it are dropped.
func (q *Queue) Head() *Order {
	q.compact()
	if len(q.orders) == 0 {
		return nil
	}
	return q.orders[0]
}

// Cancel marks the order with the given id cancelled. An in-progress order is
// abandoned where it stands; already finished orders cannot be cancelled.
func (q *Queue) Cancel(id string) error {
	for _, o := range q.orders {
		if o.ID != id {
			continue
		}
		if o.IsFinished() {
			return shared.NewDomainError(fmt.Sprintf("order %s already finished", id))
		}
		o.Status = StatusCancelled
		return nil
	}
	return shared.NewDomainError(fmt.Sprintf("order %s not found", id))
}

// Clear cancels every unfinished order.
func (q *Queue) Clear() {
	for _, o := range q.orders {
		if !o.IsFinished() {
			o.Status = StatusCancelled
		}
	}
	q.compact()
}

// Len returns the number of unfinished orders.
func (q *Queue) Len() int {
	q.compact()
	return len(q.orders)
}

// Orders returns the unfinished orders front to back.
func (q *Queue) Orders() []*Order {
	q.compact()
	out := make([]*Order, len(q.orders))
	copy(out, q.orders)
	return out
}

func (q *Queue) compact() {
	kept := q.orders[:0]
	for _, o := range q.orders {
		if !o.IsFinished() {
			kept = append(kept, o)
		}
	}
	q.orders = kept
}
