package planner

import (
	"container/heap"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

type routeNode struct {
	system string
	cost   float64
}

// routeQueue orders nodes by cost, breaking ties on system id so the search
// is deterministic across runs.
type routeQueue []routeNode

func (q routeQueue) Len() int { return len(q) }
func (q routeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].system < q[j].system
}
func (q routeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *routeQueue) Push(x interface{}) { *q = append(*q, x.(routeNode)) }
func (q *routeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// shortestRoute runs Dijkstra over the wormhole graph from one system to
// another. The search stops with an error once it has expanded budget nodes.
// Returns the hop list excluding the origin, and the total jump cost.
func shortestRoute(g *galaxy.Galaxy, from, to string, budget int) ([]string, float64, error) {
	dist := map[string]float64{from: 0}
	prev := map[string]string{}
	done := map[string]bool{}

	q := &routeQueue{{system: from, cost: 0}}
	heap.Init(q)

	expanded := 0
	for q.Len() > 0 {
		node := heap.Pop(q).(routeNode)
		if done[node.system] {
			continue
		}
		done[node.system] = true

		expanded++
		if expanded > budget {
			return nil, 0, shared.NewSearchBudgetExceededError(budget)
		}

		if node.system == to {
			return buildHops(prev, from, to), node.cost, nil
		}

		for _, n := range g.Neighbors(node.system) {
			if done[n.System] {
				continue
			}
			alt := node.cost + n.Cost
			if best, seen := dist[n.System]; !seen || alt < best {
				dist[n.System] = alt
				prev[n.System] = node.system
				heap.Push(q, routeNode{system: n.System, cost: alt})
			}
		}
	}

	return nil, 0, shared.NewNoPathError(from, to)
}

func buildHops(prev map[string]string, from, to string) []string {
	var reversed []string
	for at := to; at != from; at = prev[at] {
		reversed = append(reversed, at)
	}
	hops := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		hops = append(hops, reversed[i])
	}
	return hops
}
