package shared

import (
	"fmt"
	"math"
)

// Position represents a continuous location inside a sector, relative to the
// sector's center.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPosition creates a position value object.
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// DistanceTo calculates Euclidean distance to another position.
func (p Position) DistanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveTowards returns the position reached by travelling from p toward target
// at most maxDistance units. If the target is closer than maxDistance the
// target itself is returned.
func (p Position) MoveTowards(target Position, maxDistance float64) Position {
	dist := p.DistanceTo(target)
	if dist <= maxDistance || dist == 0 {
		return target
	}
	t := maxDistance / dist
	return Position{
		X: p.X + (target.X-p.X)*t,
		Y: p.Y + (target.Y-p.Y)*t,
	}
}

// Equals compares two positions with a small tolerance for accumulated
// floating point error from incremental movement.
func (p Position) Equals(other Position) bool {
	return p.DistanceTo(other) < 0.01
}

func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Circle is a circular area inside a sector, used for inhibition fields and
// sector boundaries.
type Circle struct {
	Center Position `json:"center"`
	Radius float64  `json:"radius"`
}

// Contains reports whether the point lies inside the circle.
func (c Circle) Contains(p Position) bool {
	return c.Center.DistanceTo(p) <= c.Radius
}

// ContainsCircle reports whether other lies entirely inside c.
func (c Circle) ContainsCircle(other Circle) bool {
	return c.Center.DistanceTo(other.Center)+other.Radius <= c.Radius
}

// Intersects reports whether the two circles overlap.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.DistanceTo(other.Center) < c.Radius+other.Radius
}

// ClosestEdgePoint returns the point on the circle's edge nearest to p,
// nudged slightly outward so the result does not lie inside the circle.
func (c Circle) ClosestEdgePoint(p Position) Position {
	dist := c.Center.DistanceTo(p)
	if dist == 0 {
		return Position{X: c.Center.X + c.Radius + 1.0, Y: c.Center.Y}
	}
	t := (c.Radius + 1.0) / dist
	return Position{
		X: c.Center.X + (p.X-c.Center.X)*t,
		Y: c.Center.Y + (p.Y-c.Center.Y)*t,
	}
}
