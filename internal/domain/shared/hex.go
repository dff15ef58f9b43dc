package shared

import (
	"fmt"
	"math"
)

// HexCoord is an axial coordinate (q, r) addressing one sector of a star
// system's pointy-top hex grid.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// NewHexCoord creates a hex coordinate value object.
func NewHexCoord(q, r int) HexCoord {
	return HexCoord{Q: q, R: r}
}

// S returns the derived third cube coordinate (q + r + s == 0).
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// DistanceTo calculates the hex distance between two axial coordinates.
func (h HexCoord) DistanceTo(other HexCoord) int {
	dq := abs(h.Q - other.Q)
	dr := abs(h.R - other.R)
	ds := abs(h.S() - other.S())
	return (dq + dr + ds) / 2
}

// WithinRadius reports whether the coordinate lies inside a hex grid of the
// given radius centered on the origin.
func (h HexCoord) WithinRadius(radius int) bool {
	return abs(h.Q) <= radius && abs(h.R) <= radius && abs(h.S()) <= radius
}

// Equals reports coordinate equality.
func (h HexCoord) Equals(other HexCoord) bool {
	return h.Q == other.Q && h.R == other.R
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// JumpWaypoints returns the sequence of hexes for a jump from h to target
// where no single leg exceeds maxRange. A jump already within range yields
// just the target. Intermediate hexes are picked by linear interpolation in
// cube space with cube rounding.
func (h HexCoord) JumpWaypoints(target HexCoord, maxRange int) []HexCoord {
	total := h.DistanceTo(target)
	if total <= maxRange {
		return []HexCoord{target}
	}

	segments := int(math.Ceil(float64(total) / float64(maxRange)))
	ax, ay, az := h.cube()
	bx, by, bz := target.cube()

	var path []HexCoord
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		wp := cubeRound(
			ax+(bx-ax)*t,
			ay+(by-ay)*t,
			az+(bz-az)*t,
		)
		if len(path) == 0 || path[len(path)-1] != wp {
			path = append(path, wp)
		}
	}
	if len(path) == 0 || path[len(path)-1] != target {
		path = append(path, target)
	}
	return path
}

func (h HexCoord) cube() (float64, float64, float64) {
	x := float64(h.Q)
	z := float64(h.R)
	return x, -x - z, z
}

// cubeRound rounds fractional cube coordinates to the nearest valid hex,
// re-deriving the component with the largest rounding error so the cube
// invariant x+y+z == 0 holds.
func cubeRound(x, y, z float64) HexCoord {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}

	return HexCoord{Q: int(rx), R: int(rz)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
