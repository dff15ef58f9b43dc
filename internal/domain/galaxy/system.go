package galaxy

import (
	"fmt"
	"sort"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// SectorRadius is the logical radius of the circular playable area inside a
// single sector. Continuous unit positions stay within this boundary.
const SectorRadius = 1000.0

// Sector is one cell of a star system's hex grid. It holds the celestial
// bodies placed there by the generator; unit occupancy is tracked on the
// game state, not here.
type Sector struct {
	Coord  shared.HexCoord
	System string
	Bodies []*Body
}

// Boundary returns the circular playable area of the sector.
func (s *Sector) Boundary() shared.Circle {
	return shared.Circle{Center: shared.Position{}, Radius: SectorRadius}
}

// AddBody places a celestial body in the sector.
func (s *Sector) AddBody(b *Body) {
	s.Bodies = append(s.Bodies, b)
}

// StarSystem is a hexagonal grid of sectors with a fixed radius. The grid
// shape is immutable after construction.
type StarSystem struct {
	ID      string
	Radius  int
	sectors map[shared.HexCoord]*Sector
}

// NewStarSystem creates a star system and generates its hex grid.
func NewStarSystem(id string, radius int) (*StarSystem, error) {
	if id == "" {
		return nil, shared.NewDomainError("star system id cannot be empty")
	}
	if radius < 0 {
		return nil, shared.NewDomainError("star system radius cannot be negative")
	}

	s := &StarSystem{
		ID:      id,
		Radius:  radius,
		sectors: make(map[shared.HexCoord]*Sector),
	}
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			coord := shared.NewHexCoord(q, r)
			s.sectors[coord] = &Sector{Coord: coord, System: id}
		}
	}
	return s, nil
}

// Sector returns the sector at the given coordinate, or nil if the
// coordinate lies outside the system's radius.
func (s *StarSystem) Sector(coord shared.HexCoord) *Sector {
	return s.sectors[coord]
}

// Contains reports whether the coordinate addresses a sector of this system.
func (s *StarSystem) Contains(coord shared.HexCoord) bool {
	_, ok := s.sectors[coord]
	return ok
}

// Sectors returns all sectors in deterministic (q, r) order.
func (s *StarSystem) Sectors() []*Sector {
	out := make([]*Sector, 0, len(s.sectors))
	for _, sec := range s.sectors {
		out = append(out, sec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Q != out[j].Coord.Q {
			return out[i].Coord.Q < out[j].Coord.Q
		}
		return out[i].Coord.R < out[j].Coord.R
	})
	return out
}

// AddBody places a body in its sector. The body's coordinate must lie within
// the system radius.
func (s *StarSystem) AddBody(b *Body) error {
	sec := s.Sector(b.Sector)
	if sec == nil {
		return shared.NewInvariantViolationError(
			fmt.Sprintf("sector %s outside system %s (radius %d)", b.Sector, s.ID, s.Radius))
	}
	b.System = s.ID
	sec.AddBody(b)
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
