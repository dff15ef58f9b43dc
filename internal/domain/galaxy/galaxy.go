package galaxy

import (
	"fmt"
	"sort"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Wormhole is one endpoint of an inter-system connection. It sits at a fixed
// position inside a sector and leads to its paired exit endpoint in another
// system. Jumping through it costs the edge's declared jump cost.
type Wormhole struct {
	ID       int
	System   string
	Sector   shared.HexCoord
	Position shared.Position
	ExitID   int // paired endpoint in the destination system
	JumpCost float64
}

// Edge is one undirected wormhole connection of the galaxy graph, identified
// by its two endpoint wormholes.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Galaxy is the top-level topology: star systems connected by wormhole
// edges. The graph is immutable after generation; the engine only reads it.
//
// Invariants:
// - Every wormhole endpoint references an existing system and in-radius sector
// - Endpoint pairing is symmetric (a.ExitID == b.ID implies b.ExitID == a.ID)
// - No duplicate edges between the same pair of systems
type Galaxy struct {
	systems   map[string]*StarSystem
	wormholes map[int]*Wormhole
}

// NewGalaxy creates an empty galaxy.
func NewGalaxy() *Galaxy {
	return &Galaxy{
		systems:   make(map[string]*StarSystem),
		wormholes: make(map[int]*Wormhole),
	}
}

// AddSystem registers a star system. System ids must be unique.
func (g *Galaxy) AddSystem(s *StarSystem) error {
	if _, exists := g.systems[s.ID]; exists {
		return shared.NewDomainError(fmt.Sprintf("duplicate system id: %s", s.ID))
	}
	g.systems[s.ID] = s
	return nil
}

// System returns the system with the given id, or nil.
func (g *Galaxy) System(id string) *StarSystem {
	return g.systems[id]
}

// SystemIDs returns all system ids in deterministic (sorted) order.
func (g *Galaxy) SystemIDs() []string {
	ids := make([]string, 0, len(g.systems))
	for id := range g.systems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Connect creates a pair of wormhole endpoints joining two systems with the
// given jump cost. Both sectors must exist; connecting the same pair of
// systems twice is rejected.
func (g *Galaxy) Connect(idA int, systemA string, sectorA shared.HexCoord, posA shared.Position,
	idB int, systemB string, sectorB shared.HexCoord, posB shared.Position, cost float64) error {

	if systemA == systemB {
		return shared.NewDomainError("wormhole cannot connect a system to itself")
	}
	if cost <= 0 {
		return shared.NewDomainError("wormhole jump cost must be positive")
	}
	for _, existing := range g.wormholes {
		if existing.System == systemA && g.wormholes[existing.ExitID] != nil &&
			g.wormholes[existing.ExitID].System == systemB {
			return shared.NewDomainError(
				fmt.Sprintf("duplicate wormhole edge between %s and %s", systemA, systemB))
		}
	}

	sysA := g.systems[systemA]
	sysB := g.systems[systemB]
	if sysA == nil || sysB == nil {
		return shared.NewDomainError("wormhole endpoint references unknown system")
	}
	if !sysA.Contains(sectorA) || !sysB.Contains(sectorB) {
		return shared.NewInvariantViolationError("wormhole endpoint sector outside system radius")
	}
	if _, exists := g.wormholes[idA]; exists {
		return shared.NewDomainError(fmt.Sprintf("duplicate wormhole id: %d", idA))
	}
	if _, exists := g.wormholes[idB]; exists {
		return shared.NewDomainError(fmt.Sprintf("duplicate wormhole id: %d", idB))
	}

	g.wormholes[idA] = &Wormhole{ID: idA, System: systemA, Sector: sectorA, Position: posA, ExitID: idB, JumpCost: cost}
	g.wormholes[idB] = &Wormhole{ID: idB, System: systemB, Sector: sectorB, Position: posB, ExitID: idA, JumpCost: cost}
	return nil
}

// Wormhole returns the endpoint with the given id, or nil.
func (g *Galaxy) Wormhole(id int) *Wormhole {
	return g.wormholes[id]
}

// Wormholes returns every endpoint sorted by id.
func (g *Galaxy) Wormholes() []*Wormhole {
	out := make([]*Wormhole, 0, len(g.wormholes))
	for _, wh := range g.wormholes {
		out = append(out, wh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WormholeFrom returns the endpoint in fromSystem whose exit leads to
// toSystem, or nil if the systems are not directly connected.
func (g *Galaxy) WormholeFrom(fromSystem, toSystem string) *Wormhole {
	var found *Wormhole
	for _, wh := range g.wormholes {
		if wh.System != fromSystem {
			continue
		}
		exit := g.wormholes[wh.ExitID]
		if exit == nil || exit.System != toSystem {
			continue
		}
		// Deterministic pick when generation produced parallel endpoints.
		if found == nil || wh.ID < found.ID {
			found = wh
		}
	}
	return found
}

// Neighbor is one adjacency entry of the galaxy graph.
type Neighbor struct {
	System string
	Cost   float64
}

// Neighbors returns the systems directly reachable from the given system,
// sorted by system id for deterministic traversal.
func (g *Galaxy) Neighbors(system string) []Neighbor {
	var out []Neighbor
	for _, wh := range g.wormholes {
		if wh.System != system {
			continue
		}
		exit := g.wormholes[wh.ExitID]
		if exit == nil {
			continue
		}
		out = append(out, Neighbor{System: exit.System, Cost: wh.JumpCost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].System != out[j].System {
			return out[i].System < out[j].System
		}
		return out[i].Cost < out[j].Cost
	})
	return out
}

// Edges returns the undirected edge list in deterministic order. Each edge
// appears once.
func (g *Galaxy) Edges() []Edge {
	seen := make(map[int]bool)
	var out []Edge
	for _, wh := range g.wormholes {
		if seen[wh.ID] || seen[wh.ExitID] {
			continue
		}
		seen[wh.ID] = true
		exit := g.wormholes[wh.ExitID]
		if exit == nil {
			continue
		}
		out = append(out, Edge{From: wh.System, To: exit.System, Cost: wh.JumpCost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Body looks up a celestial body by id across all systems.
func (g *Galaxy) Body(id int) *Body {
	for _, sys := range g.systems {
		for _, sec := range sys.Sectors() {
			for _, b := range sec.Bodies {
				if b.ID == id {
					return b
				}
			}
		}
	}
	return nil
}
