package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// galaxyDoc is the JSON shape the galaxy is persisted as. Topology and body
// state travel together; reconstruction re-runs the same validated builders
// used at generation time.
type galaxyDoc struct {
	Systems   []systemDoc   `json:"systems"`
	Wormholes []wormholeDoc `json:"wormholes"`
}

type systemDoc struct {
	ID     string    `json:"id"`
	Radius int       `json:"radius"`
	Bodies []bodyDoc `json:"bodies,omitempty"`
}

type bodyDoc struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Sector       shared.HexCoord `json:"sector"`
	Position     shared.Position `json:"position"`
	PlanetType   string          `json:"planetType,omitempty"`
	OwnerID      int             `json:"ownerId,omitempty"`
	Population   int64           `json:"population"`
	Capacity     int64           `json:"capacity"`
	GrowthRate   float64         `json:"growthRate"`
	MetalYield   int64           `json:"metalYield"`
	CrystalYield int64           `json:"crystalYield"`
}

type wormholeDoc struct {
	ID       int             `json:"id"`
	System   string          `json:"system"`
	Sector   shared.HexCoord `json:"sector"`
	Position shared.Position `json:"position"`
	ExitID   int             `json:"exitId"`
	JumpCost float64         `json:"jumpCost"`
}

func marshalGalaxy(g *galaxy.Galaxy) (string, error) {
	doc := galaxyDoc{}
	for _, id := range g.SystemIDs() {
		sys := g.System(id)
		sd := systemDoc{ID: sys.ID, Radius: sys.Radius}
		for _, sec := range sys.Sectors() {
			for _, b := range sec.Bodies {
				bd := bodyDoc{
					ID:           b.ID,
					Name:         b.Name,
					Kind:         string(b.Kind),
					Sector:       b.Sector,
					Position:     b.Position,
					PlanetType:   string(b.PlanetType),
					Population:   b.Population,
					Capacity:     b.PopulationCapacity,
					GrowthRate:   b.GrowthRate,
					MetalYield:   b.MetalYield,
					CrystalYield: b.CrystalYield,
				}
				if b.IsColonized() {
					bd.OwnerID = b.Owner.Value()
				}
				sd.Bodies = append(sd.Bodies, bd)
			}
		}
		doc.Systems = append(doc.Systems, sd)
	}
	for _, wh := range g.Wormholes() {
		doc.Wormholes = append(doc.Wormholes, wormholeDoc{
			ID:       wh.ID,
			System:   wh.System,
			Sector:   wh.Sector,
			Position: wh.Position,
			ExitID:   wh.ExitID,
			JumpCost: wh.JumpCost,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal galaxy: %w", err)
	}
	return string(data), nil
}

func unmarshalGalaxy(data string) (*galaxy.Galaxy, error) {
	var doc galaxyDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal galaxy: %w", err)
	}

	g := galaxy.NewGalaxy()
	for _, sd := range doc.Systems {
		sys, err := galaxy.NewStarSystem(sd.ID, sd.Radius)
		if err != nil {
			return nil, err
		}
		for _, bd := range sd.Bodies {
			b := &galaxy.Body{
				ID:                 bd.ID,
				Name:               bd.Name,
				Kind:               galaxy.BodyKind(bd.Kind),
				Sector:             bd.Sector,
				Position:           bd.Position,
				PlanetType:         galaxy.PlanetType(bd.PlanetType),
				Population:         bd.Population,
				PopulationCapacity: bd.Capacity,
				GrowthRate:         bd.GrowthRate,
				MetalYield:         bd.MetalYield,
				CrystalYield:       bd.CrystalYield,
			}
			if bd.OwnerID > 0 {
				owner, err := shared.NewPlayerID(bd.OwnerID)
				if err != nil {
					return nil, err
				}
				b.Owner = owner
			}
			if err := sys.AddBody(b); err != nil {
				return nil, err
			}
		}
		if err := g.AddSystem(sys); err != nil {
			return nil, err
		}
	}

	// Each edge appears as a symmetric endpoint pair; rebuild it once from
	// the lower numbered side.
	for _, wd := range doc.Wormholes {
		if wd.ID > wd.ExitID {
			continue
		}
		var exit *wormholeDoc
		for i := range doc.Wormholes {
			if doc.Wormholes[i].ID == wd.ExitID {
				exit = &doc.Wormholes[i]
				break
			}
		}
		if exit == nil {
			return nil, fmt.Errorf("wormhole %d references missing exit %d", wd.ID, wd.ExitID)
		}
		if err := g.Connect(
			wd.ID, wd.System, wd.Sector, wd.Position,
			exit.ID, exit.System, exit.Sector, exit.Position,
			wd.JumpCost,
		); err != nil {
			return nil, err
		}
	}
	return g, nil
}
