// Package setup builds starting game states. Generation is deterministic:
// the same parameters always produce the same world.
package setup

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// StartingCredits is each player's opening credit balance.
const StartingCredits = 1000

var playerColors = []string{"red", "blue", "green", "yellow"}

// NewSkirmish builds a two-system world with one human player and the given
// number of AI opponents (up to three). Each player starts with a homeworld,
// a scout, and a colony ship.
func NewSkirmish(aiPlayers int) (*game.State, error) {
	if aiPlayers < 0 || aiPlayers > 3 {
		return nil, shared.NewDomainError("aiPlayers must be between 0 and 3")
	}

	g := galaxy.NewGalaxy()

	alpha, err := galaxy.NewStarSystem("alpha", 5)
	if err != nil {
		return nil, err
	}
	beta, err := galaxy.NewStarSystem("beta", 4)
	if err != nil {
		return nil, err
	}
	if err := g.AddSystem(alpha); err != nil {
		return nil, err
	}
	if err := g.AddSystem(beta); err != nil {
		return nil, err
	}
	if err := g.Connect(
		1, "alpha", shared.NewHexCoord(4, 0), shared.Position{X: 200, Y: 0},
		2, "beta", shared.NewHexCoord(-3, 0), shared.Position{X: -200, Y: 0},
		1.0,
	); err != nil {
		return nil, err
	}

	s := game.NewState(g)

	homeSectors := []shared.HexCoord{
		shared.NewHexCoord(-4, 0),
		shared.NewHexCoord(4, -4),
		shared.NewHexCoord(0, 4),
		shared.NewHexCoord(0, -4),
	}

	bodyID := 1
	for i := 0; i <= aiPlayers; i++ {
		pid := shared.MustNewPlayerID(i + 1)
		p, err := ledger.NewPlayer(pid, fmt.Sprintf("Player %d", i+1), playerColors[i], i == 0, StartingCredits, 0, 0)
		if err != nil {
			return nil, err
		}
		if err := s.AddPlayer(p); err != nil {
			return nil, err
		}

		sector := homeSectors[i]
		home := galaxy.NewBody(bodyID, galaxy.BodyPlanet, "alpha", sector, shared.Position{})
		home.Name = fmt.Sprintf("Home-%d", i+1)
		home.PlanetType = galaxy.PlanetTerran
		bodyID++
		if err := home.Colonize(pid, 50); err != nil {
			return nil, err
		}
		if err := alpha.AddBody(home); err != nil {
			return nil, err
		}

		if err := spawnStartingUnits(s, pid, sector); err != nil {
			return nil, err
		}
	}

	// Neutral expansion targets.
	moon := galaxy.NewBody(bodyID, galaxy.BodyMoon, "alpha", shared.NewHexCoord(0, 0), shared.Position{X: 300, Y: 100})
	moon.Name = "Kite"
	bodyID++
	if err := alpha.AddBody(moon); err != nil {
		return nil, err
	}
	rock := galaxy.NewBody(bodyID, galaxy.BodyAsteroid, "beta", shared.NewHexCoord(0, 0), shared.Position{X: -150, Y: 250})
	rock.Name = "Cinder"
	if err := beta.AddBody(rock); err != nil {
		return nil, err
	}

	return s, nil
}

func spawnStartingUnits(s *game.State, owner shared.PlayerID, sector shared.HexCoord) error {
	basic, err := unit.NewHyperdrive(unit.ComponentHyperdriveBasic, 0, 0)
	if err != nil {
		return err
	}
	_, err = s.SpawnUnit(owner, fmt.Sprintf("Scout-%s", owner), unit.HullTiny,
		[]*unit.Component{basic},
		unit.Location{System: "alpha", Sector: sector})
	if err != nil {
		return err
	}

	advanced, err := unit.NewHyperdrive(unit.ComponentHyperdriveAdvanced, 0, 0)
	if err != nil {
		return err
	}
	colonyShip := []*unit.Component{
		unit.NewEngine(unit.DefaultEngineSpeed),
		advanced,
		unit.NewColony(unit.DefaultColonyCapacity),
	}
	seeder, err := s.SpawnUnit(owner, fmt.Sprintf("Seeder-%s", owner), unit.HullMedium,
		colonyShip,
		unit.Location{System: "alpha", Sector: sector})
	if err != nil {
		return err
	}
	seeder.Component(unit.ComponentColony).PopulationCargo = 25
	return nil
}
