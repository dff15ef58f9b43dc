package galaxy

import (
	"fmt"
	"math"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// BodyKind discriminates the celestial object variants that can occupy a sector.
type BodyKind string

const (
	BodyStar          BodyKind = "STAR"
	BodyPlanet        BodyKind = "PLANET"
	BodyMoon          BodyKind = "MOON"
	BodyAsteroid      BodyKind = "ASTEROID"
	BodyNebula        BodyKind = "NEBULA"
	BodyStorm         BodyKind = "STORM"
	BodyComet         BodyKind = "COMET"
	BodyDebrisField   BodyKind = "DEBRIS_FIELD"
	BodyAsteroidField BodyKind = "ASTEROID_FIELD"
	BodyIceField      BodyKind = "ICE_FIELD"
)

// PlanetType affects the population a colonized planet can sustain.
type PlanetType string

const (
	PlanetTerran     PlanetType = "TERRAN"
	PlanetDesert     PlanetType = "DESERT"
	PlanetVolcanic   PlanetType = "VOLCANIC"
	PlanetIce        PlanetType = "ICE"
	PlanetBarren     PlanetType = "BARREN"
	PlanetFerrous    PlanetType = "FERROUS"
	PlanetGreenhouse PlanetType = "GREENHOUSE"
	PlanetOceanic    PlanetType = "OCEANIC"
	PlanetGasGiant   PlanetType = "GAS_GIANT"
)

// Default population parameters per colonizable body kind.
const (
	PlanetPopulationCapacity   = int64(100)
	PlanetGrowthRate           = 0.02
	MoonPopulationCapacity     = int64(50)
	MoonGrowthRate             = 0.01
	AsteroidPopulationCapacity = int64(20)
	AsteroidGrowthRate         = 0.005

	DefaultMoonCrystalYield   = int64(10)
	DefaultAsteroidMetalYield = int64(10)
)

// Body is a celestial object fixed at a position inside a sector. Moons and
// Asteroids carry resource yields; Planets, Moons and Asteroids are
// colonizable and then carry an owner and a population.
//
// Topology fields (kind, location, yields) are immutable after generation;
// only ownership and population mutate during play.
type Body struct {
	ID       int
	Name     string
	Kind     BodyKind
	System   string
	Sector   shared.HexCoord
	Position shared.Position

	PlanetType PlanetType // set for BodyPlanet only

	Owner      shared.PlayerID // zero value = unowned
	Population int64

	PopulationCapacity int64
	GrowthRate         float64
	MetalYield         int64 // asteroids
	CrystalYield       int64 // moons
}

// NewBody creates a celestial body of the given kind with the default
// population and yield parameters for that kind.
func NewBody(id int, kind BodyKind, system string, sector shared.HexCoord, pos shared.Position) *Body {
	b := &Body{
		ID:       id,
		Name:     fmt.Sprintf("%s %d", kind, id),
		Kind:     kind,
		System:   system,
		Sector:   sector,
		Position: pos,
	}

	switch kind {
	case BodyPlanet:
		b.PopulationCapacity = PlanetPopulationCapacity
		b.GrowthRate = PlanetGrowthRate
	case BodyMoon:
		b.PopulationCapacity = MoonPopulationCapacity
		b.GrowthRate = MoonGrowthRate
		b.CrystalYield = DefaultMoonCrystalYield
	case BodyAsteroid:
		b.PopulationCapacity = AsteroidPopulationCapacity
		b.GrowthRate = AsteroidGrowthRate
		b.MetalYield = DefaultAsteroidMetalYield
	}

	return b
}

// IsColonizable reports whether the body can carry an owner and population.
func (b *Body) IsColonizable() bool {
	switch b.Kind {
	case BodyPlanet, BodyMoon, BodyAsteroid:
		return true
	}
	return false
}

// IsColonized reports whether a player owns the body.
func (b *Body) IsColonized() bool {
	return !b.Owner.IsZero()
}

// Colonize transfers ownership to the player and lands the given population.
// Colonizing a body already owned by another player is illegal.
func (b *Body) Colonize(owner shared.PlayerID, population int64) error {
	if !b.IsColonizable() {
		return shared.NewIllegalTargetError(fmt.Sprintf("%s is not colonizable", b.Name))
	}
	if b.IsColonized() && !b.Owner.Equals(owner) {
		return shared.NewIllegalTargetError(fmt.Sprintf("%s is owned by another player", b.Name))
	}
	if population <= 0 {
		return shared.NewIllegalTargetError("cannot colonize with zero population")
	}

	b.Owner = owner
	b.Population += population
	if b.Population > b.PopulationCapacity {
		b.Population = b.PopulationCapacity
	}
	return nil
}

// LoadPopulation removes up to amount population from the body for transport.
// Returns the amount actually loaded.
func (b *Body) LoadPopulation(requester shared.PlayerID, amount int64) (int64, error) {
	if !b.IsColonized() || !b.Owner.Equals(requester) {
		return 0, shared.NewIllegalTargetError(fmt.Sprintf("%s is not owned by the requesting player", b.Name))
	}
	if amount <= 0 {
		return 0, nil
	}
	if amount > b.Population {
		amount = b.Population
	}
	b.Population -= amount
	return amount, nil
}

// GrowPopulation advances the body's population by one turn of logistic
// growth: pop' = pop + round(pop * rate * (1 - pop/capacity)), clamped to
// [0, capacity]. Uncolonized bodies do not grow.
func (b *Body) GrowPopulation() {
	if !b.IsColonized() || b.PopulationCapacity == 0 {
		return
	}

	pop := float64(b.Population)
	cap := float64(b.PopulationCapacity)
	delta := int64(math.Round(pop * b.GrowthRate * (1 - pop/cap)))

	b.Population += delta
	if b.Population > b.PopulationCapacity {
		b.Population = b.PopulationCapacity
	}
	if b.Population < 0 {
		b.Population = 0
	}
}
