package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

func TestNewStarSystem_GeneratesHexGrid(t *testing.T) {
	sys, err := galaxy.NewStarSystem("alpha", 2)
	require.NoError(t, err)

	// A hex grid of radius r has 3r^2 + 3r + 1 cells.
	assert.Len(t, sys.Sectors(), 19)
	assert.True(t, sys.Contains(shared.NewHexCoord(2, -2)))
	assert.False(t, sys.Contains(shared.NewHexCoord(2, 1)))
}

func TestNewStarSystem_RejectsBadInput(t *testing.T) {
	_, err := galaxy.NewStarSystem("", 2)
	assert.Error(t, err)

	_, err = galaxy.NewStarSystem("alpha", -1)
	assert.Error(t, err)
}

func TestGalaxy_Connect(t *testing.T) {
	g := galaxy.NewGalaxy()
	for _, id := range []string{"alpha", "beta"} {
		sys, err := galaxy.NewStarSystem(id, 3)
		require.NoError(t, err)
		require.NoError(t, g.AddSystem(sys))
	}

	err := g.Connect(
		1, "alpha", shared.NewHexCoord(3, 0), shared.Position{X: 50},
		2, "beta", shared.NewHexCoord(-3, 0), shared.Position{X: -50},
		2.5,
	)
	require.NoError(t, err)

	wh := g.WormholeFrom("alpha", "beta")
	require.NotNil(t, wh)
	assert.Equal(t, 1, wh.ID)
	assert.Equal(t, 2, wh.ExitID)

	back := g.Wormhole(wh.ExitID)
	require.NotNil(t, back)
	assert.Equal(t, "beta", back.System)
	assert.Equal(t, wh.ID, back.ExitID)
}

func TestGalaxy_Connect_Rejections(t *testing.T) {
	g := galaxy.NewGalaxy()
	for _, id := range []string{"alpha", "beta"} {
		sys, err := galaxy.NewStarSystem(id, 3)
		require.NoError(t, err)
		require.NoError(t, g.AddSystem(sys))
	}
	require.NoError(t, g.Connect(
		1, "alpha", shared.NewHexCoord(0, 0), shared.Position{},
		2, "beta", shared.NewHexCoord(0, 0), shared.Position{},
		1.0,
	))

	t.Run("self loop", func(t *testing.T) {
		err := g.Connect(
			5, "alpha", shared.NewHexCoord(0, 0), shared.Position{},
			6, "alpha", shared.NewHexCoord(1, 0), shared.Position{},
			1.0,
		)
		assert.Error(t, err)
	})

	t.Run("duplicate edge", func(t *testing.T) {
		err := g.Connect(
			5, "alpha", shared.NewHexCoord(1, 0), shared.Position{},
			6, "beta", shared.NewHexCoord(1, 0), shared.Position{},
			1.0,
		)
		assert.Error(t, err)
	})

	t.Run("non positive cost", func(t *testing.T) {
		err := g.Connect(
			7, "alpha", shared.NewHexCoord(0, 1), shared.Position{},
			8, "beta", shared.NewHexCoord(0, 1), shared.Position{},
			0,
		)
		assert.Error(t, err)
	})

	t.Run("sector outside radius", func(t *testing.T) {
		err := g.Connect(
			9, "alpha", shared.NewHexCoord(4, 0), shared.Position{},
			10, "beta", shared.NewHexCoord(0, 2), shared.Position{},
			1.0,
		)
		assert.Error(t, err)
	})
}

func TestBody_GrowPopulation(t *testing.T) {
	owner := shared.MustNewPlayerID(1)

	t.Run("logistic growth", func(t *testing.T) {
		b := galaxy.NewBody(1, galaxy.BodyPlanet, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
		require.NoError(t, b.Colonize(owner, 50))

		b.GrowPopulation()

		// 50 + round(50 * 0.02 * (1 - 50/100)) = 51
		assert.Equal(t, int64(51), b.Population)
	})

	t.Run("clamped at capacity", func(t *testing.T) {
		b := galaxy.NewBody(2, galaxy.BodyAsteroid, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
		require.NoError(t, b.Colonize(owner, 25))
		assert.Equal(t, galaxy.AsteroidPopulationCapacity, b.Population)

		b.GrowPopulation()
		assert.Equal(t, galaxy.AsteroidPopulationCapacity, b.Population)
	})

	t.Run("never shrinks under growth", func(t *testing.T) {
		b := galaxy.NewBody(3, galaxy.BodyMoon, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
		require.NoError(t, b.Colonize(owner, 10))

		for i := 0; i < 500; i++ {
			before := b.Population
			b.GrowPopulation()
			assert.GreaterOrEqual(t, b.Population, before)
			assert.LessOrEqual(t, b.Population, galaxy.MoonPopulationCapacity)
		}
	})

	t.Run("uncolonized bodies do not grow", func(t *testing.T) {
		b := galaxy.NewBody(4, galaxy.BodyPlanet, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
		b.GrowPopulation()
		assert.Equal(t, int64(0), b.Population)
	})
}

func TestBody_Colonize(t *testing.T) {
	ada := shared.MustNewPlayerID(1)
	brix := shared.MustNewPlayerID(2)

	b := galaxy.NewBody(1, galaxy.BodyPlanet, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
	require.NoError(t, b.Colonize(ada, 40))
	assert.Equal(t, int64(40), b.Population)

	// Reinforcing an own colony is allowed, taking someone else's is not.
	require.NoError(t, b.Colonize(ada, 80))
	assert.Equal(t, galaxy.PlanetPopulationCapacity, b.Population)
	assert.Error(t, b.Colonize(brix, 10))

	star := galaxy.NewBody(2, galaxy.BodyStar, "alpha", shared.NewHexCoord(0, 0), shared.Position{})
	assert.Error(t, star.Colonize(ada, 10))
}

func TestGalaxy_BodyLookup(t *testing.T) {
	g := galaxy.NewGalaxy()
	sys, err := galaxy.NewStarSystem("alpha", 2)
	require.NoError(t, err)
	require.NoError(t, g.AddSystem(sys))

	b := galaxy.NewBody(7, galaxy.BodyMoon, "alpha", shared.NewHexCoord(1, -1), shared.Position{X: 10})
	require.NoError(t, sys.AddBody(b))

	found := g.Body(7)
	require.NotNil(t, found)
	assert.Equal(t, "alpha", found.System)
	assert.Nil(t, g.Body(99))
}
