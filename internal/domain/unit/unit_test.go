package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

func ada() shared.PlayerID { return shared.MustNewPlayerID(1) }

func homeLocation() unit.Location {
	return unit.Location{System: "alpha", Sector: shared.NewHexCoord(0, 0)}
}

func TestNewUnit_Validation(t *testing.T) {
	engine := unit.NewEngine(unit.DefaultEngineSpeed)

	t.Run("valid unit starts at full hit points", func(t *testing.T) {
		u, err := unit.NewUnit(1, ada(), "Scout", unit.HullTiny,
			[]*unit.Component{engine}, homeLocation())
		require.NoError(t, err)
		assert.Equal(t, 20, u.HitPoints())
		assert.Equal(t, 20, u.MaxHitPoints())
		assert.Equal(t, 0, u.Queue().Len())
	})

	t.Run("component cost over hull capacity", func(t *testing.T) {
		// TINY holds 10; engine (5) + inhibitor (20) is 25.
		_, err := unit.NewUnit(2, ada(), "Overfull", unit.HullTiny,
			[]*unit.Component{engine, unit.NewInhibitor(0)}, homeLocation())
		assert.Error(t, err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := unit.NewUnit(0, ada(), "NoID", unit.HullTiny, nil, homeLocation())
		assert.Error(t, err)

		_, err = unit.NewUnit(3, shared.PlayerID{}, "NoOwner", unit.HullTiny, nil, homeLocation())
		assert.Error(t, err)

		_, err = unit.NewUnit(4, ada(), "", unit.HullTiny, nil, homeLocation())
		assert.Error(t, err)

		_, err = unit.NewUnit(5, ada(), "BadHull", unit.HullClass("DREADNOUGHT"), nil, homeLocation())
		assert.Error(t, err)

		_, err = unit.NewUnit(6, ada(), "Nowhere", unit.HullTiny, nil, unit.Location{})
		assert.Error(t, err)
	})
}

func TestHullClass_Tiers(t *testing.T) {
	assert.Equal(t, 10, unit.HullTiny.Capacity())
	assert.Equal(t, 200, unit.HullHuge.Capacity())
	assert.Equal(t, 100, unit.HullMedium.HitPoints())

	h, err := unit.ParseHullClass("LARGE")
	require.NoError(t, err)
	assert.Equal(t, unit.HullLarge, h)

	_, err = unit.ParseHullClass("COLOSSAL")
	assert.Error(t, err)
}

func TestUnit_ComponentLookup(t *testing.T) {
	drive, err := unit.NewHyperdrive(unit.ComponentHyperdriveBasic, 0, 0)
	require.NoError(t, err)
	u, err := unit.NewUnit(1, ada(), "Scout", unit.HullSmall,
		[]*unit.Component{unit.NewEngine(50), drive}, homeLocation())
	require.NoError(t, err)

	assert.True(t, u.HasComponent(unit.ComponentEngine))
	assert.False(t, u.HasComponent(unit.ComponentWeapon))
	assert.NotNil(t, u.Hyperdrive())
	assert.False(t, u.HasComponent(unit.ComponentHyperdriveAdvanced))
}

func TestUnit_TakeDamage(t *testing.T) {
	u, err := unit.NewUnit(1, ada(), "Target", unit.HullTiny, nil, homeLocation())
	require.NoError(t, err)

	u.TakeDamage(15)
	assert.Equal(t, 5, u.HitPoints())
	assert.False(t, u.IsDestroyed())

	// Damage clamps at zero instead of going negative.
	u.TakeDamage(50)
	assert.Equal(t, 0, u.HitPoints())
	assert.True(t, u.IsDestroyed())

	u.TakeDamage(-5)
	assert.Equal(t, 0, u.HitPoints())
}

func TestComponent_HyperdriveCooldown(t *testing.T) {
	drive, err := unit.NewHyperdrive(unit.ComponentHyperdriveBasic, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, unit.DefaultJumpRange, drive.JumpRange)
	assert.False(t, drive.OnCooldown())

	drive.StartCooldown()
	assert.True(t, drive.OnCooldown())
	assert.Equal(t, unit.DefaultHyperdriveCooldown, drive.CooldownRemaining)

	for i := 0; i < unit.DefaultHyperdriveCooldown; i++ {
		drive.Tick()
	}
	assert.False(t, drive.OnCooldown())
}

func TestUnit_TickComponents(t *testing.T) {
	drive, err := unit.NewHyperdrive(unit.ComponentHyperdriveAdvanced, 0, 0)
	require.NoError(t, err)
	weapon := unit.NewWeapon(unit.DefaultWeaponDamage, unit.DefaultWeaponRange, 2)
	u, err := unit.NewUnit(1, ada(), "Raider", unit.HullSmall,
		[]*unit.Component{drive, weapon}, homeLocation())
	require.NoError(t, err)

	drive.StartCooldown()
	weapon.WeaponReady = 2

	u.TickComponents()
	assert.Equal(t, unit.DefaultHyperdriveCooldown-1, drive.CooldownRemaining)
	assert.Equal(t, 1, weapon.WeaponReady)
}

func TestReconstructUnit_RoundTrip(t *testing.T) {
	engine := unit.NewEngine(unit.DefaultEngineSpeed)
	u, err := unit.ReconstructUnit(9, ada(), "Veteran", unit.HullMedium,
		[]*unit.Component{engine}, homeLocation(), 42, nil)
	require.NoError(t, err)

	assert.Equal(t, 42, u.HitPoints())
	assert.NotNil(t, u.Queue())

	// Persisted hit points outside the hull range are rejected.
	_, err = unit.ReconstructUnit(10, ada(), "Ghost", unit.HullTiny, nil, homeLocation(), 21, nil)
	assert.Error(t, err)
}

func TestTemplate_Instantiate(t *testing.T) {
	tmpl, err := unit.LookupTemplate(unit.TemplateStationMk1)
	require.NoError(t, err)

	station, err := tmpl.Instantiate(3, ada(), "Bastion", homeLocation())
	require.NoError(t, err)
	assert.True(t, station.HasComponent(unit.ComponentWeapon))
	assert.True(t, station.HasComponent(unit.ComponentInhibitor))

	_, err = unit.LookupTemplate("STATION_MK9")
	assert.Error(t, err)
}
