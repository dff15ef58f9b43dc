package unit

import "github.com/sdudley/hexfront-go/internal/domain/shared"

// ComponentKind discriminates the component variants a unit can install.
// Capability checks scan a unit's component list for a kind tag instead of
// type-switching over a hierarchy.
type ComponentKind string

const (
	ComponentEngine             ComponentKind = "ENGINE"
	ComponentHyperdriveBasic    ComponentKind = "HYPERDRIVE_BASIC"
	ComponentHyperdriveAdvanced ComponentKind = "HYPERDRIVE_ADVANCED"
	ComponentWeapon             ComponentKind = "WEAPON"
	ComponentInhibitor          ComponentKind = "INHIBITOR"
	ComponentColony             ComponentKind = "COLONY"
	ComponentConstructor        ComponentKind = "CONSTRUCTOR"
)

// Default component parameters, matching the unit templates the game ships
// with.
const (
	DefaultEngineSpeed        = 100.0
	DefaultJumpRange          = 5
	DefaultHyperdriveCooldown = 3
	DefaultInhibitorRadius    = 50.0
	DefaultColonyCapacity     = int64(100)
	DefaultWeaponDamage       = 10
	DefaultWeaponRange        = 150.0
	DefaultWeaponCooldown     = 1
	DefaultConstructorRange   = 500.0
)

var defaultHullCosts = map[ComponentKind]int{
	ComponentEngine:             5,
	ComponentHyperdriveBasic:    10,
	ComponentHyperdriveAdvanced: 10,
	ComponentWeapon:             10,
	ComponentInhibitor:          20,
	ComponentColony:             10,
	ComponentConstructor:        15,
}

// Component is a tagged variant attached to a unit. Only the fields relevant
// to the component's kind are meaningful; the rest stay at their zero value.
type Component struct {
	Kind     ComponentKind `json:"kind"`
	HullCost int           `json:"hullCost"`

	// Engine
	Speed float64 `json:"speed,omitempty"`

	// Hyperdrives
	JumpRange         int `json:"jumpRange,omitempty"`
	CooldownDuration  int `json:"cooldownDuration,omitempty"`
	CooldownRemaining int `json:"cooldownRemaining,omitempty"`

	// Weapon turret spec
	Damage         int     `json:"damage,omitempty"`
	Range          float64 `json:"range,omitempty"`
	WeaponCooldown int     `json:"weaponCooldown,omitempty"`
	WeaponReady    int     `json:"weaponReady,omitempty"` // turns until the turret can fire again

	// Inhibitor
	Radius float64 `json:"radius,omitempty"`
	Active bool    `json:"active,omitempty"`

	// Colony transport
	PopulationCargo int64 `json:"populationCargo,omitempty"`
	CargoCapacity   int64 `json:"cargoCapacity,omitempty"`

	// Constructor
	BuildRange    float64 `json:"buildRange,omitempty"`
	BuildTemplate string  `json:"buildTemplate,omitempty"`
	BuildProgress int     `json:"buildProgress,omitempty"`
	BuildDuration int     `json:"buildDuration,omitempty"`
}

// NewEngine creates an engine component for sub-light travel within a sector.
func NewEngine(speed float64) *Component {
	return &Component{Kind: ComponentEngine, HullCost: defaultHullCosts[ComponentEngine], Speed: speed}
}

// NewHyperdrive creates a basic or advanced hyperdrive. Basic drives power
// hex jumps within a system; advanced drives additionally power wormhole
// jumps between systems.
func NewHyperdrive(kind ComponentKind, jumpRange, cooldown int) (*Component, error) {
	if kind != ComponentHyperdriveBasic && kind != ComponentHyperdriveAdvanced {
		return nil, shared.NewDomainError("hyperdrive kind must be basic or advanced")
	}
	if jumpRange <= 0 {
		jumpRange = DefaultJumpRange
	}
	if cooldown <= 0 {
		cooldown = DefaultHyperdriveCooldown
	}
	return &Component{
		Kind:             kind,
		HullCost:         defaultHullCosts[kind],
		JumpRange:        jumpRange,
		CooldownDuration: cooldown,
	}, nil
}

// NewWeapon creates a weapon component with a single turret spec.
func NewWeapon(damage int, rng float64, cooldown int) *Component {
	return &Component{
		Kind:           ComponentWeapon,
		HullCost:       defaultHullCosts[ComponentWeapon],
		Damage:         damage,
		Range:          rng,
		WeaponCooldown: cooldown,
	}
}

// NewInhibitor creates a hyperspace inhibition field emitter. The field is
// inactive until toggled on by order.
func NewInhibitor(radius float64) *Component {
	if radius <= 0 {
		radius = DefaultInhibitorRadius
	}
	return &Component{Kind: ComponentInhibitor, HullCost: defaultHullCosts[ComponentInhibitor], Radius: radius}
}

// NewColony creates a colony transport component.
func NewColony(capacity int64) *Component {
	if capacity <= 0 {
		capacity = DefaultColonyCapacity
	}
	return &Component{Kind: ComponentColony, HullCost: defaultHullCosts[ComponentColony], CargoCapacity: capacity}
}

// NewConstructor creates a constructor component able to build stations.
func NewConstructor() *Component {
	return &Component{Kind: ComponentConstructor, HullCost: defaultHullCosts[ComponentConstructor], BuildRange: DefaultConstructorRange}
}

// IsHyperdrive reports whether the component is either hyperdrive variant.
func (c *Component) IsHyperdrive() bool {
	return c.Kind == ComponentHyperdriveBasic || c.Kind == ComponentHyperdriveAdvanced
}

// OnCooldown reports whether a hyperdrive is still recharging.
func (c *Component) OnCooldown() bool {
	return c.IsHyperdrive() && c.CooldownRemaining > 0
}

// StartCooldown begins a hyperdrive recharge after a jump.
func (c *Component) StartCooldown() {
	if c.IsHyperdrive() {
		c.CooldownRemaining = c.CooldownDuration
	}
}

// Tick advances per-turn component timers: hyperdrive recharge and weapon
// turret cooldown. Called once per unit per turn regardless of orders.
func (c *Component) Tick() {
	if c.CooldownRemaining > 0 {
		c.CooldownRemaining--
	}
	if c.WeaponReady > 0 {
		c.WeaponReady--
	}
}

// IsBuilding reports whether a constructor has a build in progress.
func (c *Component) IsBuilding() bool {
	return c.Kind == ComponentConstructor && c.BuildTemplate != ""
}
