package unit

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Template describes a buildable unit design: hull class, component loadout,
// and the cost to construct it.
type Template struct {
	Name       string
	Hull       HullClass
	CreditCost int64
	BuildTurns int
	components func() []*Component
}

// TemplateStationMk1 is the basic defensive station a constructor can build.
const TemplateStationMk1 = "STATION_MK1"

var templates = map[string]*Template{
	TemplateStationMk1: {
		Name:       TemplateStationMk1,
		Hull:       HullLarge,
		CreditCost: 500,
		BuildTurns: 10,
		components: func() []*Component {
			return []*Component{
				NewWeapon(DefaultWeaponDamage, DefaultWeaponRange, DefaultWeaponCooldown),
				NewInhibitor(DefaultInhibitorRadius),
			}
		},
	},
}

// LookupTemplate returns the template with the given name.
func LookupTemplate(name string) (*Template, error) {
	t, ok := templates[name]
	if !ok {
		return nil, shared.NewDomainError(fmt.Sprintf("unknown unit template: %s", name))
	}
	return t, nil
}

// Components returns a fresh component loadout for the template.
func (t *Template) Components() []*Component {
	return t.components()
}

// Instantiate builds a fresh unit from the template at the given location.
func (t *Template) Instantiate(id int, owner shared.PlayerID, name string, location Location) (*Unit, error) {
	return NewUnit(id, owner, name, t.Hull, t.components(), location)
}
