// Package inhibition tracks which sectors are covered by active hyperspace
// inhibition fields and whose.
package inhibition

import (
	"fmt"
	"sort"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

type sectorKey struct {
	System string
	Sector shared.HexCoord
}

func (k sectorKey) String() string {
	return fmt.Sprintf("%s %s", k.System, k.Sector)
}

// Tracker maintains the live index from sector to the set of units projecting
// an active inhibition field there. It is rebuilt incrementally: activation
// and deactivation are reported by the turn executor as fields toggle, units
// move, or units are destroyed.
//
// Invariants:
// - An entry exists only while its source unit is alive with an active field
// - A sector with no active fields has no entry at all
type Tracker struct {
	fields map[sectorKey]map[int]shared.PlayerID // sector -> unit id -> owner
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{fields: make(map[sectorKey]map[int]shared.PlayerID)}
}

// Activate records an active field projected by the given unit in the sector.
func (t *Tracker) Activate(system string, sector shared.HexCoord, unitID int, owner shared.PlayerID) {
	key := sectorKey{System: system, Sector: sector}
	if t.fields[key] == nil {
		t.fields[key] = make(map[int]shared.PlayerID)
	}
	t.fields[key][unitID] = owner
}

// Deactivate removes the field projected by the given unit, if any. Called
// when the field is toggled off, when the unit leaves the sector, and when
// the unit is destroyed.
func (t *Tracker) Deactivate(system string, sector shared.HexCoord, unitID int) {
	key := sectorKey{System: system, Sector: sector}
	units := t.fields[key]
	if units == nil {
		return
	}
	delete(units, unitID)
	if len(units) == 0 {
		delete(t.fields, key)
	}
}

// RemoveUnit drops every field projected by the given unit regardless of
// sector. Destruction cleanup path.
func (t *Tracker) RemoveUnit(unitID int) {
	for key, units := range t.fields {
		delete(units, unitID)
		if len(units) == 0 {
			delete(t.fields, key)
		}
	}
}

// IsInhibited reports whether any active field covers the sector.
func (t *Tracker) IsInhibited(system string, sector shared.HexCoord) bool {
	return len(t.fields[sectorKey{System: system, Sector: sector}]) > 0
}

// IsBlockedFor reports whether the sector is covered by a field belonging to
// a player other than the given one. A player's own fields never block their
// units; any hostile field does, with no override.
func (t *Tracker) IsBlockedFor(system string, sector shared.HexCoord, player shared.PlayerID) bool {
	for _, owner := range t.fields[sectorKey{System: system, Sector: sector}] {
		if !owner.Equals(player) {
			return true
		}
	}
	return false
}

// Owners returns the distinct owners of active fields in the sector, sorted
// by player id.
func (t *Tracker) Owners(system string, sector shared.HexCoord) []shared.PlayerID {
	seen := make(map[int]shared.PlayerID)
	for _, owner := range t.fields[sectorKey{System: system, Sector: sector}] {
		seen[owner.Value()] = owner
	}
	out := make([]shared.PlayerID, 0, len(seen))
	for _, owner := range seen {
		out = append(out, owner)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value() < out[j].Value() })
	return out
}

// ActiveField is one tracker entry, used for persistence and reporting.
type ActiveField struct {
	System string          `json:"system"`
	Sector shared.HexCoord `json:"sector"`
	UnitID int             `json:"unitId"`
	Owner  int             `json:"owner"`
}

// Fields returns every tracker entry in deterministic order.
func (t *Tracker) Fields() []ActiveField {
	var out []ActiveField
	for key, units := range t.fields {
		for unitID, owner := range units {
			out = append(out, ActiveField{
				System: key.System,
				Sector: key.Sector,
				UnitID: unitID,
				Owner:  owner.Value(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].System != out[j].System {
			return out[i].System < out[j].System
		}
		if out[i].Sector.Q != out[j].Sector.Q {
			return out[i].Sector.Q < out[j].Sector.Q
		}
		if out[i].Sector.R != out[j].Sector.R {
			return out[i].Sector.R < out[j].Sector.R
		}
		return out[i].UnitID < out[j].UnitID
	})
	return out
}

// ReconstructTracker restores a tracker from persisted entries.
func ReconstructTracker(fields []ActiveField) (*Tracker, error) {
	t := NewTracker()
	for _, f := range fields {
		owner, err := shared.NewPlayerID(f.Owner)
		if err != nil {
			return nil, err
		}
		t.Activate(f.System, f.Sector, f.UnitID, owner)
	}
	return t, nil
}
