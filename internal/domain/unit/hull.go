package unit

import "github.com/sdudley/hexfront-go/internal/domain/shared"

// HullClass is one of five capacity tiers bounding total installed component
// size.
type HullClass string

const (
	HullTiny   HullClass = "TINY"
	HullSmall  HullClass = "SMALL"
	HullMedium HullClass = "MEDIUM"
	HullLarge  HullClass = "LARGE"
	HullHuge   HullClass = "HUGE"
)

var hullCapacities = map[HullClass]int{
	HullTiny:   10,
	HullSmall:  25,
	HullMedium: 50,
	HullLarge:  100,
	HullHuge:   200,
}

var hullHitPoints = map[HullClass]int{
	HullTiny:   20,
	HullSmall:  50,
	HullMedium: 100,
	HullLarge:  200,
	HullHuge:   400,
}

// Capacity returns the component budget of the hull class.
func (h HullClass) Capacity() int {
	return hullCapacities[h]
}

// HitPoints returns the maximum hull points of the hull class.
func (h HullClass) HitPoints() int {
	return hullHitPoints[h]
}

// Valid reports whether the hull class is one of the five known tiers.
func (h HullClass) Valid() bool {
	_, ok := hullCapacities[h]
	return ok
}

// ParseHullClass converts a persisted string into a HullClass.
func ParseHullClass(s string) (HullClass, error) {
	h := HullClass(s)
	if !h.Valid() {
		return "", shared.NewDomainError("unknown hull class: " + s)
	}
	return h, nil
}
