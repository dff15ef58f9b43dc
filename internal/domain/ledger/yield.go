package ledger

import (
	"math"

	"github.com/sdudley/hexfront-go/internal/domain/galaxy"
)

// TaxRate is the credit income per population unit per turn.
const TaxRate = 0.10

// TurnYield is the income one player collects from one body in one turn.
type TurnYield struct {
	BodyID  int   `json:"bodyId"`
	Credits int64 `json:"credits"`
	Metal   int64 `json:"metal"`
	Crystal int64 `json:"crystal"`
}

// CollectYield grows the body's population one logistic step, then credits
// the owner with resource yields and tax income on the grown population.
// Uncolonized bodies yield nothing and do not grow.
func CollectYield(p *Player, b *galaxy.Body) (TurnYield, error) {
	y := TurnYield{BodyID: b.ID}
	if !b.IsColonized() || !b.Owner.Equals(p.ID()) {
		return y, nil
	}

	b.GrowPopulation()

	y.Metal = b.MetalYield
	y.Crystal = b.CrystalYield
	y.Credits = int64(math.Floor(float64(b.Population) * TaxRate))

	if err := p.Credit(y.Credits, y.Metal, y.Crystal); err != nil {
		return TurnYield{BodyID: b.ID}, err
	}
	return y, nil
}
