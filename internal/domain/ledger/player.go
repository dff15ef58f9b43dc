// Package ledger holds player-owned economic state: resource balances and
// the per-turn yield that feeds them.
package ledger

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// Player aggregate - one faction's economic account.
//
// Invariants:
// - Balances never go negative; spending checks funds first
type Player struct {
	id      shared.PlayerID
	name    string
	color   string
	human   bool
	credits int64
	metal   int64
	crystal int64
}

// NewPlayer creates a player account with starting balances.
func NewPlayer(id shared.PlayerID, name, color string, human bool, credits, metal, crystal int64) (*Player, error) {
	p := &Player{
		id:      id,
		name:    name,
		color:   color,
		human:   human,
		credits: credits,
		metal:   metal,
		crystal: crystal,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) validate() error {
	if p.id.IsZero() {
		return shared.NewDomainError("player id must be positive")
	}
	if p.name == "" {
		return shared.NewDomainError("player name cannot be empty")
	}
	if p.credits < 0 || p.metal < 0 || p.crystal < 0 {
		return shared.NewDomainError("player balances cannot be negative")
	}
	return nil
}

func (p *Player) ID() shared.PlayerID { return p.id }
func (p *Player) Name() string        { return p.name }
func (p *Player) Color() string       { return p.color }
func (p *Player) IsHuman() bool       { return p.human }
func (p *Player) Credits() int64      { return p.credits }
func (p *Player) Metal() int64        { return p.metal }
func (p *Player) Crystal() int64      { return p.crystal }

// Credit adds income to the player's balances. Negative amounts are rejected.
func (p *Player) Credit(credits, metal, crystal int64) error {
	if credits < 0 || metal < 0 || crystal < 0 {
		return shared.NewDomainError("credit amounts cannot be negative")
	}
	p.credits += credits
	p.metal += metal
	p.crystal += crystal
	return nil
}

// Spend withdraws resources, failing without partial effect when any balance
// is insufficient.
func (p *Player) Spend(credits, metal, crystal int64) error {
	if credits < 0 || metal < 0 || crystal < 0 {
		return shared.NewDomainError("spend amounts cannot be negative")
	}
	if p.credits < credits {
		return shared.NewInsufficientResourcesError(credits, p.credits, "credits")
	}
	if p.metal < metal {
		return shared.NewInsufficientResourcesError(metal, p.metal, "metal")
	}
	if p.crystal < crystal {
		return shared.NewInsufficientResourcesError(crystal, p.crystal, "crystal")
	}
	p.credits -= credits
	p.metal -= metal
	p.crystal -= crystal
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %s %q (%d cr, %d metal, %d crystal)",
		p.id, p.name, p.credits, p.metal, p.crystal)
}
