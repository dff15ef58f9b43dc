package ledger

import (
	"fmt"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// TransactionType classifies the economic events the journal records.
type TransactionType string

const (
	// TransactionTypeConstruction is a credit expense for a started build.
	TransactionTypeConstruction TransactionType = "CONSTRUCTION"

	// TransactionTypeTaxRevenue is credit income taxed from colony populations.
	TransactionTypeTaxRevenue TransactionType = "TAX_REVENUE"

	// TransactionTypeResourceYield is metal and crystal income from colonies.
	TransactionTypeResourceYield TransactionType = "RESOURCE_YIELD"
)

// IsValid checks if the transaction type is one of the known kinds.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeConstruction, TransactionTypeTaxRevenue, TransactionTypeResourceYield:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is one immutable journal entry: an economic event applied to a
// player's balances on a given turn. Credits are signed, expenses negative.
type Transaction struct {
	id           TransactionID
	playerID     shared.PlayerID
	turn         int
	kind         TransactionType
	credits      int64
	metal        int64
	crystal      int64
	creditsAfter int64
	description  string
}

// NewTransaction creates a validated journal entry.
func NewTransaction(
	playerID shared.PlayerID,
	turn int,
	kind TransactionType,
	credits, metal, crystal int64,
	creditsAfter int64,
	description string,
) (*Transaction, error) {
	if playerID.IsZero() {
		return nil, shared.NewDomainError("transaction requires a player")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError(fmt.Sprintf("invalid transaction type: %s", kind))
	}
	if turn < 0 {
		return nil, shared.NewDomainError("transaction turn cannot be negative")
	}
	return &Transaction{
		id:           NewTransactionID(),
		playerID:     playerID,
		turn:         turn,
		kind:         kind,
		credits:      credits,
		metal:        metal,
		crystal:      crystal,
		creditsAfter: creditsAfter,
		description:  description,
	}, nil
}

func (t *Transaction) ID() TransactionID        { return t.id }
func (t *Transaction) PlayerID() shared.PlayerID { return t.playerID }
func (t *Transaction) Turn() int                { return t.turn }
func (t *Transaction) Kind() TransactionType    { return t.kind }
func (t *Transaction) Credits() int64           { return t.credits }
func (t *Transaction) Metal() int64             { return t.metal }
func (t *Transaction) Crystal() int64           { return t.crystal }
func (t *Transaction) CreditsAfter() int64      { return t.creditsAfter }
func (t *Transaction) Description() string      { return t.description }

func (t *Transaction) String() string {
	return fmt.Sprintf("[turn %d] %s %s: %+d credits (balance %d)",
		t.turn, t.playerID, t.kind, t.credits, t.creditsAfter)
}
