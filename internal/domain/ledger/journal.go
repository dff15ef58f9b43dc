package ledger

import "github.com/sdudley/hexfront-go/internal/domain/shared"

// Journal is an append-only record of economic events across a session.
// Entries keep insertion order, which matches turn order since all writes
// happen in the serial phase.
type Journal struct {
	entries []*Transaction
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append adds an entry to the journal.
func (j *Journal) Append(t *Transaction) {
	j.entries = append(j.entries, t)
}

// Entries returns all entries in insertion order.
func (j *Journal) Entries() []*Transaction {
	out := make([]*Transaction, len(j.entries))
	copy(out, j.entries)
	return out
}

// ForPlayer returns the player's entries in insertion order.
func (j *Journal) ForPlayer(id shared.PlayerID) []*Transaction {
	var out []*Transaction
	for _, t := range j.entries {
		if t.PlayerID().Equals(id) {
			out = append(out, t)
		}
	}
	return out
}

// NetCredits sums the signed credit deltas for a player.
func (j *Journal) NetCredits(id shared.PlayerID) int64 {
	var sum int64
	for _, t := range j.entries {
		if t.PlayerID().Equals(id) {
			sum += t.Credits()
		}
	}
	return sum
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}
