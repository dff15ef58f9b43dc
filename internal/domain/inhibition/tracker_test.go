package inhibition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdudley/hexfront-go/internal/domain/inhibition"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

func TestTracker_HostileBlocksOwnDoesNot(t *testing.T) {
	tr := inhibition.NewTracker()
	ada := shared.MustNewPlayerID(1)
	brix := shared.MustNewPlayerID(2)
	sector := shared.NewHexCoord(2, -1)

	tr.Activate("alpha", sector, 10, ada)

	assert.True(t, tr.IsInhibited("alpha", sector))
	assert.False(t, tr.IsBlockedFor("alpha", sector, ada), "own field must not block")
	assert.True(t, tr.IsBlockedFor("alpha", sector, brix))
	assert.False(t, tr.IsBlockedFor("alpha", shared.NewHexCoord(0, 0), brix))
	assert.False(t, tr.IsBlockedFor("beta", sector, brix))
}

func TestTracker_Deactivate(t *testing.T) {
	tr := inhibition.NewTracker()
	ada := shared.MustNewPlayerID(1)
	sector := shared.NewHexCoord(0, 0)

	tr.Activate("alpha", sector, 10, ada)
	tr.Activate("alpha", sector, 11, ada)

	tr.Deactivate("alpha", sector, 10)
	assert.True(t, tr.IsInhibited("alpha", sector), "second emitter still active")

	tr.Deactivate("alpha", sector, 11)
	assert.False(t, tr.IsInhibited("alpha", sector))
	assert.Empty(t, tr.Fields())

	// Deactivating an absent entry is a no-op.
	tr.Deactivate("alpha", sector, 99)
}

func TestTracker_RemoveUnit(t *testing.T) {
	tr := inhibition.NewTracker()
	ada := shared.MustNewPlayerID(1)

	tr.Activate("alpha", shared.NewHexCoord(0, 0), 10, ada)
	tr.Activate("beta", shared.NewHexCoord(1, 1), 10, ada)
	tr.Activate("alpha", shared.NewHexCoord(0, 0), 11, ada)

	tr.RemoveUnit(10)

	assert.True(t, tr.IsInhibited("alpha", shared.NewHexCoord(0, 0)))
	assert.False(t, tr.IsInhibited("beta", shared.NewHexCoord(1, 1)))
	require.Len(t, tr.Fields(), 1)
	assert.Equal(t, 11, tr.Fields()[0].UnitID)
}

func TestTracker_OwnersSorted(t *testing.T) {
	tr := inhibition.NewTracker()
	sector := shared.NewHexCoord(0, 0)

	tr.Activate("alpha", sector, 20, shared.MustNewPlayerID(3))
	tr.Activate("alpha", sector, 21, shared.MustNewPlayerID(1))
	tr.Activate("alpha", sector, 22, shared.MustNewPlayerID(1))

	owners := tr.Owners("alpha", sector)
	require.Len(t, owners, 2)
	assert.Equal(t, 1, owners[0].Value())
	assert.Equal(t, 3, owners[1].Value())
}

func TestReconstructTracker_RoundTrip(t *testing.T) {
	tr := inhibition.NewTracker()
	tr.Activate("alpha", shared.NewHexCoord(1, 0), 10, shared.MustNewPlayerID(1))
	tr.Activate("beta", shared.NewHexCoord(-2, 2), 11, shared.MustNewPlayerID(2))

	restored, err := inhibition.ReconstructTracker(tr.Fields())
	require.NoError(t, err)

	assert.Equal(t, tr.Fields(), restored.Fields())
}
