package common

import (
	"context"

	"github.com/sdudley/hexfront-go/internal/domain/game"
)

// SnapshotRepository persists complete game states under a snapshot name.
// Save replaces; Load must round-trip exactly.
type SnapshotRepository interface {
	Save(ctx context.Context, name string, s *game.State) error
	Load(ctx context.Context, name string) (*game.State, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}
