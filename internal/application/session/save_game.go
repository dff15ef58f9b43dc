// Package session exposes save and load commands over the snapshot
// repository.
package session

import (
	"context"
	"fmt"

	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/domain/game"
)

// SaveGameCommand persists the running game under a snapshot name.
type SaveGameCommand struct {
	Name string
}

// SaveGameResponse confirms the saved snapshot.
type SaveGameResponse struct {
	Name string
	Turn int
}

// SaveGameHandler handles the SaveGame command
type SaveGameHandler struct {
	state *game.State
	repo  common.SnapshotRepository
}

func NewSaveGameHandler(state *game.State, repo common.SnapshotRepository) *SaveGameHandler {
	return &SaveGameHandler{state: state, repo: repo}
}

// Handle executes the SaveGame command
func (h *SaveGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveGameCommand")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("snapshot name cannot be empty")
	}

	if err := h.repo.Save(ctx, cmd.Name, h.state); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	common.LoggerFromContext(ctx).Log("info", "game saved", map[string]interface{}{
		"snapshot": cmd.Name,
		"turn":     h.state.Turn(),
	})
	return &SaveGameResponse{Name: cmd.Name, Turn: h.state.Turn()}, nil
}
