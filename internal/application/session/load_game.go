package session

import (
	"context"
	"fmt"

	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/domain/game"
)

// LoadGameCommand restores a snapshot into a fresh game state.
type LoadGameCommand struct {
	Name string
}

// LoadGameResponse carries the restored state.
type LoadGameResponse struct {
	State *game.State
}

// LoadGameHandler handles the LoadGame command
type LoadGameHandler struct {
	repo common.SnapshotRepository
}

func NewLoadGameHandler(repo common.SnapshotRepository) *LoadGameHandler {
	return &LoadGameHandler{repo: repo}
}

// Handle executes the LoadGame command
func (h *LoadGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*LoadGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LoadGameCommand")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("snapshot name cannot be empty")
	}

	state, err := h.repo.Load(ctx, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	common.LoggerFromContext(ctx).Log("info", "game loaded", map[string]interface{}{
		"snapshot": cmd.Name,
		"turn":     state.Turn(),
	})
	return &LoadGameResponse{State: state}, nil
}
