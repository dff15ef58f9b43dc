package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdudley/hexfront-go/internal/adapters/persistence"
	"github.com/sdudley/hexfront-go/internal/application/ai"
	"github.com/sdudley/hexfront-go/internal/application/common"
	"github.com/sdudley/hexfront-go/internal/application/orders"
	"github.com/sdudley/hexfront-go/internal/application/planner"
	"github.com/sdudley/hexfront-go/internal/application/session"
	"github.com/sdudley/hexfront-go/internal/application/setup"
	"github.com/sdudley/hexfront-go/internal/application/turn"
	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/infrastructure/config"
	"github.com/sdudley/hexfront-go/internal/infrastructure/database"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		turns    int
		aiCount  int
		saveName string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless skirmish simulation",
		Long: `Builds a deterministic skirmish scenario, drives every player with the
built-in advisor, and resolves the requested number of turns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd.Context(), turns, aiCount, saveName)
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 10, "Number of turns to resolve")
	cmd.Flags().IntVar(&aiCount, "ai", 1, "Number of AI opponents (0-3)")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the final state under this snapshot name")
	return cmd
}

func runSimulation(ctx context.Context, turns, aiCount int, saveName string) error {
	cfg := config.LoadConfigOrDefault(configPath)
	if verbose {
		ctx = common.WithLogger(ctx, common.NewStderrLogger())
	}

	state, err := setup.NewSkirmish(aiCount)
	if err != nil {
		return err
	}

	med := common.NewMediator()
	p := planner.NewPlanner(cfg.Engine.SearchBudget)
	endTurn := turn.NewEndTurnHandler(state, p)
	if err := common.RegisterHandler[*turn.EndTurnCommand](med, endTurn); err != nil {
		return err
	}
	if err := common.RegisterHandler[*orders.SubmitOrderCommand](med,
		orders.NewSubmitOrderHandler(state, cfg.Engine.OrderRate, cfg.Engine.OrderBurst)); err != nil {
		return err
	}

	for i := 0; i < turns; i++ {
		for _, player := range state.Players() {
			for _, proposal := range ai.Propose(state, player.ID()) {
				_, err := med.Send(ctx, &orders.SubmitOrderCommand{
					PlayerID: player.ID().Value(),
					UnitID:   proposal.UnitID,
					Order:    proposal.Order,
				})
				if err != nil {
					return err
				}
			}
		}

		resp, err := med.Send(ctx, &turn.EndTurnCommand{})
		if err != nil {
			return err
		}
		printReport(resp.(*turn.EndTurnResponse).Report)
	}

	for _, player := range state.Players() {
		fmt.Printf("player %s: %d credits, %d metal, %d crystal (net %+d over %d turns)\n",
			player.ID(), player.Credits(), player.Metal(), player.Crystal(),
			endTurn.Journal().NetCredits(player.ID()), turns)
	}

	if saveName != "" {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		repo := persistence.NewGormSnapshotRepository(db)
		saver := session.NewSaveGameHandler(state, repo)
		if _, err := saver.Handle(ctx, &session.SaveGameCommand{Name: saveName}); err != nil {
			return err
		}
		fmt.Printf("saved snapshot %q at turn %d\n", saveName, state.Turn())
	}
	return nil
}

func printReport(r *game.TurnReport) {
	fmt.Printf("turn %d: %d orders resolved, %d combat events, %d units destroyed\n",
		r.Turn, len(r.Outcomes), len(r.Combat), len(r.DestroyedUnits))
	if !verbose {
		return
	}
	for _, o := range r.Outcomes {
		if o.Reason != "" {
			fmt.Printf("  unit %d %s -> %s (%s)\n", o.UnitID, o.Type, o.Status, o.Reason)
		} else {
			fmt.Printf("  unit %d %s -> %s\n", o.UnitID, o.Type, o.Status)
		}
	}
	for _, c := range r.Combat {
		fmt.Printf("  unit %d hit unit %d for %d\n", c.AttackerID, c.TargetID, c.Damage)
	}
}
