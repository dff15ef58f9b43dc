package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdudley/hexfront-go/internal/adapters/persistence"
	"github.com/sdudley/hexfront-go/internal/infrastructure/config"
	"github.com/sdudley/hexfront-go/internal/infrastructure/database"
)

// NewSnapshotCommand creates the snapshot command group
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved game snapshots",
	}
	cmd.AddCommand(newSnapshotListCommand())
	cmd.AddCommand(newSnapshotDeleteCommand())
	return cmd
}

func openSnapshotRepo() (*persistence.GormSnapshotRepository, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return persistence.NewGormSnapshotRepository(db), nil
}

func newSnapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openSnapshotRepo()
			if err != nil {
				return err
			}
			names, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("no snapshots")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newSnapshotDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openSnapshotRepo()
			if err != nil {
				return err
			}
			return repo.Delete(cmd.Context(), args[0])
		},
	}
}
