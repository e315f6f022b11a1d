package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-server/persistence/v1/schema"
	"github.com/ribgsilva/notes-server/platform/database"
	"github.com/ribgsilva/notes-server/platform/env"
	"github.com/ribgsilva/notes-server/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command groups the schema commands.
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create or delete the database tables",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Creates the schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), log, func(ctx context.Context, db *sql.DB) error {
					cmd.Println("creating schema")
					if err := schema.Create(ctx, db); err != nil {
						return fmt.Errorf("failed to create schema: %w", err)
					}
					cmd.Println("created schema")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "delete",
			Aliases: []string{"drop"},
			Short:   "Deletes the schema",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), log, func(ctx context.Context, db *sql.DB) error {
					cmd.Println("deleting schema")
					if err := schema.Drop(ctx, db); err != nil {
						return fmt.Errorf("failed to delete schema: %w", err)
					}
					cmd.Println("deleted schema")
					return nil
				})
			},
		},
	)
	return cmd
}

func withDatabase(ctx context.Context, log *zap.SugaredLogger, f func(context.Context, *sql.DB) error) error {
	var cfg sys.Config
	cfg.Database.User = env.OrDefault(log, "DB_USER", "root")
	cfg.Database.Pass = env.OrDefault(log, "DB_PASS", "")
	cfg.Database.Host = env.OrDefault(log, "DB_HOST", "localhost:3306")
	cfg.Database.Name = env.OrDefault(log, "DB_NAME", "NotesApp")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	return f(ctx, db)
}
