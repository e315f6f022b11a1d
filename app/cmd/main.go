// Command notes-admin holds the maintenance tasks of the notes server.
package main

import (
	"fmt"
	"github.com/ribgsilva/notes-server/app/cmd/schema"
	"github.com/ribgsilva/notes-server/app/cmd/token"
	"github.com/ribgsilva/notes-server/platform/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func main() {
	// empty logger, the commands print what they do
	log := zap.NewNop().Sugar()
	env.Load(log)

	root := &cobra.Command{
		Use:           "notes-admin",
		Short:         "Maintenance tasks of the notes server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log), token.Command(log))

	if err := root.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
