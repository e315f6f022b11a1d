package token

import (
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"time"
)

// Command prints a signed token, handy to call the protected routes by hand.
func Command(log *zap.SugaredLogger) *cobra.Command {
	var (
		email string
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for an email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := auth.New(env.OrDefault(log, "ACCESS_TOKEN_SECRET", ""), ttl)
			if err != nil {
				return err
			}
			signed, err := a.Issue(map[string]any{"email": email})
			if err != nil {
				return err
			}
			cmd.Println(signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email carried by the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
