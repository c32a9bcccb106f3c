package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("no database connection")

func newMigrateCmd(boot bootstrapFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the sync state, registry and session tables",
		Args:  cobra.NoArgs,
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, _ []string) error {
			if env.Migrate == nil {
				return errNoDatabase
			}
			if err := env.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		}),
	}
}
