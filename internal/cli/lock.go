package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-content-sync/models"
)

func newLockCmd(boot bootstrapFunc) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:       "lock [on|off]",
		Short:     "Show or toggle the module lock",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			locks := env.Services.LockService

			if len(args) == 1 {
				locked := args[0] == "on"
				if err := locks.SetModuleLock(ctx, models.AccessAdmin, locked, message); err != nil {
					return err
				}
			}

			lock, err := locks.ModuleLock(ctx)
			if err != nil {
				return err
			}

			if !lock.Locked {
				fmt.Fprintln(cmd.OutOrStdout(), "sync is unlocked")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sync is locked")
			if lock.Message != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "message: %s\n", lock.Message)
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message shown to editors while locked")
	return cmd
}
