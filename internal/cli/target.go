package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-content-sync/models"
)

func newTargetCmd(boot bootstrapFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Inspect and lock sync targets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show waiting artifacts and lock state per target",
		Args:  cobra.NoArgs,
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, _ []string) error {
			waiting, err := env.Services.LockService.Targets(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TARGET\tLOCKED\tFILES\tSIZE\tOLDEST\tSTATUS")
			for _, w := range waiting {
				fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%ds\t%s\n", w.Target, w.Locked, len(w.Files), w.TotalSize, w.OldestAge, w.Severity)
			}
			return tw.Flush()
		}),
	}

	cmd.AddCommand(list, newTargetLockCmd(boot, "lock", true), newTargetLockCmd(boot, "unlock", false))
	return cmd
}

func newTargetLockCmd(boot bootstrapFunc, use string, locked bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <target>",
		Short: use + " a target directory",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, args []string) error {
			if err := env.Services.LockService.SetTargetLock(cmd.Context(), models.AccessAdmin, args[0], locked); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "target %s: %sed\n", args[0], use)
			return nil
		}),
	}
}
