package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newStateCmd(boot bootstrapFunc) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "state <module>",
		Short: "Show the sync stamps of a module's tables",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, args []string) error {
			moduleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid module id %q: %w", args[0], err)
			}

			stats, err := env.Services.SyncService.State(cmd.Context(), moduleID, target)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tFULL\tINCR\tLAST\tTYPE\tUSER")
			for _, s := range stats {
				last := "-"
				if !s.LastTime.IsZero() {
					last = s.LastTime.Format(time.DateTime)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\n", s.Table, s.Full, s.Incr, last, s.LastType, s.LastUser)
			}
			return tw.Flush()
		}),
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "target whose state table is read")
	return cmd
}
