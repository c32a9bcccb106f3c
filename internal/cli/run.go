package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-content-sync/models"
)

type runOptions struct {
	target       string
	forceFull    bool
	keepObsolete bool
	pages        []int64
}

func newRunCmd(boot bootstrapFunc) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <module>",
		Short: "Run a sync module",
		Long: `Run a sync module as the system user.

Page-list modules need --pages since the CLI has no sync list.

Examples:
  nrsync run 31 --target production        # domain records, incremental
  nrsync run 8 --force-full                # FAL, full dump to every target
  nrsync run 46 --pages 12,13              # two single pages with content`,
		Args: cobra.ExactArgs(1),
		RunE: withEnv(boot, true, func(env *Env, cmd *cobra.Command, args []string) error {
			moduleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid module id %q: %w", args[0], err)
			}

			req := models.SyncRequest{
				ModuleID:       moduleID,
				Target:         opts.target,
				ForceFull:      opts.forceFull,
				DeleteObsolete: !opts.keepObsolete,
				AccessLevel:    models.AccessAdmin,
				PageIDs:        opts.pages,
			}

			result, err := env.Services.SyncService.Run(cmd.Context(), req)
			printResult(cmd.OutOrStdout(), result)
			return err
		}),
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target name or \"all\" (default from config)")
	cmd.Flags().BoolVar(&opts.forceFull, "force-full", false, "ignore sync stamps and dump every row")
	cmd.Flags().BoolVar(&opts.keepObsolete, "keep-obsolete", false, "do not append the obsolete-row cleanup")
	cmd.Flags().Int64SliceVar(&opts.pages, "pages", nil, "page ids for page-list modules")

	return cmd
}

func printResult(w io.Writer, result models.SyncResult) {
	for _, m := range result.Messages {
		fmt.Fprintf(w, "[%s] %s\n", m.Severity, m.Text)
	}
	if result.Artifact != "" {
		fmt.Fprintf(w, "artifact: %s\n", result.Artifact)
	}
	for _, target := range result.Delivered {
		fmt.Fprintf(w, "delivered: %s\n", target)
	}
}
