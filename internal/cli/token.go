package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd(boot bootstrapFunc) *cobra.Command {
	var (
		userID      int64
		accessLevel int
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an editor token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: withEnv(boot, false, func(env *Env, cmd *cobra.Command, _ []string) error {
			token, err := env.Services.AuthService.CreateToken(cmd.Context(), userID, accessLevel)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		}),
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "backend user id (sub claim)")
	cmd.Flags().IntVar(&accessLevel, "access", 0, "access level (100 = admin)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
