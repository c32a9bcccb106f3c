// Package cli implements the nrsync command line: sync runs, locks, table
// state, editor tokens and migrations against the staging database.
package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-content-sync/internal/app"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
	"github.com/MKhiriev/go-content-sync/models"
)

// Env is what a command runs against.
type Env struct {
	Config   *config.StructuredConfig
	Services *service.Services
	Logger   *logger.Logger

	// Migrate applies the database migrations; nil without a database.
	Migrate func() error
	close   func() error
}

func (e *Env) Close() error {
	if e.close == nil {
		return nil
	}
	return e.close()
}

// bootstrapFunc builds the Env of a command. needsDB is false for commands
// that only need configuration, such as token.
type bootstrapFunc func(cmd *cobra.Command, needsDB bool) (*Env, error)

type runFunc func(env *Env, cmd *cobra.Command, args []string) error

// NewRootCmd returns the nrsync command tree.
func NewRootCmd(build models.AppBuildInfo) *cobra.Command {
	return newRootCmd(build, func(cmd *cobra.Command, needsDB bool) (*Env, error) {
		return bootstrap(cmd, build, needsDB)
	})
}

// Execute runs nrsync with the process arguments.
func Execute(ctx context.Context, build models.AppBuildInfo) error {
	return NewRootCmd(build).ExecuteContext(ctx)
}

func newRootCmd(build models.AppBuildInfo, boot bootstrapFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "nrsync",
		Short: "Sync staging CMS content to the production targets",
		Long: `nrsync dumps changed staging content into SQL artifacts, delivers them
to the target directories and notifies the targets.

Configuration is read from the environment, an optional .env file in the
working directory and the JSON file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "path to the JSON configuration file")
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the environment is read")

	root.AddCommand(
		newRunCmd(boot),
		newLockCmd(boot),
		newTargetCmd(boot),
		newStateCmd(boot),
		newTokenCmd(boot),
		newMigrateCmd(boot),
		newVersionCmd(build),
	)

	return root
}

// withEnv bootstraps the Env for fn and closes it afterwards.
func withEnv(boot bootstrapFunc, needsDB bool, fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := boot(cmd, needsDB)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := env.Logger.WithContext(cmd.Context())
		cmd.SetContext(ctx)

		return fn(env, cmd, args)
	}
}

func bootstrap(cmd *cobra.Command, build models.AppBuildInfo, needsDB bool) (*Env, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	jsonPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.GetCLIConfig(jsonPath)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logger.NewConsoleLogger("nrsync", cmd.ErrOrStderr(), verbose)

	if !needsDB {
		return &Env{
			Config:   cfg,
			Services: &service.Services{AuthService: service.NewAuthService(cfg.App, log)},
			Logger:   log,
		}, nil
	}

	a, err := app.New(cmd.Context(), cfg, build, log)
	if err != nil {
		return nil, err
	}

	return &Env{
		Config:   cfg,
		Services: a.Services,
		Logger:   log,
		Migrate:  a.Migrate,
		close:    a.Close,
	}, nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
