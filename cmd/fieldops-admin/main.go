package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/bootstrap"
)

// adminEnv is shared by every command. The store and services are
// connected on demand so offline commands never touch the network.
type adminEnv struct {
	out    io.Writer
	logger *slog.Logger
	cfg    config.AppConfig

	storePath string
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(&adminEnv{out: os.Stdout})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fieldops-admin:", err)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func newRootCmd(env *adminEnv) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldops-admin",
		Short:         "Maintenance commands for the fieldops local store and remote API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			if env.storePath != "" {
				cfg.Store.Driver = config.StoreDriverSQLite
				cfg.Store.Path = env.storePath
			}
			env.cfg = cfg
			level := slog.LevelWarn
			if env.verbose {
				level = cfg.SlogLevel()
			}
			env.logger = bootstrap.InitLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.SetOut(env.out)
	root.PersistentFlags().StringVar(&env.storePath, "store", "", "SQLite store file (overrides STORE_DRIVER and STORE_PATH)")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log at the configured LOG_LEVEL instead of warn")

	root.AddCommand(
		migrateCmd(env),
		centersCmd(env),
		groupsCmd(env),
		clientsCmd(env),
		syncCmd(env),
		reportsCmd(env),
		trackCmd(env),
	)
	return root
}
