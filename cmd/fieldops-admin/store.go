package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openmf/fieldops/internal/bootstrap"
	"github.com/openmf/fieldops/internal/data"
	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/migrate"
)

// openStore connects the local store without applying migrations.
func (e *adminEnv) openStore(ctx context.Context) (*sql.DB, error) {
	cfg := e.cfg.Store
	cfg.RunMigrationsOnStart = false
	db, err := bootstrap.ConnectStore(ctx, cfg, e.logger)
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	return db, nil
}

// withStores opens the store, runs fn over it and closes it again.
func (e *adminEnv) withStores(ctx context.Context, fn func(data.Stores) error) error {
	db, err := e.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(data.NewStores(db, nil))
}

func migrateCmd(env *adminEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the local store schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, err := env.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()
				if err := bootstrap.RunMigrations(cmd.Context(), db, env.cfg.Store.Driver, env.logger); err != nil {
					return err
				}
				return printStatus(cmd, db, env)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration, dropping synchronized data",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, err := env.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()
				if err := migrate.Down(cmd.Context(), db, env.cfg.Store.Driver); err != nil {
					return err
				}
				return printStatus(cmd, db, env)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, err := env.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()
				return printStatus(cmd, db, env)
			},
		},
	)
	return cmd
}

func printStatus(cmd *cobra.Command, db *sql.DB, env *adminEnv) error {
	status, err := migrate.Version(db, env.cfg.Store.Driver)
	if err != nil {
		return err
	}
	dirty := ""
	if status.Dirty {
		dirty = " (dirty)"
	}
	cmd.Printf("%s schema version %d%s\n", env.cfg.Store.Driver, status.Version, dirty)
	return nil
}

func centersCmd(env *adminEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "centers", Short: "Inspect synchronized centers"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List centers held in the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.withStores(cmd.Context(), func(s data.Stores) error {
				centers, err := s.Centers.ListAll(cmd.Context())
				if err != nil {
					return err
				}
				return printTable(cmd, []string{"ID", "NAME", "OFFICE", "STATUS"}, centers, func(c model.Center) []string {
					return []string{strconv.FormatInt(c.ID, 10), c.DisplayName(), c.OfficeName, c.Status.Value}
				})
			})
		},
	})
	return cmd
}

func groupsCmd(env *adminEnv) *cobra.Command {
	var centerID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List groups held in the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.withStores(cmd.Context(), func(s data.Stores) error {
				var (
					groups []model.Group
					err    error
				)
				if centerID > 0 {
					groups, err = s.Groups.ListByCenter(cmd.Context(), centerID)
				} else {
					groups, err = s.Groups.ListAll(cmd.Context())
				}
				if err != nil {
					return err
				}
				return printTable(cmd, []string{"ID", "NAME", "CENTER", "OFFICE"}, groups, func(g model.Group) []string {
					return []string{strconv.FormatInt(g.ID, 10), g.DisplayName(), strconv.FormatInt(g.CenterID, 10), g.OfficeName}
				})
			})
		},
	}
	list.Flags().Int64Var(&centerID, "center", 0, "only groups of this center")

	cmd := &cobra.Command{Use: "groups", Short: "Inspect synchronized groups"}
	cmd.AddCommand(list)
	return cmd
}

func clientsCmd(env *adminEnv) *cobra.Command {
	var groupID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List clients held in the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.withStores(cmd.Context(), func(s data.Stores) error {
				var (
					clients []model.Client
					err     error
				)
				if groupID > 0 {
					clients, err = s.Clients.ListByGroup(cmd.Context(), groupID)
				} else {
					clients, err = s.Clients.ListAll(cmd.Context())
				}
				if err != nil {
					return err
				}
				return printTable(cmd, []string{"ID", "NAME", "GROUP", "ACCOUNT"}, clients, func(c model.Client) []string {
					return []string{strconv.FormatInt(c.ID, 10), c.DisplayName(), strconv.FormatInt(c.GroupID, 10), c.AccountNo}
				})
			})
		},
	}
	list.Flags().Int64Var(&groupID, "group", 0, "only clients of this group")

	cmd := &cobra.Command{Use: "clients", Short: "Inspect synchronized clients"}
	cmd.AddCommand(list)
	return cmd
}

func printTable[T any](cmd *cobra.Command, header []string, rows []T, cells func(T) []string) error {
	if len(rows) == 0 {
		cmd.Println("nothing stored")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	writeRow(tw, header)
	for _, r := range rows {
		writeRow(tw, cells(r))
	}
	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
}
