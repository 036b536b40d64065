package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openmf/fieldops/internal/bootstrap"
	"github.com/openmf/fieldops/internal/service"
)

// withServices connects the store, the cache and the gateway for commands
// that talk to the remote API.
func (e *adminEnv) withServices(ctx context.Context, fn func(*bootstrap.ServiceContainer) error) (err error) {
	c, err := bootstrap.NewServices(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

func syncCmd(env *adminEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download entities and their members into the local store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "centers <id>...",
			Short: "Sync centers with their groups and clients",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				return env.withServices(cmd.Context(), func(c *bootstrap.ServiceContainer) error {
					report, err := c.Sync.SyncCenterIDs(cmd.Context(), ids, progressPrinter(cmd))
					return printSyncReport(cmd, report, err)
				})
			},
		},
		&cobra.Command{
			Use:   "groups <id>...",
			Short: "Sync groups with their clients",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				return env.withServices(cmd.Context(), func(c *bootstrap.ServiceContainer) error {
					report, err := c.Sync.SyncGroupIDs(cmd.Context(), ids, progressPrinter(cmd))
					return printSyncReport(cmd, report, err)
				})
			},
		},
	)
	return cmd
}

func progressPrinter(cmd *cobra.Command) service.SyncProgress {
	return func(done, total int, item service.SyncItem) {
		state := "ok"
		if item.Err != nil {
			state = "failed"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s %d %s\n", done, total, item.Type, item.ID, state)
	}
}

func printSyncReport(cmd *cobra.Command, report *service.SyncReport, err error) error {
	if err != nil {
		return err
	}
	groups, clients := 0, 0
	for _, it := range report.Items {
		groups += it.Groups
		clients += it.Clients
	}
	cmd.Printf("batch %s: synced %d of %d in %s (%d groups, %d clients)\n",
		report.BatchID, report.Synced(), len(report.Items), report.Duration.Round(time.Millisecond), groups, clients)
	return report.Err()
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func reportsCmd(env *adminEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "reports", Short: "Inspect and run remote reports"}

	params := &cobra.Command{
		Use:   "params <report name>",
		Short: "List the parameters a report expects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withServices(cmd.Context(), func(c *bootstrap.ServiceContainer) error {
				names, err := c.Runner.Parameters(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, n := range names {
					cmd.Println(n)
				}
				return nil
			})
		},
	}

	var (
		rawParams []string
		query     string
	)
	run := &cobra.Command{
		Use:   "run <report name>",
		Short: "Run a report and print its rows as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseParams(rawParams)
			if err != nil {
				return err
			}
			return env.withServices(cmd.Context(), func(c *bootstrap.ServiceContainer) error {
				out, err := c.Runner.Run(cmd.Context(), args[0], values, query)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}
	run.Flags().StringArrayVarP(&rawParams, "param", "P", nil, "report parameter as key=value, repeatable")
	run.Flags().StringVarP(&query, "query", "q", "", "JMESPath expression applied to the rows")

	cmd.AddCommand(params, run)
	return cmd
}

func parseParams(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", kv)
		}
		out[k] = v
	}
	return out, nil
}

func trackCmd(env *adminEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "track", Short: "Upload tracking sessions"}
	cmd.AddCommand(&cobra.Command{
		Use:   "replay <file>",
		Short: "Upload a recorded route (JSON lines of lat/lng) as one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open replay file: %w", err)
			}
			defer f.Close()
			return env.withServices(cmd.Context(), func(c *bootstrap.ServiceContainer) error {
				loc, err := c.Recorder.Replay(cmd.Context(), service.NewReplaySource(f))
				if err != nil {
					return err
				}
				path, err := loc.Path()
				if err != nil {
					return err
				}
				cmd.Printf("uploaded %d points for user %d on %s (%s-%s)\n",
					len(path), loc.UserID, loc.Date, loc.StartTime, loc.StopTime)
				return nil
			})
		},
	})
	return cmd
}
