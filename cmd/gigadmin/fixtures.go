package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gigmarket/gigadmin/internal/fixture"
	"github.com/gigmarket/gigadmin/internal/logger"
)

// withStore opens the configured backend for the duration of fn.
func withStore(opts *rootOptions, fn func(store fixture.KeyValueStore, seeder *fixture.Seeder) error) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	b, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b.store, fixture.NewSeeder(logger.L()))
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write every sample collection that is not already stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(opts, func(store fixture.KeyValueStore, seeder *fixture.Seeder) error {
				report, err := seeder.SeedIfAbsent(store)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d, skipped %d (run %s)\n",
					len(report.Seeded), len(report.Skipped), report.RunID)
				return nil
			})
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every sample collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(opts, func(store fixture.KeyValueStore, seeder *fixture.Seeder) error {
				if err := seeder.Reset(store); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "reset complete")
				return nil
			})
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which sample collections are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(opts, func(store fixture.KeyValueStore, seeder *fixture.Seeder) error {
				statuses, err := seeder.Status(store)
				if err != nil {
					return err
				}
				return printStatus(cmd.OutOrStdout(), statuses)
			})
		},
	}
}

func printStatus(w io.Writer, statuses []fixture.KeyStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPRESENT\tBYTES")
	for _, s := range statuses {
		fmt.Fprintf(tw, "%s\t%t\t%d\n", s.Key, s.Present, s.Size)
	}
	return tw.Flush()
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "show <collection>",
		Short:     "Print the stored value of a sample collection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: fixture.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !fixture.IsKey(key) {
				return fmt.Errorf("unknown collection %q", key)
			}
			return withStore(opts, func(store fixture.KeyValueStore, _ *fixture.Seeder) error {
				value, ok, err := store.Get(key)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %s", fixture.ErrNotSeeded, key)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(value))
				return err
			})
		},
	}
}
