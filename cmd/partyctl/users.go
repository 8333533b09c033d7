package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

func newUsersCmd(e *env) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Account maintenance",
	}

	var (
		grace  time.Duration
		dryRun bool
	)

	purgeCmd := &cobra.Command{
		Use:   "purge-orphans",
		Short: "Delete accounts older than --grace that have no profile document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if grace <= 0 {
				return fmt.Errorf("--grace must be positive, got %s", grace)
			}

			ctx, cancel := e.context(cmd)
			defer cancel()

			users, err := e.ops.PurgeOrphans(ctx, grace, dryRun)
			if err != nil {
				return fmt.Errorf("purge orphans: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, u := range users {
				fmt.Fprintf(out, "%s\t%s\t%s\n", u.ID, u.Email, u.CreatedAt.UTC().Format(time.RFC3339))
			}

			verb := "deleted"
			if dryRun {
				verb = "found"
			}
			fmt.Fprintf(out, "%d orphan account(s) %s\n", len(users), verb)

			e.log.Info("orphans_purged",
				slog.Int("count", len(users)),
				slog.Bool("dry_run", dryRun),
			)

			return nil
		},
	}
	purgeCmd.Flags().DurationVar(&grace, "grace", 24*time.Hour, "minimum account age")
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "list orphans without deleting them")

	usersCmd.AddCommand(purgeCmd)

	return usersCmd
}
