package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newProfileCmd(e *env) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and reset user profiles",
	}

	checkCmd := &cobra.Command{
		Use:   "check <user-id>",
		Short: "Report profile completeness and the post-login route",
		Long: `Report which mandatory profile fields are missing, whether the
only contact is an empty placeholder, and where the user lands after login.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := e.context(cmd)
			defer cancel()

			st, err := e.ops.ProfileStatus(ctx, uid)
			if err != nil {
				return fmt.Errorf("profile status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user:        %s\n", uid)
			fmt.Fprintf(out, "complete:    %t\n", st.Complete)

			missing := make([]string, 0, len(st.Missing))
			for _, f := range st.Missing {
				missing = append(missing, string(f))
			}
			if len(missing) == 0 {
				fmt.Fprintln(out, "missing:     -")
			} else {
				fmt.Fprintf(out, "missing:     %s\n", strings.Join(missing, ", "))
			}

			fmt.Fprintf(out, "next route:  %s\n", st.NextRoute)
			fmt.Fprintf(out, "kyc:         %t\n", st.HasKYC)
			fmt.Fprintf(out, "eligibility: %s\n", st.Eligibility)

			if st.PlaceholderContact {
				fmt.Fprintln(out, "warning:     contacts hold only an empty placeholder number")
			}

			return nil
		},
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear <user-id>",
		Short: "Reset mandatory profile fields so the user is sent back to /form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				return fmt.Errorf("refusing to clear profile %s without --yes", uid)
			}

			ctx, cancel := e.context(cmd)
			defer cancel()

			if err := e.ops.ClearProfile(ctx, uid); err != nil {
				return fmt.Errorf("clear profile: %w", err)
			}

			e.log.Info("profile_cleared", slog.String("user_id", uid.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "profile %s cleared\n", uid)

			return nil
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")

	profileCmd.AddCommand(checkCmd, clearCmd)

	return profileCmd
}
