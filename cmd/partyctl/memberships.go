package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/pkg/api"
)

func newMembershipsCmd(e *env) *cobra.Command {
	membershipsCmd := &cobra.Command{
		Use:   "memberships",
		Short: "Manage the membership catalog",
	}

	seedCmd := &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Load the catalog from a JSON array of tiers",
		Long: `Load the membership catalog from a JSON file.

The file holds an array of tiers in catalog order (lowest first), each
shaped like the /memberships response item. Existing tiers with the same
id are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := readCatalog(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := e.context(cmd)
			defer cancel()

			for i, t := range tiers {
				if err := e.docs.PutMembership(ctx, membershipFromAPI(t), i); err != nil {
					return fmt.Errorf("put membership %q: %w", t.ID, err)
				}
			}

			e.log.Info("memberships_seeded", slog.Int("count", len(tiers)))
			fmt.Fprintf(cmd.OutOrStdout(), "%d membership tier(s) written\n", len(tiers))

			return nil
		},
	}

	membershipsCmd.AddCommand(seedCmd)

	return membershipsCmd
}

func readCatalog(path string) ([]api.Membership, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var tiers []api.Membership
	if err := json.Unmarshal(raw, &tiers); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	seen := make(map[string]bool, len(tiers))
	for i, t := range tiers {
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
	}

	return tiers, nil
}

func membershipFromAPI(t api.Membership) models.Membership {
	ms := models.Membership{ID: t.ID, Name: t.Name, Benefits: t.Benefits}
	for _, p := range t.Plans {
		ms.Plans = append(ms.Plans, models.Plan{
			PlanUniqueID:   p.PlanUniqueID,
			Price:          p.Price,
			DurationMonths: p.DurationMonths,
		})
	}

	return ms
}
