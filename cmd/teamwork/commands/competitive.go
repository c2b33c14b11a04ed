package commands

import (
	"fmt"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/spf13/cobra"
)

// NewCompetitiveCommand creates the competitive command group.
func NewCompetitiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "competitive",
		Aliases: []string{"comp"},
		Short:   "Browse competitive providers",
		Long:    "Display competitive league providers and their activity",
	}

	cmd.AddCommand(newCompetitiveProviderCommand())
	cmd.AddCommand(newCompetitiveStatsCommand())

	return cmd
}

func newCompetitiveProviderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provider NAME",
		Short: "Get a competitive provider",
		Long:  "Display the profile of a competitive league provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Competitive().Provider(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get competitive provider: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(p teamwork.CompetitiveProvider) []row {
				return propertyRows(
					"ID", itoa(p.ID),
					"Name", p.Name,
					"Region", p.Region,
					"Format", p.Format,
					"Website", p.URL,
				)
			})
		},
	}
}

func newCompetitiveStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats NAME",
		Short: "Show competitive provider statistics",
		Long:  "Display activity statistics of a competitive league provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Competitive().Stats(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get competitive stats: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(s teamwork.CompetitiveProviderStats) []row {
				return propertyRows(
					"Players", itoa(s.Players),
					"Servers", itoa(s.Servers),
					"Matches", itoa(s.Matches),
					"Teams", itoa(s.Teams),
					"Last Update", s.LastUpdate,
				)
			})
		},
	}
}
