package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/spf13/cobra"
)

const percent = 100

// NewCommunityCommand creates the community command group.
func NewCommunityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Browse community server providers",
		Long:  "Display community providers, their servers and population statistics",
	}

	cmd.AddCommand(newCommunityProviderCommand())
	cmd.AddCommand(newCommunityServersCommand())
	cmd.AddCommand(newCommunityStatsCommand())

	return cmd
}

func newCommunityProviderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provider NAME",
		Short: "Get a community provider",
		Long:  "Display the profile of a community server provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Community().Provider(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get community provider: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(p teamwork.Provider) []row {
				return propertyRows(
					"ID", itoa(p.ID),
					"Name", p.Name,
					"Type", p.ProviderType,
					"Region", p.Region,
					"Servers", itoa(p.ServerCount),
					"Website", p.URL,
					"Discord", p.Discord,
					"Steam Group", p.SteamGroup,
				)
			})
		},
	}
}

func newCommunityServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "servers NAME",
		Short: "List servers of a community provider",
		Long:  "List the servers run by a community provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Community().Servers(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list community servers: %w", err)
			}

			return renderOption(cmd, result, serverHeaders, serverRows)
		},
	}
}

func newCommunityStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats NAME",
		Short: "Show community provider statistics",
		Long:  "Display population statistics of a community provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Community().Stats(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get community stats: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(s teamwork.ProviderStats) []row {
				return propertyRows(
					"Players", itoa(s.Players),
					"Max Players", itoa(s.MaxPlayers),
					"Servers", itoa(s.Servers),
					"Reachable", strconv.FormatFloat(s.ReachableRatio*percent, 'f', 1, 64)+"%",
					"Rank", itoa(s.Rank),
					"Last Update", s.LastUpdate,
				)
			})
		},
	}
}
