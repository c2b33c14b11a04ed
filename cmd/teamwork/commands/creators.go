package commands

import (
	"fmt"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// NewCreatorsCommand creates the creators command.
func NewCreatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "creators STEAMID",
		Aliases: []string{"creator"},
		Short:   "Look up content creators",
		Long:    "Display the content creator profiles linked to a Steam ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Creators().BySteamID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to look up creator: %w", err)
			}

			headers := []string{"Steam ID", "Name", "Main Class", "Main Game Mode", "Subscribers", "YouTube", "Twitch"}

			return renderOption(cmd, result, headers, func(creators []teamwork.Creator) []row {
				return lo.Map(creators, func(c teamwork.Creator, _ int) row {
					return row{
						c.SteamID, c.Name, valueOrNA(c.MainClass), valueOrNA(c.MainGameMode),
						itoa(c.Subscribers), valueOrNA(c.YouTube), valueOrNA(c.Twitch),
					}
				})
			})
		},
	}
}
