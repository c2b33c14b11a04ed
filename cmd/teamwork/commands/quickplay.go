package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	gameModeHeaders = []string{"ID", "Title", "Players", "Max Players", "Servers"}
	serverHeaders   = []string{"Name", "Address", "Map", "Players", "Provider", "Country", "Reachable"}
)

// NewQuickplayCommand creates the quickplay command group.
func NewQuickplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quickplay",
		Aliases: []string{"qp"},
		Short:   "Browse game modes and their servers",
		Long:    "List game modes, their population and the servers that host them",
	}

	cmd.AddCommand(newQuickplayModesCommand())
	cmd.AddCommand(newQuickplayModeCommand())
	cmd.AddCommand(newQuickplayServersCommand())
	cmd.AddCommand(newQuickplayServerCommand())

	return cmd
}

func newQuickplayModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List game modes",
		Long:  "List every game mode with its current population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Quickplay().GameModes(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list game modes: %w", err)
			}

			return renderOption(cmd, result, gameModeHeaders, gameModeRows)
		},
	}
}

func newQuickplayModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode NAME",
		Short: "Get a game mode",
		Long:  "Display a single game mode. Aliases such as cp or pl are accepted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Quickplay().GameMode(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get game mode: %w", err)
			}

			return renderOption(cmd, result, gameModeHeaders, func(mode teamwork.GameMode) []row {
				return gameModeRows([]teamwork.GameMode{mode})
			})
		},
	}
}

func newQuickplayServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "servers NAME",
		Short: "List servers of a game mode",
		Long:  "List the servers currently hosting a game mode. Aliases such as cp or pl are accepted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Quickplay().GameModeServers(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list game mode servers: %w", err)
			}

			return renderOption(cmd, result, serverHeaders, serverRows)
		},
	}
}

func newQuickplayServerCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "server IP",
		Short: "Look up a server",
		Long:  "Display the servers known at an IP address, optionally narrowed to one port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 0 || port > 65535 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidPort, port)
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Quickplay().ServerInfo(cmd.Context(), args[0], port)
			if err != nil {
				return fmt.Errorf("failed to look up server: %w", err)
			}

			return renderOption(cmd, result, serverHeaders, serverRows)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port")

	return cmd
}

func gameModeRows(modes []teamwork.GameMode) []row {
	return lo.Map(modes, func(mode teamwork.GameMode, _ int) row {
		title := mode.Title
		if title == "" {
			title = titleCase(mode.ID)
		}

		return row{mode.ID, title, itoa(mode.Players), itoa(mode.MaxPlayers), itoa(mode.Servers)}
	})
}

func serverRows(servers []teamwork.Server) []row {
	return lo.Map(servers, func(server teamwork.Server, _ int) row {
		return row{
			server.Name,
			fmt.Sprintf("%s:%d", server.IP, server.Port),
			valueOrNA(server.MapName),
			fmt.Sprintf("%d/%d", server.Players, server.MaxPlayers),
			valueOrNA(server.Provider.Name),
			valueOrNA(strings.ToUpper(server.CountryCode)),
			yesNo(server.Reachable),
		}
	})
}
