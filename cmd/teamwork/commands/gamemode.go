package commands

import (
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/spf13/cobra"
)

// GameModeResolution is the output of gamemode resolve.
type GameModeResolution struct {
	Input    string `json:"input"    yaml:"input"`
	Resolved string `json:"resolved" yaml:"resolved"`
	Display  string `json:"display"  yaml:"display"`
}

// NewGameModeCommand creates the gamemode command group.
func NewGameModeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gamemode",
		Aliases: []string{"gm"},
		Short:   "Work with game mode names",
		Long:    "Resolve game mode aliases to the canonical names the API expects",
	}

	cmd.AddCommand(newGameModeResolveCommand())

	return cmd
}

func newGameModeResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "Resolve a game mode alias",
		Long:  "Normalize NAME and map known aliases such as cp or pl to their canonical game mode. No API key is needed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := teamwork.ResolveGameMode(args[0])

			resolution := GameModeResolution{
				Input:    args[0],
				Resolved: resolved,
				Display:  titleCase(resolved),
			}

			return render(cmd, resolution, propertyHeaders, func(r GameModeResolution) []row {
				return propertyRows(
					"Input", r.Input,
					"Resolved", r.Resolved,
					"Display", r.Display,
				)
			})
		},
	}
}
