package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var mapHeaders = []string{"Map", "Players", "Servers", "Highest Players", "Game Modes", "Official"}

// MapStatsEntry is the printable form of one teamwork.MapStatsResult.
type MapStatsEntry struct {
	Name  string        `json:"name"            yaml:"name"`
	Stats *teamwork.Map `json:"stats,omitempty" yaml:"stats,omitempty"`
	Error string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewMapsCommand creates the maps command group.
func NewMapsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maps",
		Aliases: []string{"map"},
		Short:   "Resolve map names and show map statistics",
		Long:    "Resolve partial map names against the known map catalog and display map statistics and imagery",
	}

	cmd.AddCommand(newMapsResolveCommand())
	cmd.AddCommand(newMapsStatsCommand())
	cmd.AddCommand(newMapsThumbnailCommand())
	cmd.AddCommand(newMapsImagesCommand())
	cmd.AddCommand(newMapsSearchCommand())

	return cmd
}

func newMapsResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve QUERY",
		Short: "Resolve a partial map name",
		Long: "List the catalog maps matching QUERY. A prefixed name such as cp_badlands\n" +
			"is matched on the part after the first underscore. No API key is needed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := teamwork.ResolveMapNames(args[0])

			return render(cmd, names, []string{"Map"}, func(names []string) []row {
				return lo.Map(names, func(name string, _ int) row { return row{name} })
			})
		},
	}
}

func newMapsStatsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats NAME",
		Short: "Show map statistics",
		Long: "Display statistics of the first catalog map matching NAME,\n" +
			"or of every matching map with --all",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if all {
				return runMapsStatsAll(cmd, client, args[0])
			}

			result, err := client.Maps().Stats(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get map stats: %w", err)
			}

			return renderOption(cmd, result, mapHeaders, func(m teamwork.Map) []row {
				return mapRows([]teamwork.Map{m})
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every matching map")

	return cmd
}

func runMapsStatsAll(cmd *cobra.Command, client teamwork.Client, query string) error {
	results, err := client.Maps().StatsForAll(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("failed to get map stats: %w", err)
	}

	if len(results) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), NoDataMessage)

		return nil
	}

	entries := lo.Map(results, func(result teamwork.MapStatsResult, _ int) MapStatsEntry {
		entry := MapStatsEntry{Name: result.Name, Stats: result.Stats.ToPointer()}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}

		return entry
	})

	headers := []string{"Map", "Players", "Servers", "Highest Players", "Status"}

	return render(cmd, entries, headers, func(entries []MapStatsEntry) []row {
		return lo.Map(entries, func(entry MapStatsEntry, _ int) row {
			switch {
			case entry.Error != "":
				return row{entry.Name, "", "", "", entry.Error}
			case entry.Stats == nil:
				return row{entry.Name, "", "", "", NoDataMessage}
			default:
				return row{
					entry.Name, itoa(entry.Stats.Players), itoa(entry.Stats.Servers),
					itoa(entry.Stats.HighestPlayers), "ok",
				}
			}
		})
	})
}

func newMapsThumbnailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail NAME",
		Short: "Show a map thumbnail",
		Long:  "Display the thumbnail URL of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Maps().Thumbnail(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get map thumbnail: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(t teamwork.MapThumbnail) []row {
				return propertyRows("Map", t.MapName, "Thumbnail", t.Thumbnail)
			})
		},
	}
}

func newMapsImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images NAME",
		Short: "Show map images",
		Long:  "Display the thumbnail, background and screenshot URLs of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Maps().ThumbnailContext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get map images: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(c teamwork.ThumbnailContext) []row {
				rows := propertyRows(
					"Map", c.MapName,
					"Thumbnail", c.Thumbnail,
					"Background", c.Background,
				)

				for i, screenshot := range c.Screenshots {
					rows = append(rows, row{fmt.Sprintf("Screenshot %d", i+1), screenshot})
				}

				return rows
			})
		},
	}
}

func newMapsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search maps",
		Long:  "Search the teamwork.tf map database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Maps().Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search maps: %w", err)
			}

			return renderOption(cmd, result, mapHeaders, mapRows)
		},
	}
}

func mapRows(maps []teamwork.Map) []row {
	return lo.Map(maps, func(m teamwork.Map, _ int) row {
		return row{
			m.Map, itoa(m.Players), itoa(m.Servers), itoa(m.HighestPlayers),
			valueOrNA(strings.Join(m.GameModes, ", ")), yesNo(m.OfficialMap),
		}
	})
}
