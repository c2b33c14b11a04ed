package commands_test

import (
	"testing"

	"github.com/fivetwenty-io/teamwork/cmd/teamwork/commands"
	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		name        string
		cmd         *cobra.Command
		subcommands []string
	}{
		{name: "news", cmd: commands.NewNewsCommand(), subcommands: []string{"list", "get"}},
		{name: "quickplay", cmd: commands.NewQuickplayCommand(), subcommands: []string{"modes", "mode", "servers", "server"}},
		{name: "community", cmd: commands.NewCommunityCommand(), subcommands: []string{"provider", "servers", "stats"}},
		{name: "competitive", cmd: commands.NewCompetitiveCommand(), subcommands: []string{"provider", "stats"}},
		{name: "serverlists", cmd: commands.NewServerListsCommand(), subcommands: []string{"list", "get", "servers"}},
		{name: "maps", cmd: commands.NewMapsCommand(), subcommands: []string{"resolve", "stats", "thumbnail", "images", "search"}},
		{name: "gamemode", cmd: commands.NewGameModeCommand(), subcommands: []string{"resolve"}},
		{name: "config", cmd: commands.NewConfigCommand(), subcommands: []string{"show", "set", "unset"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.name, testCase.cmd.Name())
			assert.Len(t, testCase.cmd.Commands(), len(testCase.subcommands))

			for _, name := range testCase.subcommands {
				sub := findSubcommand(testCase.cmd, name)
				require.NotNil(t, sub, "subcommand %s should exist", name)
				assert.NotNil(t, sub.RunE)
			}
		})
	}
}

func TestCommandFlags(t *testing.T) {
	newsList := findSubcommand(commands.NewNewsCommand(), "list")
	require.NotNil(t, newsList)
	assert.NotNil(t, newsList.Flags().Lookup("page"))
	assert.NotNil(t, newsList.Flags().Lookup("provider"))

	server := findSubcommand(commands.NewQuickplayCommand(), "server")
	require.NotNil(t, server)

	portFlag := server.Flags().Lookup("port")
	require.NotNil(t, portFlag)
	assert.Equal(t, "0", portFlag.DefValue)

	stats := findSubcommand(commands.NewMapsCommand(), "stats")
	require.NotNil(t, stats)

	allFlag := stats.Flags().Lookup("all")
	require.NotNil(t, allFlag)
	assert.Equal(t, "false", allFlag.DefValue)

	login := commands.NewLoginCommand()
	assert.NotNil(t, login.Flags().Lookup("key"))
}

func TestMapsResolve(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := runCommand(t, commands.NewMapsCommand(), "resolve", "cp_badlands")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"arena_badlands", "cp_badlands", "koth_badlands"}, names)
}

func TestMapsResolve_NoMatch(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := runCommand(t, commands.NewMapsCommand(), "resolve", "zzzz")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestMapsResolve_Table(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")

	out, err := runCommand(t, commands.NewMapsCommand(), "resolve", "upward")
	require.NoError(t, err)
	assert.Contains(t, out, "pl_upward")
}

func TestGameModeResolve(t *testing.T) {
	tests := []struct {
		input    string
		resolved string
		display  string
	}{
		{input: "cp", resolved: "control-point", display: "Control Point"},
		{input: "Attack Defense", resolved: "attack-defend", display: "Attack Defend"},
		{input: "payload", resolved: "payload", display: "Payload"},
		{input: "  KOTH  ", resolved: "koth", display: "Koth"},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			setupCLI(t, "http://127.0.0.1:1")
			viper.Set(commands.KeyOutput, constants.FormatYAML)

			out, err := runCommand(t, commands.NewGameModeCommand(), "resolve", testCase.input)
			require.NoError(t, err)

			var resolution commands.GameModeResolution
			require.NoError(t, yaml.Unmarshal([]byte(out), &resolution))
			assert.Equal(t, testCase.input, resolution.Input)
			assert.Equal(t, testCase.resolved, resolution.Resolved)
			assert.Equal(t, testCase.display, resolution.Display)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := runCommand(t, commands.NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)

	var info commands.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, commands.VersionInfo{Version: "1.2.3", Commit: "abc123", Built: "2026-01-01"}, info)
}

func TestVersionCommand_Table(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")

	out, err := runCommand(t, commands.NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestInvalidOutputFormat(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1")
	viper.Set(commands.KeyOutput, "xml")

	_, err := runCommand(t, commands.NewGameModeCommand(), "resolve", "cp")
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}
