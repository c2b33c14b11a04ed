package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/fivetwenty-io/teamwork/pkg/twclient"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Viper keys shared by the commands and the root command.
const (
	KeyAPIKey  = "api_key"
	KeyBaseURL = "base_url"
	KeyOutput  = "output"
	KeyVerbose = "verbose"
	KeyTimeout = "timeout"
)

// NoDataMessage is printed when the API returned nothing usable.
const NoDataMessage = "No data returned"

const pairSize = 2

// row is one table line.
type row []string

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(KeyOutput))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// StandardJSONRenderer writes data to w as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to w as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderTable writes headers and rows to w.
func renderTable(w io.Writer, headers []string, rows []row) error {
	table := tablewriter.NewWriter(w)
	table.Header(lo.ToAnySlice(headers)...)

	for _, r := range rows {
		err := table.Append(lo.ToAnySlice(r)...)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// render writes data in the selected output format. Tables are built by rows.
func render[T any](cmd *cobra.Command, data T, headers []string, rows func(T) []row) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return renderTable(w, headers, rows(data))
	}
}

// renderOption renders the value of result, or NoDataMessage when absent.
func renderOption[T any](cmd *cobra.Command, result mo.Option[T], headers []string, rows func(T) []row) error {
	value, ok := result.Get()
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), NoDataMessage)

		return nil
	}

	return render(cmd, value, headers, rows)
}

// propertyRows builds a two column Property/Value table body.
func propertyRows(pairs ...string) []row {
	return lo.Map(lo.Chunk(pairs, pairSize), func(pair []string, _ int) row {
		return row{pair[0], valueOrNA(pair[1])}
	})
}

var propertyHeaders = []string{"Property", "Value"}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// titleCase renders a game mode id such as "control-point" as "Control Point".
func titleCase(mode string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(mode, "-", " "))
}

// parseID parses a positive numeric id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// newLogger returns a console logger on the command's stderr.
func newLogger(cmd *cobra.Command) teamwork.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool(KeyVerbose) {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return teamwork.NewZerologLogger(logger)
}

// newClient builds an API client from the effective configuration.
func newClient(cmd *cobra.Command) (teamwork.Client, error) {
	apiKey := viper.GetString(KeyAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv(twclient.EnvAPIKey)
	}

	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	client, err := twclient.New(&teamwork.Config{
		APIKey:      apiKey,
		BaseURL:     viper.GetString(KeyBaseURL),
		HTTPTimeout: viper.GetDuration(KeyTimeout),
		Debug:       viper.GetBool(KeyVerbose),
		Logger:      newLogger(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
