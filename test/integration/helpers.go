//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/fivetwenty-io/teamwork/pkg/twclient"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv(twclient.EnvAPIKey),
		BaseURL:    os.Getenv("TEAMWORK_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("TEAMWORK_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the teamwork binary.
func getBinaryPath() string {
	if path := os.Getenv("TEAMWORK_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../teamwork",
		"./teamwork",
		"../teamwork",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "teamwork"
}

// SkipIfMissingKey skips the test when no API key is configured.
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skipf("%s not set, skipping integration test", twclient.EnvAPIKey)
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("teamwork binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewClient builds a library client against the live API.
func (config *TestConfig) NewClient(t *testing.T) teamwork.Client {
	t.Helper()

	client, err := twclient.New(&teamwork.Config{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
	})
	require.NoError(t, err)

	return client
}

// CommandRunner provides utilities for running teamwork commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// maskAPIKey returns a copy of args with the value of --api-key hidden.
func maskAPIKey(args []string) []string {
	return lo.Map(args, func(arg string, index int) string {
		if index > 0 && args[index-1] == "--api-key" {
			return constants.MaskedSecret
		}

		return arg
	})
}

// Run executes a teamwork command with the configured key and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--api-key", runner.config.APIKey}, args...)
	if runner.config.BaseURL != "" {
		args = append([]string{"--base-url", runner.config.BaseURL}, args...)
	}

	// #nosec G204
	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(maskAPIKey(args), " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
