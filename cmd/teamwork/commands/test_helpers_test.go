package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fivetwenty-io/teamwork/cmd/teamwork/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const testAPIKey = "cli-test-key"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupCLI resets viper to a test configuration pointing at baseURL and a
// throwaway config file. It returns the config file path.
func setupCLI(t *testing.T, baseURL string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TEAMWORK_API_KEY", "")

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set(commands.KeyAPIKey, testAPIKey)
	viper.Set(commands.KeyBaseURL, baseURL)
	viper.Set(commands.KeyOutput, "table")

	return configFile
}

// runCommand executes cmd with args and returns what it wrote to stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

// requestLog records the requests received by a test server.
type requestLog struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, r)
}

// All returns the recorded requests in arrival order.
func (l *requestLog) All() []*http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]*http.Request(nil), l.requests...)
}

// newAPIServer serves fixed bodies by request path and records the requests.
func newAPIServer(t *testing.T, routes map[string]string) (*httptest.Server, *requestLog) {
	t.Helper()

	log := &requestLog{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, log
}
