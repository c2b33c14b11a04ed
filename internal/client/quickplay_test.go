package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverListBody = `[
	{"ip": "192.0.2.10", "port": 27015, "name": "Uncletopia | Seattle", "map_name": "pl_upward", "players": 24, "max_players": 24,
	 "provider": {"id": 7, "name": "Uncletopia", "provider_type": "community"}, "gamemodes": ["payload"]},
	{"ip": "192.0.2.11", "port": "27016", "name": "Skial", "players": "n/a", "max_players": 32}
]`

func TestQuickplayClient_GameModes(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[[]teamwork.GameMode]{
		{
			Name:         "lists game modes",
			ExpectedPath: "/quickplay",
			StatusCode:   http.StatusOK,
			Body:         `[{"id": "payload", "title": "Payload", "players": 4210, "servers": 380}, {"id": "koth", "title": "King of the Hill"}]`,
			WantPresent:  true,
			Check: func(t *testing.T, modes []teamwork.GameMode) {
				t.Helper()
				require.Len(t, modes, 2)
				assert.Equal(t, 4210, modes[0].Players)
				assert.Equal(t, "King of the Hill", modes[1].Title)
			},
		},
		{
			Name:         "server error is absent",
			ExpectedPath: "/quickplay",
			StatusCode:   http.StatusInternalServerError,
			Body:         `<html>oops</html>`,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[[]teamwork.GameMode], error) {
		return c.Quickplay().GameModes(ctx)
	})
}

func TestQuickplayClient_GameMode(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[teamwork.GameMode]{
		{
			Name:         "alias is resolved",
			ExpectedPath: "/quickplay/koth",
			StatusCode:   http.StatusOK,
			Body:         `{"id": "koth", "title": "King of the Hill", "players": 900}`,
			WantPresent:  true,
			Check: func(t *testing.T, mode teamwork.GameMode) {
				t.Helper()
				assert.Equal(t, "koth", mode.ID)
				assert.Equal(t, 900, mode.Players)
			},
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[teamwork.GameMode], error) {
		return c.Quickplay().GameMode(ctx, "King of the Hill")
	})
}

func TestQuickplayClient_GameModeServers(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[[]teamwork.Server]{
		{
			Name:         "servers with one malformed entry",
			ExpectedPath: "/quickplay/payload/servers",
			StatusCode:   http.StatusOK,
			Body:         serverListBody,
			WantPresent:  true,
			Check: func(t *testing.T, servers []teamwork.Server) {
				t.Helper()
				require.Len(t, servers, 2)
				assert.Equal(t, "Uncletopia", servers[0].Provider.Name)
				assert.Equal(t, []string{"payload"}, servers[0].GameModes)
				assert.Equal(t, 27016, servers[1].Port)
				assert.Equal(t, 0, servers[1].Players)
				assert.Equal(t, 32, servers[1].MaxPlayers)
			},
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[[]teamwork.Server], error) {
		return c.Quickplay().GameModeServers(ctx, "pl")
	})
}

func TestQuickplayClient_ServerInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		port      int
		wantQuery string
	}{
		{name: "with port", port: 27015, wantQuery: "ip=192.0.2.10&port=27015&key=test-key"},
		{name: "without port", port: 0, wantQuery: "ip=192.0.2.10&key=test-key"},
		{name: "negative port is omitted", port: -1, wantQuery: "ip=192.0.2.10&key=test-key"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, "/quickplay/server", request.URL.Path)
				assert.Equal(t, testCase.wantQuery, request.URL.RawQuery)
				_, _ = writer.Write([]byte(serverListBody))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			servers, err := client.Quickplay().ServerInfo(context.Background(), "192.0.2.10", testCase.port)
			require.NoError(t, err)
			assert.Len(t, servers.MustGet(), 2)
		})
	}
}
