package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestCompetitiveClient_Provider(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[teamwork.CompetitiveProvider]{
		{
			Name:         "gets provider",
			ExpectedPath: "/competitive/provider/etf2l",
			StatusCode:   http.StatusOK,
			Body:         `{"id": 3, "name": "ETF2L", "region": "EU", "format": "6v6"}`,
			WantPresent:  true,
			Check: func(t *testing.T, provider teamwork.CompetitiveProvider) {
				t.Helper()
				assert.Equal(t, "ETF2L", provider.Name)
				assert.Equal(t, "6v6", provider.Format)
			},
		},
		{
			Name:         "invalid json",
			ExpectedPath: "/competitive/provider/etf2l",
			StatusCode:   http.StatusOK,
			Body:         `{"id": 3,`,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[teamwork.CompetitiveProvider], error) {
		return c.Competitive().Provider(ctx, "etf2l")
	})
}

func TestCompetitiveClient_Stats(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[teamwork.CompetitiveProviderStats]{
		{
			Name:         "gets stats",
			ExpectedPath: "/competitive/provider/etf2l/stats",
			StatusCode:   http.StatusOK,
			Body:         `{"players": 240, "matches": "31", "teams": 58}`,
			WantPresent:  true,
			Check: func(t *testing.T, stats teamwork.CompetitiveProviderStats) {
				t.Helper()
				assert.Equal(t, 240, stats.Players)
				assert.Equal(t, 31, stats.Matches)
				assert.Equal(t, 58, stats.Teams)
			},
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[teamwork.CompetitiveProviderStats], error) {
		return c.Competitive().Stats(ctx, "etf2l")
	})
}
