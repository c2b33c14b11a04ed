package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// CompetitiveClient implements teamwork.CompetitiveClient.
type CompetitiveClient struct {
	requester teamwork.Requester
}

// NewCompetitiveClient creates a new competitive provider client.
func NewCompetitiveClient(requester teamwork.Requester) *CompetitiveClient {
	return &CompetitiveClient{
		requester: requester,
	}
}

func competitivePath(provider string) string {
	return "competitive/provider/" + url.PathEscape(provider)
}

// Provider implements teamwork.CompetitiveClient.Provider.
func (c *CompetitiveClient) Provider(ctx context.Context, provider string) (mo.Option[teamwork.CompetitiveProvider], error) {
	return execute[teamwork.CompetitiveProvider](ctx, c.requester, competitivePath(provider), "getting competitive provider")
}

// Stats implements teamwork.CompetitiveClient.Stats.
func (c *CompetitiveClient) Stats(ctx context.Context, provider string) (mo.Option[teamwork.CompetitiveProviderStats], error) {
	return execute[teamwork.CompetitiveProviderStats](ctx, c.requester, competitivePath(provider)+"/stats", "getting competitive provider stats")
}
