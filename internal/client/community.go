package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// CommunityClient implements teamwork.CommunityClient.
type CommunityClient struct {
	requester teamwork.Requester
}

// NewCommunityClient creates a new community provider client.
func NewCommunityClient(requester teamwork.Requester) *CommunityClient {
	return &CommunityClient{
		requester: requester,
	}
}

func communityPath(provider string) string {
	return "community/provider/" + url.PathEscape(provider)
}

// Provider implements teamwork.CommunityClient.Provider.
func (c *CommunityClient) Provider(ctx context.Context, provider string) (mo.Option[teamwork.Provider], error) {
	return execute[teamwork.Provider](ctx, c.requester, communityPath(provider), "getting community provider")
}

// Servers implements teamwork.CommunityClient.Servers.
func (c *CommunityClient) Servers(ctx context.Context, provider string) (mo.Option[[]teamwork.Server], error) {
	return execute[[]teamwork.Server](ctx, c.requester, communityPath(provider)+"/servers", "listing community provider servers")
}

// Stats implements teamwork.CommunityClient.Stats.
func (c *CommunityClient) Stats(ctx context.Context, provider string) (mo.Option[teamwork.ProviderStats], error) {
	return execute[teamwork.ProviderStats](ctx, c.requester, communityPath(provider)+"/stats", "getting community provider stats")
}
