package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// CreatorsClient implements teamwork.CreatorsClient.
type CreatorsClient struct {
	requester teamwork.Requester
}

// NewCreatorsClient creates a new creators client.
func NewCreatorsClient(requester teamwork.Requester) *CreatorsClient {
	return &CreatorsClient{
		requester: requester,
	}
}

// BySteamID implements teamwork.CreatorsClient.BySteamID.
func (c *CreatorsClient) BySteamID(ctx context.Context, steamID string) (mo.Option[[]teamwork.Creator], error) {
	path := "youtube-creator/steamid/" + url.PathEscape(steamID)

	return execute[[]teamwork.Creator](ctx, c.requester, path, "getting creator")
}
