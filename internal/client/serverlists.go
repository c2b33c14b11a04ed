package client

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// ServerListsClient implements teamwork.ServerListsClient.
type ServerListsClient struct {
	requester teamwork.Requester
}

// NewServerListsClient creates a new custom server lists client.
func NewServerListsClient(requester teamwork.Requester) *ServerListsClient {
	return &ServerListsClient{
		requester: requester,
	}
}

// List implements teamwork.ServerListsClient.List.
func (c *ServerListsClient) List(ctx context.Context) (mo.Option[[]teamwork.ServerList], error) {
	return execute[[]teamwork.ServerList](ctx, c.requester, "customserverlist", "listing server lists")
}

// Get implements teamwork.ServerListsClient.Get.
func (c *ServerListsClient) Get(ctx context.Context, id int) (mo.Option[teamwork.ServerList], error) {
	path := "customserverlist/" + strconv.Itoa(id)

	return execute[teamwork.ServerList](ctx, c.requester, path, "getting server list")
}

// Servers implements teamwork.ServerListsClient.Servers.
func (c *ServerListsClient) Servers(ctx context.Context, id int) (mo.Option[[]teamwork.Server], error) {
	path := "customserverlist/" + strconv.Itoa(id) + "/servers"

	return execute[[]teamwork.Server](ctx, c.requester, path, "listing server list servers")
}
