package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// QuickplayClient implements teamwork.QuickplayClient.
type QuickplayClient struct {
	requester teamwork.Requester
}

// NewQuickplayClient creates a new quickplay client.
func NewQuickplayClient(requester teamwork.Requester) *QuickplayClient {
	return &QuickplayClient{
		requester: requester,
	}
}

// GameModes implements teamwork.QuickplayClient.GameModes.
func (c *QuickplayClient) GameModes(ctx context.Context) (mo.Option[[]teamwork.GameMode], error) {
	return execute[[]teamwork.GameMode](ctx, c.requester, "quickplay", "listing game modes")
}

// GameMode implements teamwork.QuickplayClient.GameMode.
// The mode is resolved with teamwork.ResolveGameMode, so "pl" fetches "payload".
func (c *QuickplayClient) GameMode(ctx context.Context, mode string) (mo.Option[teamwork.GameMode], error) {
	path := "quickplay/" + url.PathEscape(teamwork.ResolveGameMode(mode))

	return execute[teamwork.GameMode](ctx, c.requester, path, "getting game mode")
}

// GameModeServers implements teamwork.QuickplayClient.GameModeServers.
func (c *QuickplayClient) GameModeServers(ctx context.Context, mode string) (mo.Option[[]teamwork.Server], error) {
	path := "quickplay/" + url.PathEscape(teamwork.ResolveGameMode(mode)) + "/servers"

	return execute[[]teamwork.Server](ctx, c.requester, path, "listing game mode servers")
}

// ServerInfo implements teamwork.QuickplayClient.ServerInfo.
// The port is only sent when it is greater than zero.
func (c *QuickplayClient) ServerInfo(ctx context.Context, ip string, port int) (mo.Option[[]teamwork.Server], error) {
	path := "quickplay/server?ip=" + url.QueryEscape(ip)
	if port > 0 {
		path += "&port=" + strconv.Itoa(port)
	}

	return execute[[]teamwork.Server](ctx, c.requester, path, "getting server info")
}
