package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// NewsClient implements teamwork.NewsClient.
type NewsClient struct {
	requester teamwork.Requester
}

// NewNewsClient creates a new news client.
func NewNewsClient(requester teamwork.Requester) *NewsClient {
	return &NewsClient{
		requester: requester,
	}
}

// Overview implements teamwork.NewsClient.Overview.
func (c *NewsClient) Overview(ctx context.Context) (mo.Option[[]teamwork.News], error) {
	return execute[[]teamwork.News](ctx, c.requester, "news", "getting news overview")
}

// Get implements teamwork.NewsClient.Get.
func (c *NewsClient) Get(ctx context.Context, hash string) (mo.Option[teamwork.News], error) {
	path := "news/hash/" + url.PathEscape(hash)

	return execute[teamwork.News](ctx, c.requester, path, "getting news post")
}

// ByPage implements teamwork.NewsClient.ByPage.
func (c *NewsClient) ByPage(ctx context.Context, page int) (mo.Option[[]teamwork.News], error) {
	path := "news?page=" + strconv.Itoa(page)

	return execute[[]teamwork.News](ctx, c.requester, path, "listing news page")
}

// ByProvider implements teamwork.NewsClient.ByProvider.
func (c *NewsClient) ByProvider(ctx context.Context, provider string) (mo.Option[[]teamwork.News], error) {
	path := "news?provider=" + url.QueryEscape(provider)

	return execute[[]teamwork.News](ctx, c.requester, path, "listing news by provider")
}
