package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsListBody = `[
	{"hash": "a1", "title": "Scream Fortress", "type": "blog", "provider": "tf2", "created_at": "2024-10-18 17:00:00"},
	{"hash": "b2", "title": "Community Update", "type": "steam", "provider": "steam"}
]`

func TestNewsClient_Overview(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[[]teamwork.News]{
		{
			Name:         "lists news",
			ExpectedPath: "/news",
			StatusCode:   http.StatusOK,
			Body:         newsListBody,
			WantPresent:  true,
			Check: func(t *testing.T, news []teamwork.News) {
				t.Helper()
				require.Len(t, news, 2)
				assert.Equal(t, "Scream Fortress", news[0].Title)
				assert.Equal(t, "steam", news[1].Provider)
			},
		},
		{
			Name:         "unauthorized is absent",
			ExpectedPath: "/news",
			StatusCode:   http.StatusUnauthorized,
			Body:         `{"message": "invalid key"}`,
		},
		{
			Name:         "object instead of list",
			ExpectedPath: "/news",
			StatusCode:   http.StatusOK,
			Body:         `{"hash": "a1"}`,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[[]teamwork.News], error) {
		return c.News().Overview(ctx)
	})
}

func TestNewsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[teamwork.News]{
		{
			Name:         "gets post",
			ExpectedPath: "/news/hash/a1",
			StatusCode:   http.StatusOK,
			Body:         `{"hash": "a1", "title": "Scream Fortress", "content": "<p>spooky</p>"}`,
			WantPresent:  true,
			Check: func(t *testing.T, news teamwork.News) {
				t.Helper()
				assert.Equal(t, "a1", news.Hash)
				assert.Equal(t, "<p>spooky</p>", news.Content)
			},
		},
		{
			Name:         "not found is absent",
			ExpectedPath: "/news/hash/a1",
			StatusCode:   http.StatusNotFound,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[teamwork.News], error) {
		return c.News().Get(ctx, "a1")
	})
}

func TestNewsClient_ByPage(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[[]teamwork.News]{
		{
			Name:          "second page",
			ExpectedPath:  "/news",
			ExpectedQuery: map[string]string{"page": "2"},
			StatusCode:    http.StatusOK,
			Body:          newsListBody,
			WantPresent:   true,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[[]teamwork.News], error) {
		return c.News().ByPage(ctx, 2)
	})
}

func TestNewsClient_ByProvider(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[[]teamwork.News]{
		{
			Name:          "provider is query escaped",
			ExpectedPath:  "/news",
			ExpectedQuery: map[string]string{"provider": "tf2 & friends"},
			StatusCode:    http.StatusOK,
			Body:          newsListBody,
			WantPresent:   true,
		},
	}

	RunGetTests(t, tests, func(ctx context.Context, c *Client) (mo.Option[[]teamwork.News], error) {
		return c.News().ByProvider(ctx, "tf2 & friends")
	})
}
