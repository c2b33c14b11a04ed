package twclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/fivetwenty-io/teamwork/pkg/twclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := twclient.New(&teamwork.Config{APIKey: "abc"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := twclient.New(nil)
		require.ErrorIs(t, err, teamwork.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		client, err := twclient.New(&teamwork.Config{BaseURL: "https://teamwork.tf/api/v1/"})
		require.ErrorIs(t, err, teamwork.ErrAPIKeyRequired)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "https://teamwork.tf/api")
	})

	t.Run("config is not modified", func(t *testing.T) {
		t.Parallel()

		config := &teamwork.Config{APIKey: "abc", BaseURL: "example.com/api"}

		_, err := twclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "example.com/api", config.BaseURL)
	})
}

func TestNewWithKey(t *testing.T) {
	t.Parallel()

	client, err := twclient.NewWithKey("abc")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = twclient.NewWithKey("")
	require.ErrorIs(t, err, teamwork.ErrAPIKeyRequired)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(twclient.EnvAPIKey, "from-env")

	client, err := twclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_BaseURLNormalization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/quickplay", request.URL.Path)
		assert.Equal(t, "key=abc", request.URL.RawQuery)
		_, _ = writer.Write([]byte(`[{"id": "payload"}]`))
	}))
	defer server.Close()

	// No trailing slash on the configured base URL.
	client, err := twclient.New(&teamwork.Config{APIKey: "abc", BaseURL: server.URL + "/api/v1"})
	require.NoError(t, err)

	modes, err := client.Quickplay().GameModes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "payload", modes.MustGet()[0].ID)
}
