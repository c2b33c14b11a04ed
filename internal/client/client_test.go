package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := New(nil)
		require.ErrorIs(t, err, teamwork.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		client, err := New(&teamwork.Config{})
		require.ErrorIs(t, err, teamwork.ErrAPIKeyRequired)
		assert.Nil(t, client)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		client, err := New(&teamwork.Config{APIKey: "abc"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
		assert.Empty(t, client.ExecuteDefaults())

		assert.NotNil(t, client.News())
		assert.NotNil(t, client.Creators())
		assert.NotNil(t, client.Quickplay())
		assert.NotNil(t, client.Community())
		assert.NotNil(t, client.Competitive())
		assert.NotNil(t, client.ServerLists())
		assert.NotNil(t, client.Maps())
	})

	t.Run("implements teamwork.Client", func(t *testing.T) {
		t.Parallel()

		client, err := New(&teamwork.Config{APIKey: "abc"})
		require.NoError(t, err)

		var _ teamwork.Client = client
	})
}

func TestClient_ExecuteDirect(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/community/provider/skial/stats", request.URL.Path)
		_, _ = writer.Write([]byte(`{"players": 512, "servers": 40}`))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	stats, err := teamwork.Execute[teamwork.ProviderStats](context.Background(), client, "community/provider/skial/stats")
	require.NoError(t, err)
	assert.Equal(t, 512, stats.MustGet().Players)
	assert.Equal(t, 40, stats.MustGet().Servers)
}

func TestClient_StrictDecodingConfig(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"id": "payload", "players": "lots"}`))
	}))
	defer server.Close()

	lenient := NewTestClient(t, server.URL)

	mode, err := lenient.Quickplay().GameMode(context.Background(), "pl")
	require.NoError(t, err)
	assert.Equal(t, "payload", mode.MustGet().ID)
	assert.Zero(t, mode.MustGet().Players)

	strict, err := New(&teamwork.Config{APIKey: testAPIKey, BaseURL: server.URL, StrictDecoding: true})
	require.NoError(t, err)

	_, err = strict.Quickplay().GameMode(context.Background(), "pl")
	require.Error(t, err)
	assert.True(t, teamwork.IsUnparseable(err))
	assert.Contains(t, err.Error(), "getting game mode")
}

func TestClient_LoggerConfig(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var buf bytes.Buffer

	client, err := New(&teamwork.Config{
		APIKey:  "secret-key",
		BaseURL: server.URL,
		Debug:   true,
		Logger:  teamwork.NewZerologLogger(zerolog.New(&buf)),
	})
	require.NoError(t, err)

	news, err := client.News().Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, news.IsAbsent())

	output := buf.String()
	assert.Contains(t, output, "HTTP Request")
	assert.Contains(t, output, "HTTP Response")
	assert.Contains(t, output, "Unsuccessful status, no data returned")
	assert.Contains(t, output, "key=***")
	assert.NotContains(t, output, "secret-key")
}
