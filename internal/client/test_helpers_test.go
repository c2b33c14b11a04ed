package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&teamwork.Config{APIKey: testAPIKey, BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// TestGetOperation represents a single GET endpoint test case.
type TestGetOperation[T any] struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery map[string]string
	StatusCode    int
	Body          string
	WantPresent   bool
	WantErr       bool
	Check         func(t *testing.T, result T)
}

// RunGetTests runs a series of get operation tests against a fresh server each.
func RunGetTests[T any](
	t *testing.T,
	tests []TestGetOperation[T],
	call func(context.Context, *Client) (mo.Option[T], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, testAPIKey, request.URL.Query().Get("key"))

				for name, value := range testCase.ExpectedQuery {
					assert.Equal(t, value, request.URL.Query().Get(name), name)
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)
				_, _ = writer.Write([]byte(testCase.Body))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			result, err := call(context.Background(), client)

			if testCase.WantErr {
				require.Error(t, err)
				assert.True(t, teamwork.IsUnparseable(err))
				assert.True(t, result.IsAbsent())

				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.WantPresent, result.IsPresent())

			if testCase.WantPresent && testCase.Check != nil {
				testCase.Check(t, result.MustGet())
			}
		})
	}
}
