package teamwork_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/stretchr/testify/assert"
)

var errBadPayload = errors.New("bad payload")

func TestUnparseableResponseError(t *testing.T) {
	t.Parallel()

	err := &teamwork.UnparseableResponseError{
		Descriptor: "news",
		StatusCode: 200,
		Err:        errBadPayload,
	}

	assert.Equal(t, "unparseable response: news (status: 200): bad payload", err.Error())
	assert.ErrorIs(t, err, teamwork.ErrUnparseableResponse)
	assert.ErrorIs(t, err, errBadPayload)
}

func TestIsUnparseable(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing news: %w", &teamwork.UnparseableResponseError{Descriptor: "news", Err: errBadPayload})

	assert.True(t, teamwork.IsUnparseable(wrapped))
	assert.True(t, teamwork.IsUnparseable(teamwork.ErrUnparseableResponse))
	assert.False(t, teamwork.IsUnparseable(errBadPayload))
	assert.False(t, teamwork.IsUnparseable(nil))
}
