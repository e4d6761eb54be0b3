package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/constants"
	"github.com/fnbridge/fnbridge/internal/message"
	"github.com/fnbridge/fnbridge/internal/testutil"
)

func TestEchoReturnsRawBytesUnchanged(t *testing.T) {
	echo := NewEcho(codec.New(), testutil.SilentLogger())

	req := message.New([]byte(`{"a":1}`), nil)
	resp, err := echo.Handle(context.Background(), req)
	require.NoError(t, err)

	body, ok := resp.Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), body)

	status, ok := resp.Header(constants.StatusCodeHeader)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
}

func TestEchoSerializesDecodedPayloads(t *testing.T) {
	echo := NewEcho(codec.New(), testutil.SilentLogger())

	req := message.New(map[string]any{"a": 1}, nil)
	resp, err := echo.Handle(context.Background(), req)
	require.NoError(t, err)

	body, ok := resp.Bytes()
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(body))
}
