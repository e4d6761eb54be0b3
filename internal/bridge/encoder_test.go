package bridge

import (
	"encoding/json"
	"reflect"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/constants"
	apperrors "github.com/fnbridge/fnbridge/internal/errors"
	"github.com/fnbridge/fnbridge/internal/events"
	"github.com/fnbridge/fnbridge/internal/message"
	"github.com/fnbridge/fnbridge/internal/testutil"
)

type envelope struct {
	IsBase64Encoded   bool              `json:"isBase64Encoded"`
	StatusCode        int               `json:"statusCode"`
	StatusDescription *string           `json:"statusDescription"`
	Body              string            `json:"body"`
	Headers           map[string]string `json:"headers"`
}

func gatewayRequest(extra message.Headers) *message.Message {
	headers := message.Headers{constants.GatewayMarkerHeader: true}
	for k, v := range extra {
		headers[k] = v
	}
	return message.New([]byte(`{}`), headers)
}

func decodeEnvelope(t *testing.T, out []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(out, &env))
	return env
}

func TestEncodeGatewayEnvelopeRoundTrip(t *testing.T) {
	b := newTestBridge()

	response := message.New([]byte("done"), message.Headers{
		constants.StatusCodeHeader: 201,
		"X-Trace":                  "t1",
	})

	out, err := b.EncodeResponse(gatewayRequest(nil), response, nil)
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	assert.False(t, env.IsBase64Encoded)
	assert.Equal(t, 201, env.StatusCode)
	assert.Nil(t, env.StatusDescription)
	assert.Equal(t, "done", env.Body)
	assert.Equal(t, "t1", env.Headers["X-Trace"])
	assert.Equal(t, "201", env.Headers[constants.StatusCodeHeader])
}

func TestEncodeGatewayStripsBodyQuotes(t *testing.T) {
	b := newTestBridge()

	response := message.New([]byte(`"done"`), nil)
	out, err := b.EncodeResponse(gatewayRequest(nil), response, nil)
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	assert.Equal(t, "done", env.Body)
}

func TestEncodeGatewayKeepsQuotesWhenCompatDisabled(t *testing.T) {
	c := codec.New()
	b := New(c, events.DefaultRegistry(c), testutil.SilentLogger(), Compat{StripBodyQuotes: false})

	response := message.New([]byte(`"done"`), nil)
	out, err := b.EncodeResponse(gatewayRequest(nil), response, nil)
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	assert.Equal(t, `"done"`, env.Body)
}

func TestEncodeGatewayWithoutResponseDefaultsToOK(t *testing.T) {
	b := newTestBridge()

	out, err := b.EncodeResponse(gatewayRequest(nil), nil, nil)
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	assert.Equal(t, 200, env.StatusCode)
	assert.Equal(t, "OK", env.Body)
	assert.Nil(t, env.Headers)
}

func TestEncodeGatewayStatusDescriptionForStreamBatchRequests(t *testing.T) {
	b := newTestBridge()

	request := gatewayRequest(message.Headers{constants.RecordsHeader: []any{}})
	response := message.New([]byte("done"), message.Headers{constants.StatusCodeHeader: 201})

	out, err := b.EncodeResponse(request, response, nil)
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	require.NotNil(t, env.StatusDescription)
	assert.Equal(t, "201 Created", *env.StatusDescription)
}

func TestEncodeStatusCodeCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		wantErr  bool
	}{
		{name: "int", value: 201, expected: 201},
		{name: "int64", value: int64(202), expected: 202},
		{name: "whole float", value: 204.0, expected: 204},
		{name: "numeric string", value: "418", expected: 418},
		{name: "fractional float", value: 2.5, wantErr: true},
		{name: "non-numeric string", value: "created", wantErr: true},
		{name: "bool", value: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBridge()
			response := message.New([]byte("done"), message.Headers{
				constants.StatusCodeHeader: tt.value,
			})

			out, err := b.EncodeResponse(gatewayRequest(nil), response, nil)
			if tt.wantErr {
				require.Error(t, err)
				testutil.AssertErrorCode(t, err, apperrors.ErrCodeStatusCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decodeEnvelope(t, out).StatusCode)
		})
	}
}

func TestEncodeNonGatewayReturnsBodyUnwrapped(t *testing.T) {
	b := newTestBridge()

	request := message.New([]byte(`{}`), nil)
	response := message.New([]byte(`{"result":1}`), message.Headers{"X-Trace": "t1"})

	out, err := b.EncodeResponse(request, response, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"result":1}`), out)
}

func TestEncodeNonGatewayWithoutResponseReturnsQuotedOK(t *testing.T) {
	b := newTestBridge()

	out, err := b.EncodeResponse(message.New([]byte(`{}`), nil), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"OK"`), out)
}

func TestEncodeGatewayMarkerFalseIsNotGateway(t *testing.T) {
	b := newTestBridge()

	request := message.New([]byte(`{}`), message.Headers{constants.GatewayMarkerHeader: false})
	out, err := b.EncodeResponse(request, message.New([]byte("raw"), nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), out)
}

func TestEncodeGatewayResponseTypePassesThrough(t *testing.T) {
	b := newTestBridge()

	payload := []byte(`{"statusCode":302,"body":"moved"}`)
	response := message.New(payload, nil)

	for _, outputType := range []reflect.Type{
		reflect.TypeOf(awsevents.APIGatewayProxyResponse{}),
		reflect.TypeOf(awsevents.APIGatewayV2HTTPResponse{}),
		reflect.TypeOf(&awsevents.APIGatewayV2HTTPResponse{}),
		reflect.TypeOf(message.Of[awsevents.APIGatewayProxyResponse]{}),
	} {
		out, err := b.EncodeResponse(gatewayRequest(nil), response, outputType)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	}
}

func TestEncodeGatewayResponseTypeWithoutResponseFails(t *testing.T) {
	b := newTestBridge()

	outputType := reflect.TypeOf(awsevents.APIGatewayProxyResponse{})
	_, err := b.EncodeResponse(gatewayRequest(nil), nil, outputType)
	require.Error(t, err)
	testutil.AssertErrorCode(t, err, apperrors.ErrCodeInvalidRequest)
}

func TestEncodeStringPayloadResponse(t *testing.T) {
	b := newTestBridge()

	response := message.New("plain text", nil)
	out, err := b.EncodeResponse(message.New([]byte(`{}`), nil), response, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain text"), out)
}

func TestEncodeStructuredPayloadResponseIsSerialized(t *testing.T) {
	b := newTestBridge()

	response := message.New(map[string]any{"ok": true}, nil)
	out, err := b.EncodeResponse(message.New([]byte(`{}`), nil), response, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
}
