package bridge

import (
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	awsevents "github.com/aws/aws-lambda-go/events"

	"github.com/fnbridge/fnbridge/internal/constants"
	apperrors "github.com/fnbridge/fnbridge/internal/errors"
	"github.com/fnbridge/fnbridge/internal/message"
)

// defaultBody is returned when the handler produced no response message.
var defaultBody = []byte(`"OK"`)

var gatewayResponseTypes = map[reflect.Type]struct{}{
	reflect.TypeOf(awsevents.APIGatewayProxyResponse{}):  {},
	reflect.TypeOf(awsevents.APIGatewayV2HTTPResponse{}): {},
}

// EncodeResponse converts a canonical response back into the bytes the
// invoking trigger expects. The request message supplies the routing
// markers set during normalization; response may be nil when the handler
// produced nothing.
//
// Handlers that declare a gateway response output type are trusted to have
// produced platform-correct bytes, which pass through verbatim. Otherwise a
// gateway-marked request gets a synthesized response envelope and everything
// else gets the body bytes unchanged.
func (b *Bridge) EncodeResponse(
	request *message.Message,
	response *message.Message,
	outputType reflect.Type,
) ([]byte, error) {
	if isGatewayResponseType(outputType) {
		if response == nil {
			return nil, apperrors.ErrInvalidRequest(
				"output type is a gateway response but no response message was produced", nil)
		}
		return b.payloadBytes(response)
	}

	b.codec.EnsureConfigured()

	body := defaultBody
	if response != nil {
		var err error
		body, err = b.payloadBytes(response)
		if err != nil {
			return nil, err
		}
	}

	if !isGatewayRequest(request) {
		return body, nil
	}

	envelope := map[string]any{
		"isBase64Encoded": false,
	}

	statusCode := http.StatusOK
	var responseHeaders message.Headers
	if response != nil {
		responseHeaders = response.Headers()
		if raw, ok := responseHeaders[constants.StatusCodeHeader]; ok {
			var err error
			statusCode, err = coerceStatusCode(raw)
			if err != nil {
				return nil, err
			}
		}
	}
	envelope["statusCode"] = statusCode

	if wantsStatusDescription(request) {
		envelope["statusDescription"] = statusDescription(statusCode)
	}

	envelope["body"] = b.envelopeBody(body)

	if response != nil {
		stringified := make(map[string]string, len(responseHeaders))
		for k, v := range responseHeaders {
			stringified[k] = fmt.Sprintf("%v", v)
		}
		envelope["headers"] = stringified
	}

	out, err := b.codec.Marshal(envelope)
	if err != nil {
		return nil, apperrors.ErrSerialization("serializing gateway response envelope", err)
	}
	return out, nil
}

// payloadBytes renders a canonical response payload as bytes. Raw bytes and
// strings pass through; anything else is serialized via the codec.
func (b *Bridge) payloadBytes(m *message.Message) ([]byte, error) {
	switch payload := m.Payload().(type) {
	case []byte:
		return payload, nil
	case string:
		return []byte(payload), nil
	default:
		out, err := b.codec.Marshal(payload)
		if err != nil {
			return nil, apperrors.ErrSerialization("serializing response payload", err)
		}
		return out, nil
	}
}

// envelopeBody renders the body field of the gateway envelope. The legacy
// wire format strips literal double quotes from the text.
func (b *Bridge) envelopeBody(body []byte) string {
	text := string(body)
	if b.compat.StripBodyQuotes {
		text = strings.ReplaceAll(text, `"`, "")
	}
	return text
}

func isGatewayRequest(request *message.Message) bool {
	v, ok := request.Header(constants.GatewayMarkerHeader)
	if !ok {
		return false
	}
	marked, isBool := v.(bool)
	return isBool && marked
}

// wantsStatusDescription reports whether the originating trigger expects a
// textual status line in the envelope. Kinesis-backed requests carry a
// Records header and reuse the gateway envelope with a statusDescription.
func wantsStatusDescription(request *message.Message) bool {
	_, ok := request.Header(constants.RecordsHeader)
	return ok
}

func statusDescription(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

func isGatewayResponseType(t reflect.Type) bool {
	t = message.UnwrapType(t)
	if t == nil {
		return false
	}
	_, ok := gatewayResponseTypes[t]
	return ok
}

// coerceStatusCode converts a statusCode header into an int. Anything that
// is not an integer fails loudly instead of defaulting.
func coerceStatusCode(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case string:
		code, err := strconv.Atoi(n)
		if err == nil {
			return code, nil
		}
	}
	return 0, apperrors.ErrStatusCoercion(
		fmt.Sprintf("statusCode header %v (%T) is not an integer", v, v), nil)
}
