package bridge

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/fnbridge/fnbridge/internal/constants"
	apperrors "github.com/fnbridge/fnbridge/internal/errors"
	"github.com/fnbridge/fnbridge/internal/events"
	"github.com/fnbridge/fnbridge/internal/logger"
	"github.com/fnbridge/fnbridge/internal/message"
)

// markerHeaders survive the final transport-header merge: once set during
// normalization they cannot be overwritten or dropped by caller headers.
var markerHeaders = []string{
	constants.GatewayMarkerHeader,
	constants.LambdaContextHeader,
}

// NormalizeRequest converts an inbound invocation into a canonical message.
//
// The payload's shape is classified first: a declared type naming a known
// event family routes through the typed decoder registry; everything else is
// parsed generically. Generic JSON objects carrying an httpMethod field are
// gateway-originated requests expressed as plain JSON, and are unpacked into
// body bytes plus headers unless the handler declared a map input. Header
// precedence is resolved by one ordered merge: computed headers first,
// transport headers last, with the internal markers re-asserted.
//
// A Lambda context present in ctx is attached under the aws-context marker.
func (b *Bridge) NormalizeRequest(
	ctx context.Context,
	payload []byte,
	transport message.Headers,
	declared reflect.Type,
) (*message.Message, error) {
	log := logger.DeriveRequestLogger(ctx, b.logger)
	log.Debug("incoming event", "payload", string(payload))

	declared = message.UnwrapType(declared)
	shape := events.Classify(declared, payload, b.codec)

	var (
		body     any
		computed = make(message.Headers)
		markers  = make(message.Headers)
	)

	if shape.Kind == events.ShapeTypedEvent {
		decode, err := b.registry.DecoderFor(shape.Family)
		if err != nil {
			return nil, err
		}
		event, err := decode(payload)
		if err != nil {
			return nil, apperrors.ErrDecode(
				fmt.Sprintf("decoding %s event", shape.Family), err)
		}
		body = event
		if shape.Family.IsGateway() {
			markers[constants.GatewayMarkerHeader] = true
			log.Info("incoming request is API Gateway", "family", shape.Family.String())
		}
	} else {
		b.codec.EnsureConfigured()

		var value any
		if err := b.codec.Unmarshal(payload, &value); err != nil {
			// No declared type and unparsable bytes is a caller contract
			// violation, not a degradable condition.
			return nil, apperrors.ErrParse("payload is not valid JSON and no input type was declared", err)
		}

		switch v := value.(type) {
		case map[string]any:
			objectBody, objectHeaders, gateway, err := b.normalizeObject(v, declared)
			if err != nil {
				return nil, err
			}
			body = objectBody
			computed = objectHeaders
			if gateway {
				markers[constants.GatewayMarkerHeader] = true
				log.Info("incoming request is API Gateway", "family", "generic")
			}
		case []any:
			body = v
		}
		// Scalars fall through to the raw-bytes payload below.
	}

	if body == nil {
		body = payload
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		markers[constants.LambdaContextHeader] = lc
	}

	log.Debug("incoming request headers", "transport", transport)

	headers := message.Merge(markerHeaders, markers, computed, transport)
	return message.New(body, headers), nil
}

// normalizeObject handles the generic JSON object branch. The returned body
// is nil when the object does not resolve to a payload of its own and the
// caller should fall back to the raw bytes.
func (b *Bridge) normalizeObject(
	obj map[string]any,
	declared reflect.Type,
) (body any, headers message.Headers, gateway bool, err error) {
	headers = make(message.Headers)

	if method, hasMethod := obj[constants.HTTPMethodHeader]; hasMethod {
		gateway = true

		if declared != nil && declared.Kind() == reflect.Map {
			// The handler wants the event document as-is.
			headers[constants.HTTPMethodHeader] = method
			body = obj
		} else {
			rawBody := obj[constants.BodyField]
			delete(obj, constants.BodyField)

			var bodyBytes []byte
			if text, isText := rawBody.(string); isText {
				bodyBytes = []byte(text)
			} else {
				bodyBytes, err = b.codec.Marshal(rawBody)
				if err != nil {
					return nil, nil, false, apperrors.ErrSerialization("re-encoding request body", err)
				}
			}
			body = bodyBytes

			for k, v := range obj {
				headers[k] = v
			}
		}
	}

	// A nested headers object overlays the message headers regardless of the
	// gateway branch. The literal "headers" key itself is not retained.
	if nested, isMap := obj[constants.HeadersField].(map[string]any); isMap {
		delete(obj, constants.HeadersField)
		delete(headers, constants.HeadersField)
		for k, v := range nested {
			headers[k] = v
		}
	}

	return body, headers, gateway, nil
}
