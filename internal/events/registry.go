package events

import (
	"fmt"

	awsevents "github.com/aws/aws-lambda-go/events"

	"github.com/fnbridge/fnbridge/internal/codec"
	apperrors "github.com/fnbridge/fnbridge/internal/errors"
)

// DecodeFunc converts raw event bytes into a family's typed representation.
type DecodeFunc func(raw []byte) (any, error)

// Registry resolves the typed decoder for each event family. A family that
// classifies as typed but has no decoder here is a deployment bug, so lookup
// failures surface as configuration errors.
type Registry struct {
	decoders map[Family]DecodeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[Family]DecodeFunc)}
}

// Register sets the decoder for a family, replacing any existing one.
func (r *Registry) Register(f Family, decode DecodeFunc) {
	r.decoders[f] = decode
}

// DecoderFor returns the decoder registered for a family.
func (r *Registry) DecoderFor(f Family) (DecodeFunc, error) {
	decode, ok := r.decoders[f]
	if !ok {
		return nil, apperrors.ErrConfiguration(
			fmt.Sprintf("no decoder registered for %s events", f), nil)
	}
	return decode, nil
}

// DefaultRegistry returns a registry covering every known family, decoding
// through the provided codec.
func DefaultRegistry(c *codec.Codec) *Registry {
	r := NewRegistry()
	r.Register(FamilySQS, decodeInto[awsevents.SQSEvent](c))
	r.Register(FamilySNS, decodeInto[awsevents.SNSEvent](c))
	r.Register(FamilyKinesis, decodeInto[awsevents.KinesisEvent](c))
	r.Register(FamilyS3, decodeInto[awsevents.S3Event](c))
	r.Register(FamilyAPIGatewayV1, decodeInto[awsevents.APIGatewayProxyRequest](c))
	r.Register(FamilyAPIGatewayV2, decodeInto[awsevents.APIGatewayV2HTTPRequest](c))
	return r
}

func decodeInto[T any](c *codec.Codec) DecodeFunc {
	return func(raw []byte) (any, error) {
		var event T
		if err := c.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	}
}
