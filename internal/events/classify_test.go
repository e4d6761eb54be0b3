package events

import (
	"reflect"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/message"
)

func TestClassifyDeclaredTypes(t *testing.T) {
	c := codec.New()

	tests := []struct {
		name     string
		declared reflect.Type
		family   Family
	}{
		{name: "SQS", declared: reflect.TypeOf(awsevents.SQSEvent{}), family: FamilySQS},
		{name: "SNS", declared: reflect.TypeOf(awsevents.SNSEvent{}), family: FamilySNS},
		{name: "Kinesis", declared: reflect.TypeOf(awsevents.KinesisEvent{}), family: FamilyKinesis},
		{name: "S3", declared: reflect.TypeOf(awsevents.S3Event{}), family: FamilyS3},
		{name: "gateway v1", declared: reflect.TypeOf(awsevents.APIGatewayProxyRequest{}), family: FamilyAPIGatewayV1},
		{name: "gateway v2", declared: reflect.TypeOf(awsevents.APIGatewayV2HTTPRequest{}), family: FamilyAPIGatewayV2},
		{name: "pointer unwrapped", declared: reflect.TypeOf(&awsevents.SQSEvent{}), family: FamilySQS},
		{
			name:     "message wrapper unwrapped",
			declared: reflect.TypeOf(message.Of[awsevents.KinesisEvent]{}),
			family:   FamilyKinesis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Classify(tt.declared, []byte(`{}`), c)
			assert.Equal(t, ShapeTypedEvent, shape.Kind)
			assert.Equal(t, tt.family, shape.Family)
		})
	}
}

func TestClassifyGenericPayloads(t *testing.T) {
	c := codec.New()

	tests := []struct {
		name     string
		declared reflect.Type
		raw      string
		kind     ShapeKind
	}{
		{name: "object", raw: `{"httpMethod":"GET"}`, kind: ShapeJSONObject},
		{name: "array", raw: `[1,2,3]`, kind: ShapeJSONArray},
		{name: "scalar string", raw: `"hello"`, kind: ShapeRawBytes},
		{name: "scalar number", raw: `42`, kind: ShapeRawBytes},
		{name: "unparsable bytes", raw: `not json at all`, kind: ShapeRawBytes},
		{
			name:     "unknown declared type falls back to sniffing",
			declared: reflect.TypeOf(struct{ A int }{}),
			raw:      `[1]`,
			kind:     ShapeJSONArray,
		},
		{
			name:     "declared map type still sniffs",
			declared: reflect.TypeOf(map[string]any{}),
			raw:      `{"a":1}`,
			kind:     ShapeJSONObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Classify(tt.declared, []byte(tt.raw), c)
			assert.Equal(t, tt.kind, shape.Kind)
			assert.Equal(t, FamilyUnknown, shape.Family)
		})
	}
}

func TestFamilyIsGateway(t *testing.T) {
	assert.True(t, FamilyAPIGatewayV1.IsGateway())
	assert.True(t, FamilyAPIGatewayV2.IsGateway())
	assert.False(t, FamilySQS.IsGateway())
	assert.False(t, FamilySNS.IsGateway())
	assert.False(t, FamilyKinesis.IsGateway())
	assert.False(t, FamilyS3.IsGateway())
}

func TestFamilyByName(t *testing.T) {
	for name, expected := range map[string]Family{
		"sqs":     FamilySQS,
		"sns":     FamilySNS,
		"kinesis": FamilyKinesis,
		"s3":      FamilyS3,
		"apigw":   FamilyAPIGatewayV1,
		"apigw2":  FamilyAPIGatewayV2,
	} {
		family, ok := FamilyByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, family)
	}

	_, ok := FamilyByName("dynamodb")
	assert.False(t, ok)
}
